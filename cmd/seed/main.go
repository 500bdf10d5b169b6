package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clubadmin/internal/database"
	"clubadmin/internal/domain"
	"clubadmin/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "clubadmin.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"booking_slot_locks", "extra_charges", "commitment_rows", "booking_resources",
		"bookings", "holds", "maintenance_periods", "resource_rates", "resources",
		"members", "admins",
	} {
		db.Exec("DELETE FROM " + table)
	}

	ctx := context.Background()

	log.Println("Creating admins...")
	adminRepo := repository.NewAdminRepository(db)
	superHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err := adminRepo.Create(ctx, &domain.Admin{
		Email:        "admin@club.local",
		PasswordHash: string(superHash),
		Name:         "Portal Admin",
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
	}); err != nil {
		log.Fatal(err)
	}
	deskHash, _ := bcrypt.GenerateFromPassword([]byte("desk123"), bcrypt.DefaultCost)
	if err := adminRepo.Create(ctx, &domain.Admin{
		Email:        "frontdesk@club.local",
		PasswordHash: string(deskHash),
		Name:         "Front Desk",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating members...")
	memberRepo := repository.NewMemberRepository(db)
	members := []domain.Member{
		{MembershipNo: "M-0001", Name: "A. Sharma", Email: "a.sharma@example.com", Phone: "+91-98100-00001", Tier: domain.TierMember, IsActive: true},
		{MembershipNo: "M-0002", Name: "R. Fernandes", Email: "r.fernandes@example.com", Phone: "+91-98100-00002", Tier: domain.TierMember, IsActive: true},
		{MembershipNo: "AF-0101", Name: "K. Menon", Email: "k.menon@example.com", Tier: domain.TierAffiliated, IsActive: true},
	}
	for i := range members {
		if err := memberRepo.Create(ctx, &members[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating resources...")
	resourceRepo := repository.NewResourceRepository(db)
	resources := []domain.Resource{
		{
			Name: "Banquet Hall", Category: domain.CategoryHall, Capacity: 400, IsActive: true,
			Description: "Main banquet hall, day and night slots",
			RateCard: map[domain.PricingTier]float64{
				domain.TierMember: 25000, domain.TierAffiliated: 32000, domain.TierGuest: 45000,
			},
		},
		{
			Name: "East Lawn", Category: domain.CategoryLawn, Capacity: 800, IsActive: true, IsExclusive: true,
			Description: "Open lawn, booked exclusively per day",
			RateCard: map[domain.PricingTier]float64{
				domain.TierMember: 40000, domain.TierAffiliated: 52000, domain.TierGuest: 70000,
			},
		},
		{
			Name: "Room 101", Category: domain.CategoryRoom, Capacity: 2, IsActive: true,
			RateCard: map[domain.PricingTier]float64{
				domain.TierMember: 3000, domain.TierAffiliated: 3800, domain.TierGuest: 5000,
			},
		},
		{
			Name: "Room 102", Category: domain.CategoryRoom, Capacity: 3, IsActive: true,
			RateCard: map[domain.PricingTier]float64{
				domain.TierMember: 3500, domain.TierAffiliated: 4200, domain.TierGuest: 5500,
			},
		},
		{
			Name: "Poolside Deck", Category: domain.CategoryPhotoshoot, Capacity: 30, IsActive: true,
			Description: "Morning, evening and night photoshoot slots",
			RateCard: map[domain.PricingTier]float64{
				domain.TierMember: 8000, domain.TierAffiliated: 10000, domain.TierGuest: 15000,
			},
		},
	}
	for i := range resources {
		if err := resourceRepo.Create(ctx, &resources[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating a sample booking...")
	bookingRepo := repository.NewBookingRepository(db)
	start := domain.Day(time.Now().AddDate(0, 0, 14))
	if err := bookingRepo.Create(ctx, &domain.Booking{
		Reference:   "SEED-0001",
		MemberID:    members[0].ID,
		Category:    domain.CategoryHall,
		ResourceIDs: []int64{resources[0].ID},
		Rows: []domain.CommitmentRow{
			{Date: start, Slot: domain.SlotNight, Category: "reception"},
			{Date: start.AddDate(0, 0, 1), Slot: domain.SlotNight, Category: "reception"},
		},
		Tier:          domain.TierMember,
		EventType:     "reception",
		TotalPrice:    50000,
		PaidAmount:    12500,
		PendingAmount: 37500,
		PaymentStatus: domain.PaymentHalfPaid,
		Status:        domain.BookingConfirmed,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed completed.")
}
