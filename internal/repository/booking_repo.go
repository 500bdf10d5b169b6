package repository

import (
	"context"
	"time"

	"clubadmin/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	Reference          string     `gorm:"column:reference;uniqueIndex"`
	MemberID           int64      `gorm:"column:member_id;index"`
	Category           string     `gorm:"column:category"`
	Tier               string     `gorm:"column:tier"`
	EventType          string     `gorm:"column:event_type"`
	TotalPrice         float64    `gorm:"column:total_price"`
	PaidAmount         float64    `gorm:"column:paid_amount"`
	PendingAmount      float64    `gorm:"column:pending_amount"`
	PaymentStatus      string     `gorm:"column:payment_status"`
	Status             string     `gorm:"column:status;index"`
	Remarks            string     `gorm:"column:remarks"`
	CreatedBy          int64      `gorm:"column:created_by"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	CancellationReason string     `gorm:"column:cancellation_reason"`

	Resources []bookingResourceModel `gorm:"foreignKey:BookingID"`
	Rows      []commitmentRowModel   `gorm:"foreignKey:BookingID"`
	Heads     []extraChargeModel     `gorm:"foreignKey:BookingID"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookingResourceModel struct {
	ID         int64 `gorm:"column:id;primaryKey"`
	BookingID  int64 `gorm:"column:booking_id;index"`
	ResourceID int64 `gorm:"column:resource_id;index"`
}

func (bookingResourceModel) TableName() string { return "booking_resources" }

type commitmentRowModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;index"`
	Date      time.Time `gorm:"column:date;index"`
	Slot      string    `gorm:"column:slot"`
	Category  string    `gorm:"column:category"`
	Position  int       `gorm:"column:position"`
}

func (commitmentRowModel) TableName() string { return "commitment_rows" }

type extraChargeModel struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	BookingID    int64   `gorm:"column:booking_id;index"`
	Name         string  `gorm:"column:name"`
	Amount       float64 `gorm:"column:amount"`
	IsPercentage bool    `gorm:"column:is_percentage"`
	Position     int     `gorm:"column:position"`
}

func (extraChargeModel) TableName() string { return "extra_charges" }

// bookingSlotLockModel backs the transactional check-then-insert: one row
// per resource x commitment row, with a unique index so two racing
// bookings for the same resource/date/slot cannot both commit. Rows are
// released when the booking is cancelled.
type bookingSlotLockModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id;index"`
	ResourceID int64     `gorm:"column:resource_id;uniqueIndex:idx_no_overbooking"`
	Date       time.Time `gorm:"column:date;uniqueIndex:idx_no_overbooking"`
	Slot       string    `gorm:"column:slot;uniqueIndex:idx_no_overbooking"`
}

func (bookingSlotLockModel) TableName() string { return "booking_slot_locks" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:                 m.ID,
		Reference:          m.Reference,
		MemberID:           m.MemberID,
		Category:           domain.ResourceCategory(m.Category),
		Tier:               domain.PricingTier(m.Tier),
		EventType:          m.EventType,
		TotalPrice:         m.TotalPrice,
		PaidAmount:         m.PaidAmount,
		PendingAmount:      m.PendingAmount,
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		Status:             domain.BookingStatus(m.Status),
		Remarks:            m.Remarks,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
		CancellationReason: m.CancellationReason,
	}
	for _, r := range m.Resources {
		b.ResourceIDs = append(b.ResourceIDs, r.ResourceID)
	}
	for _, r := range m.Rows {
		b.Rows = append(b.Rows, domain.CommitmentRow{
			ID:       r.ID,
			Date:     domain.Day(r.Date),
			Slot:     domain.TimeSlot(r.Slot),
			Category: r.Category,
		})
	}
	for _, h := range m.Heads {
		b.Heads = append(b.Heads, domain.ExtraCharge{
			ID:           h.ID,
			Name:         h.Name,
			Amount:       h.Amount,
			IsPercentage: h.IsPercentage,
		})
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:                 b.ID,
		Reference:          b.Reference,
		MemberID:           b.MemberID,
		Category:           string(b.Category),
		Tier:               string(b.Tier),
		EventType:          b.EventType,
		TotalPrice:         b.TotalPrice,
		PaidAmount:         b.PaidAmount,
		PendingAmount:      b.PendingAmount,
		PaymentStatus:      string(b.PaymentStatus),
		Status:             string(b.Status),
		Remarks:            b.Remarks,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		b.ID = m.ID
		b.CreatedAt = m.CreatedAt
		b.UpdatedAt = m.UpdatedAt

		return insertBookingChildren(tx, b)
	})
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Model(&bookingModel{}).Where("id = ?", b.ID).Updates(map[string]any{
			"category":       m.Category,
			"tier":           m.Tier,
			"event_type":     m.EventType,
			"total_price":    m.TotalPrice,
			"paid_amount":    m.PaidAmount,
			"pending_amount": m.PendingAmount,
			"payment_status": m.PaymentStatus,
			"remarks":        m.Remarks,
		}).Error; err != nil {
			return err
		}

		if err := deleteBookingChildren(tx, b.ID); err != nil {
			return err
		}
		return insertBookingChildren(tx, b)
	})
}

func insertBookingChildren(tx *gorm.DB, b *domain.Booking) error {
	for _, resourceID := range b.ResourceIDs {
		link := bookingResourceModel{BookingID: b.ID, ResourceID: resourceID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}

	for i, row := range b.Rows {
		rm := commitmentRowModel{
			BookingID: b.ID,
			Date:      domain.Day(row.Date),
			Slot:      string(row.Slot),
			Category:  row.Category,
			Position:  i,
		}
		if err := tx.Create(&rm).Error; err != nil {
			return err
		}
		b.Rows[i].ID = rm.ID
	}

	for i, h := range b.Heads {
		hm := extraChargeModel{
			BookingID:    b.ID,
			Name:         h.Name,
			Amount:       h.Amount,
			IsPercentage: h.IsPercentage,
			Position:     i,
		}
		if err := tx.Create(&hm).Error; err != nil {
			return err
		}
		b.Heads[i].ID = hm.ID
	}

	for _, resourceID := range b.ResourceIDs {
		for _, row := range b.Rows {
			lock := bookingSlotLockModel{
				BookingID:  b.ID,
				ResourceID: resourceID,
				Date:       domain.Day(row.Date),
				Slot:       string(row.Slot),
			}
			if err := tx.Create(&lock).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func deleteBookingChildren(tx *gorm.DB, bookingID int64) error {
	for _, child := range []any{
		&bookingResourceModel{},
		&commitmentRowModel{},
		&extraChargeModel{},
		&bookingSlotLockModel{},
	} {
		if err := tx.Where("booking_id = ?", bookingID).Delete(child).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Preload("Resources").
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("date, position") }).
		Preload("Heads", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Preload("Resources").
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("date, position") }).
		Preload("Heads", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListActiveByResourceWindow returns every non-cancelled booking that
// touches the resource within [from, to]. It feeds the availability
// snapshot, so cancelled bookings must never appear here.
func (r *BookingRepository) ListActiveByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Distinct("bookings.*").
		Joins("JOIN booking_resources br ON br.booking_id = bookings.id").
		Joins("JOIN commitment_rows cr ON cr.booking_id = bookings.id").
		Where("br.resource_id = ?", resourceID).
		Where("bookings.status <> ?", string(domain.BookingCancelled))
	if !from.IsZero() {
		q = q.Where("cr.date >= ?", domain.Day(from))
	}
	if !to.IsZero() {
		q = q.Where("cr.date <= ?", domain.Day(to))
	}

	var models []bookingModel
	err := q.
		Preload("Resources").
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("date, position") }).
		Preload("Heads", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&bookingModel{}).Where("id = ?", id).Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancelled_at":        &now,
			"cancellation_reason": reason,
		}).Error; err != nil {
			return err
		}
		// release the slot locks so the dates become bookable again
		return tx.Where("booking_id = ?", id).Delete(&bookingSlotLockModel{}).Error
	})
}

// SaveAccounting persists a reconciled payment triple without touching the
// booking's rows or heads.
func (r *BookingRepository) SaveAccounting(ctx context.Context, id int64, total, paid, pending float64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(map[string]any{
		"total_price":    total,
		"paid_amount":    paid,
		"pending_amount": pending,
		"payment_status": string(status),
	}).Error
}
