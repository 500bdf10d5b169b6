package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clubadmin/internal/config"
	"clubadmin/internal/database"
	"clubadmin/internal/middleware"
	"clubadmin/internal/modules/auth"
	"clubadmin/internal/modules/booking"
	"clubadmin/internal/modules/catalog"
	"clubadmin/internal/modules/hold"
	"clubadmin/internal/modules/maintenance"
	"clubadmin/internal/modules/member"
	"clubadmin/internal/modules/notification"
	jwtsvc "clubadmin/internal/pkg/jwt"
	"clubadmin/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	adminRepo := repository.NewAdminRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	holdRepo := repository.NewHoldRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notification.NewHub()
	defer hub.Close()
	notifier := notification.NewNotifier(hub)

	authHandler := auth.NewHandler(auth.NewService(adminRepo, j))
	memberHandler := member.NewHandler(member.NewService(memberRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(resourceRepo, bookingRepo, holdRepo, maintenanceRepo))
	bookingHandler := booking.NewHandler(booking.NewService(
		bookingRepo, resourceRepo, memberRepo, holdRepo, maintenanceRepo,
		notifier, cfg.PaymentRules.AdvanceTiers,
	))
	holdHandler := hold.NewHandler(hold.NewService(holdRepo, resourceRepo, bookingRepo, maintenanceRepo, notifier))
	maintenanceHandler := maintenance.NewHandler(maintenance.NewService(maintenanceRepo, resourceRepo))
	feedHandler := notification.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			memberHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			holdHandler.RegisterRoutes(protected)
			maintenanceHandler.RegisterRoutes(protected)
			feedHandler.RegisterRoutes(protected)

			restricted := protected.Group("/")
			restricted.Use(middleware.SuperAdminOnly())
			{
				authHandler.RegisterAdminRoutes(restricted)
			}
		}
	}

	log.Printf("listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
