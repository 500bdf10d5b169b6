package main

import (
	"context"
	"log"
	"os"
	"time"

	"clubadmin/internal/database"
	"clubadmin/internal/modules/hold"
	"clubadmin/internal/repository"
)

// Removes holds whose end date has passed. Run daily from cron so stale
// soft blocks never linger on the calendar.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	holdRepo := repository.NewHoldRepository(db)
	svc := hold.NewService(holdRepo, nil, nil, nil, nil)

	removed, err := svc.PurgeExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("hold cleanup failed: %v", err)
	}

	log.Printf("hold cleanup completed: removed=%d", removed)
}
