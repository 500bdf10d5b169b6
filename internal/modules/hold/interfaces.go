package hold

import (
	"context"
	"time"

	"clubadmin/internal/domain"
)

type HoldRepository interface {
	Create(ctx context.Context, h *domain.Hold) error
	GetByID(ctx context.Context, id int64) (*domain.Hold, error)
	ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Hold, error)
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

type BookingRepository interface {
	ListActiveByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Booking, error)
}

type MaintenanceRepository interface {
	ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.MaintenancePeriod, error)
}

// EventNotifier pushes hold events to the admin feed; best effort, a nil
// notifier is allowed.
type EventNotifier interface {
	NotifyHoldCreated(h *domain.Hold)
	NotifyHoldReleased(h *domain.Hold)
}
