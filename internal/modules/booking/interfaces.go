package booking

import (
	"context"
	"time"

	"clubadmin/internal/domain"
)

// BookingRepository is the persistence surface the booking workflow uses.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Booking, error)
	ListActiveByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	SaveAccounting(ctx context.Context, id int64, total, paid, pending float64, status domain.PaymentStatus) error
}

type ResourceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Resource, error)
}

type MemberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
}

type HoldRepository interface {
	ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Hold, error)
}

type MaintenanceRepository interface {
	ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.MaintenancePeriod, error)
}

// EventNotifier pushes booking events to the admin feed. The feed is best
// effort; implementations must not fail the workflow.
type EventNotifier interface {
	NotifyBookingCreated(b *domain.Booking)
	NotifyBookingCancelled(b *domain.Booking, reason string)
}
