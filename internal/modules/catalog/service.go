package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"clubadmin/internal/domain"
	"clubadmin/internal/modules/availability"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("resource not found")
)

type ResourceRepository interface {
	Create(ctx context.Context, res *domain.Resource) error
	Update(ctx context.Context, res *domain.Resource) error
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	List(ctx context.Context, category domain.ResourceCategory, activeOnly bool) ([]domain.Resource, error)
}

type BookingRepository interface {
	ListActiveByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Booking, error)
}

type HoldRepository interface {
	ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Hold, error)
}

type MaintenanceRepository interface {
	ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.MaintenancePeriod, error)
}

type Service struct {
	resources   ResourceRepository
	bookings    BookingRepository
	holds       HoldRepository
	maintenance MaintenanceRepository
}

func NewService(resources ResourceRepository, bookings BookingRepository, holds HoldRepository, maintenance MaintenanceRepository) *Service {
	return &Service{
		resources:   resources,
		bookings:    bookings,
		holds:       holds,
		maintenance: maintenance,
	}
}

func (s *Service) CreateResource(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	if err := validateResource(res); err != nil {
		return nil, err
	}
	if err := s.resources.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) UpdateResource(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	if err := validateResource(res); err != nil {
		return nil, err
	}
	if _, err := s.resources.GetByID(ctx, res.ID); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.resources.Update(ctx, res); err != nil {
		return nil, err
	}
	return s.resources.GetByID(ctx, res.ID)
}

func (s *Service) GetResource(ctx context.Context, id int64) (*domain.Resource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return res, nil
}

func (s *Service) ListResources(ctx context.Context, category domain.ResourceCategory, activeOnly bool) ([]domain.Resource, error) {
	return s.resources.List(ctx, category, activeOnly)
}

// DayAvailability is one calendar day of a resource's slot grid: which of
// its category's slots can still be booked without a conflict.
type DayAvailability struct {
	Date      string            `json:"date"`
	FreeSlots []domain.TimeSlot `json:"free_slots"`
}

// Availability walks the date range and reports the free slots per day.
// A held slot counts as taken here even though a forced booking could
// still claim it; the grid shows what books cleanly.
func (s *Service) Availability(ctx context.Context, resourceID int64, from, to time.Time) ([]DayAvailability, error) {
	first, last := domain.Day(from), domain.Day(to)
	if last.Before(first) {
		return nil, ErrValidation
	}

	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	snap, err := s.buildSnapshot(ctx, resourceID, first, last)
	if err != nil {
		return nil, err
	}

	slotSet := domain.SlotsFor(res.Category)
	out := make([]DayAvailability, 0, int(last.Sub(first).Hours()/24)+1)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		out = append(out, DayAvailability{
			Date:      day.Format("2006-01-02"),
			FreeSlots: availability.AvailableSlots(*res, day, slotSet, snap),
		})
	}
	return out, nil
}

func (s *Service) buildSnapshot(ctx context.Context, resourceID int64, from, to time.Time) (availability.Snapshot, error) {
	var snap availability.Snapshot

	bookings, err := s.bookings.ListActiveByResourceWindow(ctx, resourceID, from, to)
	if err != nil {
		return snap, err
	}
	for _, b := range bookings {
		snap.Bookings = append(snap.Bookings, availability.BookingCommitment{
			BookingID:  b.ID,
			ResourceID: resourceID,
			Rows:       b.Rows,
		})
	}

	snap.Holds, err = s.holds.ListByResourceWindow(ctx, resourceID, from, to)
	if err != nil {
		return snap, err
	}
	snap.Maintenance, err = s.maintenance.ListByResourceWindow(ctx, resourceID, from, to)
	if err != nil {
		return snap, err
	}
	return snap, nil
}

func validateResource(res *domain.Resource) error {
	if strings.TrimSpace(res.Name) == "" || res.Category == "" {
		return ErrValidation
	}
	for _, rate := range res.RateCard {
		if rate < 0 {
			return ErrValidation
		}
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
