package maintenance

import (
	"context"
	"errors"
	"strings"
	"time"

	"clubadmin/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrResourceNotFound = errors.New("resource not found")
)

type Repository interface {
	Create(ctx context.Context, p *domain.MaintenancePeriod) error
	ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.MaintenancePeriod, error)
	Delete(ctx context.Context, id int64) error
}

type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

type Service struct {
	periods   Repository
	resources ResourceRepository
}

func NewService(periods Repository, resources ResourceRepository) *Service {
	return &Service{periods: periods, resources: resources}
}

// Schedule records a maintenance window. No conflict check runs: planned
// work trumps whatever is on the calendar, and clashing bookings are for
// the operator to resolve by editing or cancelling them.
func (s *Service) Schedule(ctx context.Context, p *domain.MaintenancePeriod) (*domain.MaintenancePeriod, error) {
	if strings.TrimSpace(p.Reason) == "" {
		return nil, ErrValidation
	}
	if domain.Day(p.EndDate).Before(domain.Day(p.StartDate)) {
		return nil, ErrValidation
	}
	if _, err := s.resources.GetByID(ctx, p.ResourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	p.StartDate = domain.Day(p.StartDate)
	p.EndDate = domain.Day(p.EndDate)
	if err := s.periods.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByResource(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.MaintenancePeriod, error) {
	return s.periods.ListByResourceWindow(ctx, resourceID, from, to)
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.periods.Delete(ctx, id)
}
