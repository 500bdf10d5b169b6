package hold

import (
	"context"
	"errors"
	"time"

	"clubadmin/internal/domain"
	"clubadmin/internal/modules/availability"

	"gorm.io/gorm"
)

type Service struct {
	holds       HoldRepository
	resources   ResourceRepository
	bookings    BookingRepository
	maintenance MaintenanceRepository
	notifs      EventNotifier
}

func NewService(holds HoldRepository, resources ResourceRepository, bookings BookingRepository, maintenance MaintenanceRepository, notifs EventNotifier) *Service {
	return &Service{
		holds:       holds,
		resources:   resources,
		bookings:    bookings,
		maintenance: maintenance,
		notifs:      notifs,
	}
}

// CreateHold pencils a resource in for a date range. A hold is refused
// wherever a booking would be refused hard (maintenance, an existing
// booking, an exclusive resource already committed); other holds do not
// block, two admins may pencil in the same dates.
func (s *Service) CreateHold(ctx context.Context, req CreateHoldRequest, createdBy int64) (*domain.Hold, error) {
	if domain.Day(req.EndDate).Before(domain.Day(req.StartDate)) {
		return nil, ErrValidation
	}

	res, err := s.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	slotSet := domain.SlotsFor(res.Category)
	slot := req.Slot
	if slot == "" {
		slot = slotSet[0]
	}
	if !slotAllowed(slot, slotSet) {
		return nil, ErrValidation
	}

	rows := rowsForRange(req.StartDate, req.EndDate, slot)

	snap, err := s.buildSnapshot(ctx, req.ResourceID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if r := availability.CheckConflict(*res, rows, snap, 0); r.Severity == availability.SeverityHard {
		return nil, ErrBlocked
	}

	h := &domain.Hold{
		ResourceID: req.ResourceID,
		StartDate:  domain.Day(req.StartDate),
		EndDate:    domain.Day(req.EndDate),
		Slot:       slot,
		Remarks:    req.Remarks,
		CreatedBy:  createdBy,
	}
	if err := s.holds.Create(ctx, h); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyHoldCreated(h)
	}
	return h, nil
}

func (s *Service) ListByResource(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Hold, error) {
	return s.holds.ListByResourceWindow(ctx, resourceID, from, to)
}

func (s *Service) Release(ctx context.Context, id int64) error {
	h, err := s.holds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.holds.Delete(ctx, id); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.NotifyHoldReleased(h)
	}
	return nil
}

// PurgeExpired drops holds whose end date is behind the given day. It
// backs the cleanup command, keeping the hold table from accreting stale
// soft blocks.
func (s *Service) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	return s.holds.DeleteExpired(ctx, domain.Day(before))
}

// buildSnapshot omits holds on purpose: holds never block each other.
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

	snap.Maintenance, err = s.maintenance.ListByResourceWindow(ctx, resourceID, from, to)
	if err != nil {
		return snap, err
	}
	return snap, nil
}

func rowsForRange(start, end time.Time, slot domain.TimeSlot) []domain.CommitmentRow {
	first, last := domain.Day(start), domain.Day(end)
	var rows []domain.CommitmentRow
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		rows = append(rows, domain.CommitmentRow{Date: day, Slot: slot})
	}
	return rows
}

func slotAllowed(slot domain.TimeSlot, set []domain.TimeSlot) bool {
	for _, s := range set {
		if s == slot {
			return true
		}
	}
	return false
}
