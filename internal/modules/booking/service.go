package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"clubadmin/internal/domain"
	"clubadmin/internal/modules/accounting"
	"clubadmin/internal/modules/availability"
	"clubadmin/internal/modules/pricing"
	"clubadmin/internal/modules/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings    BookingRepository
	resources   ResourceRepository
	members     MemberRepository
	holds       HoldRepository
	maintenance MaintenanceRepository
	notifs      EventNotifier
	advance     []accounting.AdvanceTier
}

func NewService(
	bookings BookingRepository,
	resources ResourceRepository,
	members MemberRepository,
	holds HoldRepository,
	maintenance MaintenanceRepository,
	notifs EventNotifier,
	advance []accounting.AdvanceTier,
) *Service {
	return &Service{
		bookings:    bookings,
		resources:   resources,
		members:     members,
		holds:       holds,
		maintenance: maintenance,
		notifs:      notifs,
		advance:     advance,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest, createdBy int64) (*domain.Booking, error) {
	if domain.Day(req.EndDate).Before(domain.Day(req.StartDate)) {
		return nil, ErrValidation
	}

	member, err := s.members.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, mapNotFound(err, ErrMemberNotFound)
	}

	resources, err := s.loadResources(ctx, req.ResourceIDs)
	if err != nil {
		return nil, err
	}
	category := resources[0].Category

	tier := req.Tier
	if tier == "" {
		tier = member.Tier
	}
	if tier == "" {
		tier = domain.TierGuest
	}

	rows, err := s.expandRows(category, req.StartDate, req.EndDate, req.Rows, req.DefaultSlot, req.EventType, anyExclusive(resources))
	if err != nil {
		return nil, err
	}

	if err := s.checkAvailability(ctx, resources, rows, 0, req.Force); err != nil {
		return nil, err
	}

	quote, err := pricing.ComputeCombined(resources, tier, rows, chargesFromInput(req.Heads))
	if err != nil {
		return nil, err
	}

	st := accounting.ApplyPayment(quote.TotalPrice, req.PaidAmount, req.PaymentStatus)

	status := domain.BookingPending
	if st.PaidAmount > 0 || st.Status == domain.PaymentToBill {
		// a recorded payment (or an explicit bill-to-member) confirms the dates
		status = domain.BookingConfirmed
	}

	b := &domain.Booking{
		Reference:     uuid.NewString(),
		MemberID:      member.ID,
		Category:      category,
		ResourceIDs:   req.ResourceIDs,
		Rows:          rows,
		Tier:          tier,
		Heads:         quote.Heads,
		EventType:     req.EventType,
		TotalPrice:    st.TotalPrice,
		PaidAmount:    st.PaidAmount,
		PendingAmount: st.PendingAmount,
		PaymentStatus: st.Status,
		Status:        status,
		Remarks:       req.Remarks,
		CreatedBy:     createdBy,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverbooking(err) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingCreated(b)
	}
	return b, nil
}

// EditBooking re-expands the commitment, re-checks availability (ignoring
// the booking's own rows) and reprices. The third return value is the
// overpayment clamped away when the new total fell below the collected
// amount; it is surfaced to the caller, never stored.
func (s *Service) EditBooking(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, float64, error) {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, 0, mapNotFound(err, ErrNotFound)
	}
	if existing.Status == domain.BookingCancelled || existing.Status == domain.BookingCompleted {
		return nil, 0, ErrInvalidStatusTransition
	}
	if domain.Day(req.EndDate).Before(domain.Day(req.StartDate)) {
		return nil, 0, ErrValidation
	}

	resourceIDs := req.ResourceIDs
	if len(resourceIDs) == 0 {
		resourceIDs = existing.ResourceIDs
	}
	resources, err := s.loadResources(ctx, resourceIDs)
	if err != nil {
		return nil, 0, err
	}
	category := resources[0].Category

	tier := req.Tier
	if tier == "" {
		tier = existing.Tier
	}
	eventType := req.EventType
	if eventType == "" {
		eventType = existing.EventType
	}

	previous := existing.Rows
	if len(req.Rows) > 0 {
		previous = rowsFromInput(req.Rows)
	}
	defaultSlot := req.DefaultSlot
	if defaultSlot == "" && len(existing.Rows) > 0 {
		defaultSlot = existing.Rows[0].Slot
	}

	rows, err := s.expandRowsFrom(category, req.StartDate, req.EndDate, previous, defaultSlot, eventType, anyExclusive(resources))
	if err != nil {
		return nil, 0, err
	}

	if err := s.checkAvailability(ctx, resources, rows, existing.ID, req.Force); err != nil {
		return nil, 0, err
	}

	heads := existing.Heads
	if req.Heads != nil {
		heads = chargesFromInput(req.Heads)
	}
	quote, err := pricing.ComputeCombined(resources, tier, rows, heads)
	if err != nil {
		return nil, 0, err
	}

	st, overpaid := accounting.ReconcileTotalChange(quote.TotalPrice, accounting.State{
		TotalPrice:    existing.TotalPrice,
		PaidAmount:    existing.PaidAmount,
		PendingAmount: existing.PendingAmount,
		Status:        existing.PaymentStatus,
	})

	updated := *existing
	updated.ResourceIDs = resourceIDs
	updated.Category = category
	updated.Rows = rows
	updated.Tier = tier
	updated.EventType = eventType
	updated.Heads = quote.Heads
	updated.TotalPrice = st.TotalPrice
	updated.PaidAmount = st.PaidAmount
	updated.PendingAmount = st.PendingAmount
	updated.PaymentStatus = st.Status
	updated.Remarks = req.Remarks

	if err := s.bookings.Update(ctx, &updated); err != nil {
		if isOverbooking(err) {
			return nil, 0, ErrSlotConflict
		}
		return nil, 0, err
	}
	return &updated, overpaid, nil
}

func (s *Service) UpdatePayment(ctx context.Context, id int64, req UpdatePaymentRequest) (*domain.Booking, error) {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	if existing.Status == domain.BookingCancelled {
		return nil, ErrInvalidStatusTransition
	}

	st := accounting.ApplyPayment(existing.TotalPrice, req.PaidAmount, req.PaymentStatus)
	if err := s.bookings.SaveAccounting(ctx, id, st.TotalPrice, st.PaidAmount, st.PendingAmount, st.Status); err != nil {
		return nil, err
	}

	if existing.Status == domain.BookingPending && (st.PaidAmount > 0 || st.Status == domain.PaymentToBill) {
		if err := s.bookings.UpdateStatus(ctx, id, domain.BookingConfirmed); err != nil {
			return nil, err
		}
	}

	return s.bookings.GetByID(ctx, id)
}

func (s *Service) CancelBooking(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	if existing.Status == domain.BookingCancelled || existing.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, id, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingCancelled(existing, reason)
	}
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	return b, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.ListByMember(ctx, memberID, limit, offset)
}

// ListByResourceWindow returns the active bookings touching a resource's
// calendar window, the same set the conflict snapshot is built from.
func (s *Service) ListByResourceWindow(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.Booking, error) {
	if !to.IsZero() && !from.IsZero() && domain.Day(to).Before(domain.Day(from)) {
		return nil, ErrValidation
	}
	return s.bookings.ListActiveByResourceWindow(ctx, resourceID, from, to)
}

// AdvanceStatus reports the advance due on the rent-only subtotal (total
// minus every extra-charge head) against what has been collected. It is
// informational: nothing in the workflow enforces it.
func (s *Service) AdvanceStatus(ctx context.Context, id int64) (*AdvanceStatus, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}

	rentOnly := b.TotalPrice
	for _, h := range b.Heads {
		rentOnly -= h.Amount
	}

	required := accounting.RequiredAdvance(rentOnly, len(b.ResourceIDs), s.advance)
	return &AdvanceStatus{
		RequiredAdvance:  required,
		PaidAmount:       b.PaidAmount,
		RemainingAdvance: accounting.RemainingAdvance(required, b.PaidAmount),
	}, nil
}

func (s *Service) loadResources(ctx context.Context, ids []int64) ([]domain.Resource, error) {
	if len(ids) == 0 {
		return nil, ErrValidation
	}
	resources, err := s.resources.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(resources) != len(ids) {
		return nil, ErrResourceNotFound
	}
	for _, res := range resources[1:] {
		if res.Category != resources[0].Category {
			// a booking spans one category; mixed picks price and expand differently
			return nil, ErrValidation
		}
	}
	return resources, nil
}

func (s *Service) expandRows(category domain.ResourceCategory, start, end time.Time, inputs []RowInput, defaultSlot domain.TimeSlot, eventType string, exclusive bool) ([]domain.CommitmentRow, error) {
	return s.expandRowsFrom(category, start, end, rowsFromInput(inputs), defaultSlot, eventType, exclusive)
}

func (s *Service) expandRowsFrom(category domain.ResourceCategory, start, end time.Time, previous []domain.CommitmentRow, defaultSlot domain.TimeSlot, eventType string, exclusive bool) ([]domain.CommitmentRow, error) {
	slotSet := domain.SlotsFor(category)
	if defaultSlot == "" {
		defaultSlot = slotSet[0]
	}
	if !slotInSet(defaultSlot, slotSet) {
		return nil, ErrValidation
	}
	for _, row := range previous {
		if !slotInSet(row.Slot, slotSet) {
			return nil, ErrValidation
		}
	}

	forcedCategory := ""
	if exclusive {
		// exclusive resources host one event; per-day categories collapse to it
		forcedCategory = eventType
	}

	rows := schedule.Expand(start, end, previous, defaultSlot, eventType, forcedCategory)
	if len(rows) == 0 {
		return nil, ErrValidation
	}
	return rows, nil
}

func (s *Service) checkAvailability(ctx context.Context, resources []domain.Resource, rows []domain.CommitmentRow, excludeBookingID int64, force bool) error {
	from, to := rowsWindow(rows)
	for _, res := range resources {
		snap, err := s.buildSnapshot(ctx, res.ID, from, to)
		if err != nil {
			return err
		}
		if r := availability.CheckConflict(res, rows, snap, excludeBookingID); r.Blocks(force) {
			return &ConflictError{Severity: r.Severity, Message: r.Message, Date: r.Date, Slot: r.Slot}
		}
	}
	return nil
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

func rowsWindow(rows []domain.CommitmentRow) (time.Time, time.Time) {
	if len(rows) == 0 {
		return time.Time{}, time.Time{}
	}
	from, to := domain.Day(rows[0].Date), domain.Day(rows[0].Date)
	for _, row := range rows[1:] {
		d := domain.Day(row.Date)
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}
	return from, to
}

func rowsFromInput(inputs []RowInput) []domain.CommitmentRow {
	rows := make([]domain.CommitmentRow, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, domain.CommitmentRow{
			Date:     domain.Day(in.Date),
			Slot:     in.Slot,
			Category: in.Category,
		})
	}
	return rows
}

func chargesFromInput(inputs []HeadInput) []domain.ExtraCharge {
	heads := make([]domain.ExtraCharge, 0, len(inputs))
	for _, in := range inputs {
		heads = append(heads, domain.ExtraCharge{
			Name:         in.Name,
			Amount:       in.Amount,
			IsPercentage: in.IsPercentage,
		})
	}
	return heads
}

func slotInSet(slot domain.TimeSlot, set []domain.TimeSlot) bool {
	for _, s := range set {
		if s == slot {
			return true
		}
	}
	return false
}

func anyExclusive(resources []domain.Resource) bool {
	for _, res := range resources {
		if res.IsExclusive {
			return true
		}
	}
	return false
}

func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func isOverbooking(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_overbooking"
	}
	return false
}
