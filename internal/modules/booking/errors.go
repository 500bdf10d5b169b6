package booking

import (
	"errors"
	"time"

	"clubadmin/internal/domain"
	"clubadmin/internal/modules/availability"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrResourceNotFound        = errors.New("resource not found")
	ErrMemberNotFound          = errors.New("member not found")
	ErrSlotConflict            = errors.New("requested date/slot is not available")
	ErrHoldConflict            = errors.New("requested date/slot is held; resubmit with force to override")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// ConflictError carries the resolver's verdict to the handler. It unwraps
// to ErrSlotConflict for hard conflicts and ErrHoldConflict for soft ones,
// so callers keep switching on sentinels.
type ConflictError struct {
	Severity availability.Severity
	Message  string
	Date     time.Time
	Slot     domain.TimeSlot
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error {
	if e.Severity == availability.SeverityHard {
		return ErrSlotConflict
	}
	return ErrHoldConflict
}
