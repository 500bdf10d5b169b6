package domain

import "time"

// Hold is an administrative soft-reservation on a resource. It blocks new
// bookings on the same date+slot by default but can be overridden by an
// explicitly forced booking.
type Hold struct {
	ID         int64     `json:"id"`
	ResourceID int64     `json:"resource_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
	Slot       TimeSlot  `json:"slot" validate:"required"`
	Remarks    string    `json:"remarks,omitempty"`
	CreatedBy  int64     `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Covers reports whether the hold's closed date interval contains the day.
func (h Hold) Covers(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(h.StartDate)) && !d.After(Day(h.EndDate))
}
