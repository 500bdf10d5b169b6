package domain

import "time"

// MaintenancePeriod takes a resource out of service for a closed date
// interval. It blocks every slot on every covered day, for bookings and
// holds alike, and cannot be overridden.
type MaintenancePeriod struct {
	ID         int64     `json:"id"`
	ResourceID int64     `json:"resource_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
	Reason     string    `json:"reason" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
}

func (m MaintenancePeriod) Covers(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(m.StartDate)) && !d.After(Day(m.EndDate))
}
