package domain

import "time"

type ResourceCategory string

const (
	CategoryRoom       ResourceCategory = "room"
	CategoryHall       ResourceCategory = "hall"
	CategoryLawn       ResourceCategory = "lawn"
	CategoryPhotoshoot ResourceCategory = "photoshoot"
)

type TimeSlot string

const (
	SlotFullDay TimeSlot = "FULL_DAY"
	SlotDay     TimeSlot = "DAY"
	SlotNight   TimeSlot = "NIGHT"
	SlotMorning TimeSlot = "MORNING"
	SlotEvening TimeSlot = "EVENING"
)

// SlotsFor returns the ordered slot set a category is booked in.
// Rooms carry one FULL_DAY slot per night so every category flows through
// the same per-row availability and pricing path.
func SlotsFor(c ResourceCategory) []TimeSlot {
	switch c {
	case CategoryHall, CategoryLawn:
		return []TimeSlot{SlotDay, SlotNight}
	case CategoryPhotoshoot:
		return []TimeSlot{SlotMorning, SlotEvening, SlotNight}
	default:
		return []TimeSlot{SlotFullDay}
	}
}

type PricingTier string

const (
	TierMember     PricingTier = "member"
	TierAffiliated PricingTier = "affiliated"
	TierGuest      PricingTier = "guest"
)

type Resource struct {
	ID           int64                   `json:"id"`
	Name         string                  `json:"name" validate:"required"`
	Category     ResourceCategory        `json:"category" validate:"required"`
	Description  string                  `json:"description,omitempty"`
	Capacity     int                     `json:"capacity,omitempty"`
	IsActive     bool                    `json:"is_active"`
	OutOfService bool                    `json:"out_of_service"`
	IsExclusive  bool                    `json:"is_exclusive"`
	RateCard     map[PricingTier]float64 `json:"rate_card"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// Day truncates a timestamp to its calendar day in UTC. All availability
// and expansion comparisons happen at day precision.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
