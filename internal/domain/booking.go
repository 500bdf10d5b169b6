package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentHalfPaid PaymentStatus = "half_paid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentToBill   PaymentStatus = "to_bill"
	PaymentAdvance  PaymentStatus = "advance_payment"
)

// CommitmentRow is one date+slot unit of demand. Category is the per-day
// event label (reception, mehndi, ...) and may differ between days of the
// same booking unless the resource is exclusive.
type CommitmentRow struct {
	ID       int64     `json:"id,omitempty"`
	Date     time.Time `json:"date" validate:"required"`
	Slot     TimeSlot  `json:"slot" validate:"required"`
	Category string    `json:"category,omitempty"`
}

// ExtraCharge is a named head layered onto the base price. For a
// percentage head Amount is a derived cache of rate% x subtotal and is
// recomputed whenever the base or any fixed head changes.
type ExtraCharge struct {
	ID           int64   `json:"id,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Amount       float64 `json:"amount"`
	IsPercentage bool    `json:"is_percentage"`
}

type Booking struct {
	ID            int64            `json:"id"`
	Reference     string           `json:"reference"`
	MemberID      int64            `json:"member_id" validate:"required"`
	Category      ResourceCategory `json:"category" validate:"required"`
	ResourceIDs   []int64          `json:"resource_ids" validate:"required,min=1"`
	Rows          []CommitmentRow  `json:"rows"`
	Tier          PricingTier      `json:"tier"`
	Heads         []ExtraCharge    `json:"heads,omitempty"`
	EventType     string           `json:"event_type,omitempty"`
	TotalPrice    float64          `json:"total_price"`
	PaidAmount    float64          `json:"paid_amount"`
	PendingAmount float64          `json:"pending_amount"`
	PaymentStatus PaymentStatus    `json:"payment_status"`
	Status        BookingStatus    `json:"status"`
	Remarks       string           `json:"remarks,omitempty"`
	CreatedBy     int64            `json:"created_by,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	CancelledAt   *time.Time       `json:"cancelled_at,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty"`
}
