package booking

import (
	"time"

	"clubadmin/internal/domain"
)

type RowInput struct {
	Date     time.Time       `json:"date" binding:"required"`
	Slot     domain.TimeSlot `json:"slot" binding:"required"`
	Category string          `json:"category"`
}

type HeadInput struct {
	Name         string  `json:"name" binding:"required"`
	Amount       float64 `json:"amount"`
	IsPercentage bool    `json:"is_percentage"`
}

type CreateBookingRequest struct {
	MemberID    int64              `json:"member_id" binding:"required"`
	ResourceIDs []int64            `json:"resource_ids" binding:"required,min=1"`
	StartDate   time.Time          `json:"start_date" binding:"required"`
	EndDate     time.Time          `json:"end_date" binding:"required"`
	DefaultSlot domain.TimeSlot    `json:"default_slot"`
	Rows        []RowInput         `json:"rows"`
	Tier        domain.PricingTier `json:"tier"`
	EventType   string             `json:"event_type"`
	Heads       []HeadInput        `json:"heads"`

	PaidAmount    float64              `json:"paid_amount"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Remarks       string               `json:"remarks"`

	// Force overrides soft (hold) conflicts only; hard conflicts always
	// refuse. The handler surfaces soft conflicts as 409 + can_force so
	// the UI can resubmit with force set.
	Force bool `json:"force"`
}

type UpdateBookingRequest struct {
	ResourceIDs []int64            `json:"resource_ids"`
	StartDate   time.Time          `json:"start_date" binding:"required"`
	EndDate     time.Time          `json:"end_date" binding:"required"`
	DefaultSlot domain.TimeSlot    `json:"default_slot"`
	Rows        []RowInput         `json:"rows"`
	Tier        domain.PricingTier `json:"tier"`
	EventType   string             `json:"event_type"`
	Heads       []HeadInput        `json:"heads"`
	Remarks     string             `json:"remarks"`
	Force       bool               `json:"force"`
}

type UpdatePaymentRequest struct {
	PaidAmount    float64              `json:"paid_amount"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AdvanceStatus struct {
	RequiredAdvance  float64 `json:"required_advance"`
	PaidAmount       float64 `json:"paid_amount"`
	RemainingAdvance float64 `json:"remaining_advance"`
}
