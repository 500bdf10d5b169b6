package domain

import "time"

type Member struct {
	ID           int64       `json:"id"`
	MembershipNo string      `json:"membership_no" validate:"required"`
	Name         string      `json:"name" validate:"required"`
	Email        string      `json:"email,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Tier         PricingTier `json:"tier"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
