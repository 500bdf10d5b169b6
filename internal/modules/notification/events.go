package notification

import (
	"time"

	"clubadmin/internal/domain"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
	TypeHoldCreated      = "hold.created"
	TypeHoldReleased     = "hold.released"
)

// Event is the envelope pushed over the admin feed.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Notifier broadcasts booking lifecycle events over the hub. All sends are
// best effort; a closed or absent feed never fails the calling workflow.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyBookingCreated(b *domain.Booking) {
	n.broadcast(TypeBookingCreated, map[string]any{
		"booking_id":   b.ID,
		"reference":    b.Reference,
		"member_id":    b.MemberID,
		"category":     b.Category,
		"resource_ids": b.ResourceIDs,
		"total_price":  b.TotalPrice,
	})
}

func (n *Notifier) NotifyBookingCancelled(b *domain.Booking, reason string) {
	n.broadcast(TypeBookingCancelled, map[string]any{
		"booking_id": b.ID,
		"reference":  b.Reference,
		"member_id":  b.MemberID,
		"reason":     reason,
	})
}

func (n *Notifier) NotifyHoldCreated(h *domain.Hold) {
	n.broadcast(TypeHoldCreated, map[string]any{
		"hold_id":     h.ID,
		"resource_id": h.ResourceID,
		"start_date":  h.StartDate,
		"end_date":    h.EndDate,
		"slot":        h.Slot,
	})
}

func (n *Notifier) NotifyHoldReleased(h *domain.Hold) {
	n.broadcast(TypeHoldReleased, map[string]any{
		"hold_id":     h.ID,
		"resource_id": h.ResourceID,
	})
}

func (n *Notifier) broadcast(eventType string, data any) {
	if n == nil || n.hub == nil {
		return
	}
	n.hub.Broadcast(Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
}
