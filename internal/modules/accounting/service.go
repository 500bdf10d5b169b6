package accounting

import (
	"math"

	"clubadmin/internal/domain"
)

// State is the accounting triple of a booking plus the total it was
// reconciled against. After any operation in this package the invariants
// hold: 0 <= paid <= total, pending >= 0, pending = max(0, total-paid)
// except under to_bill (forced to 0), and paid == total whenever the
// status claims paid.
type State struct {
	TotalPrice    float64              `json:"total_price"`
	PaidAmount    float64              `json:"paid_amount"`
	PendingAmount float64              `json:"pending_amount"`
	Status        domain.PaymentStatus `json:"payment_status"`
}

// DeriveStatus maps a paid amount onto the three derivable statuses.
// to_bill and advance_payment are never derived; they are entered only by
// explicit selection.
func DeriveStatus(paid, total float64) domain.PaymentStatus {
	switch {
	case total > 0 && paid >= total:
		return domain.PaymentPaid
	case paid > 0:
		return domain.PaymentHalfPaid
	default:
		return domain.PaymentUnpaid
	}
}

// ApplyPayment records a paid amount against a total. An explicit to_bill
// or advance_payment selection is honored; anything else is derived from
// the clamped amount. Out-of-range amounts are clamped, not rejected: the
// portal never shows a negative or over-100% pending figure.
func ApplyPayment(total, paid float64, explicit domain.PaymentStatus) State {
	total = roundMoney(math.Max(0, total))
	paid = roundMoney(clamp(paid, 0, total))

	st := State{TotalPrice: total, PaidAmount: paid}

	switch explicit {
	case domain.PaymentToBill:
		st.Status = domain.PaymentToBill
		st.PendingAmount = 0
	case domain.PaymentAdvance:
		st.Status = domain.PaymentAdvance
		st.PendingAmount = roundMoney(total - paid)
	default:
		st.Status = DeriveStatus(paid, total)
		st.PendingAmount = roundMoney(total - paid)
	}
	return st
}

// ReconcileTotalChange re-validates a previously recorded payment against a
// freshly priced total. The second return value is the overpayment that was
// clamped away when the price shrank below the collected amount; it is
// surfaced for the caller but never stored (refunds are a voucher concern
// outside this core).
func ReconcileTotalChange(newTotal float64, prev State) (State, float64) {
	newTotal = roundMoney(math.Max(0, newTotal))

	if newTotal < prev.PaidAmount {
		return State{
			TotalPrice:    newTotal,
			PaidAmount:    newTotal,
			PendingAmount: 0,
			Status:        domain.PaymentPaid,
		}, roundMoney(prev.PaidAmount - newTotal)
	}

	st := State{TotalPrice: newTotal, PaidAmount: prev.PaidAmount, Status: prev.Status}

	if newTotal > prev.PaidAmount && prev.Status == domain.PaymentPaid {
		// fully paid no longer covers the grown price
		st.Status = domain.PaymentHalfPaid
	}

	if st.Status == domain.PaymentToBill {
		// shortfall is routed to the member ledger, not tracked here
		st.PendingAmount = 0
	} else {
		st.PendingAmount = roundMoney(newTotal - prev.PaidAmount)
	}
	return st, 0
}

// AdvanceTier selects a required advance percentage by booked unit count.
// MaxUnits == 0 means no upper bound.
type AdvanceTier struct {
	MaxUnits int
	Percent  float64
}

// RequiredAdvance computes the advance due on the rent-only subtotal
// (total minus every extra-charge head) for the booked unit count.
func RequiredAdvance(rentOnly float64, units int, tiers []AdvanceTier) float64 {
	if rentOnly <= 0 || len(tiers) == 0 {
		return 0
	}
	var open *AdvanceTier
	for i := range tiers {
		t := &tiers[i]
		if t.MaxUnits == 0 {
			if open == nil {
				open = t
			}
			continue
		}
		if units <= t.MaxUnits {
			return roundMoney(rentOnly * t.Percent / 100)
		}
	}
	if open != nil {
		return roundMoney(rentOnly * open.Percent / 100)
	}
	return 0
}

// RemainingAdvance is the shortfall against the required advance. It is a
// derived read-only figure: callers warn or enforce, this package does not.
func RemainingAdvance(required, paid float64) float64 {
	return roundMoney(math.Max(0, required-paid))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
