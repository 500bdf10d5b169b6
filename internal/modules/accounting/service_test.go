package accounting

import (
	"testing"

	"clubadmin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, domain.PaymentUnpaid, DeriveStatus(0, 10000))
	assert.Equal(t, domain.PaymentHalfPaid, DeriveStatus(4000, 10000))
	assert.Equal(t, domain.PaymentPaid, DeriveStatus(10000, 10000))
}

func TestApplyPayment_Derived(t *testing.T) {
	st := ApplyPayment(10000, 4000, "")

	assert.Equal(t, domain.PaymentHalfPaid, st.Status)
	assert.Equal(t, 4000.0, st.PaidAmount)
	assert.Equal(t, 6000.0, st.PendingAmount)
}

func TestApplyPayment_ClampsOverpayment(t *testing.T) {
	// leniency, not a defect: the caller may hand us paid > total and the
	// portal must never show a negative pending amount
	st := ApplyPayment(10000, 12000, "")

	assert.Equal(t, domain.PaymentPaid, st.Status)
	assert.Equal(t, 10000.0, st.PaidAmount)
	assert.Equal(t, 0.0, st.PendingAmount)
}

func TestApplyPayment_ClampsNegative(t *testing.T) {
	st := ApplyPayment(10000, -500, "")

	assert.Equal(t, domain.PaymentUnpaid, st.Status)
	assert.Equal(t, 0.0, st.PaidAmount)
	assert.Equal(t, 10000.0, st.PendingAmount)
}

func TestApplyPayment_ToBillForcesZeroPending(t *testing.T) {
	st := ApplyPayment(10000, 2000, domain.PaymentToBill)

	assert.Equal(t, domain.PaymentToBill, st.Status)
	assert.Equal(t, 2000.0, st.PaidAmount)
	assert.Equal(t, 0.0, st.PendingAmount, "to_bill routes the shortfall to the member ledger")
}

func TestApplyPayment_AdvanceKeepsPending(t *testing.T) {
	st := ApplyPayment(10000, 2500, domain.PaymentAdvance)

	assert.Equal(t, domain.PaymentAdvance, st.Status)
	assert.Equal(t, 7500.0, st.PendingAmount)
}

func TestReconcileTotalChange_PriceShrinkClamp(t *testing.T) {
	prev := State{TotalPrice: 10000, PaidAmount: 8000, PendingAmount: 2000, Status: domain.PaymentHalfPaid}

	st, overpaid := ReconcileTotalChange(5000, prev)

	assert.Equal(t, domain.PaymentPaid, st.Status)
	assert.Equal(t, 5000.0, st.PaidAmount)
	assert.Equal(t, 0.0, st.PendingAmount)
	assert.Equal(t, 3000.0, overpaid, "clamped amount is surfaced, not stored")
}

func TestReconcileTotalChange_PriceGrowDemotion(t *testing.T) {
	prev := State{TotalPrice: 10000, PaidAmount: 10000, PendingAmount: 0, Status: domain.PaymentPaid}

	st, overpaid := ReconcileTotalChange(15000, prev)

	assert.Equal(t, domain.PaymentHalfPaid, st.Status)
	assert.Equal(t, 10000.0, st.PaidAmount)
	assert.Equal(t, 5000.0, st.PendingAmount)
	assert.Equal(t, 0.0, overpaid)
}

func TestReconcileTotalChange_GrowWhileHalfPaid(t *testing.T) {
	prev := State{TotalPrice: 10000, PaidAmount: 4000, PendingAmount: 6000, Status: domain.PaymentHalfPaid}

	st, _ := ReconcileTotalChange(12000, prev)

	assert.Equal(t, domain.PaymentHalfPaid, st.Status)
	assert.Equal(t, 4000.0, st.PaidAmount)
	assert.Equal(t, 8000.0, st.PendingAmount)
}

func TestReconcileTotalChange_ToBillStaysZeroPending(t *testing.T) {
	prev := State{TotalPrice: 10000, PaidAmount: 0, PendingAmount: 0, Status: domain.PaymentToBill}

	st, _ := ReconcileTotalChange(14000, prev)

	assert.Equal(t, domain.PaymentToBill, st.Status)
	assert.Equal(t, 0.0, st.PendingAmount)
}

func TestReconcileTotalChange_ShrinkAboveP(t *testing.T) {
	// price shrinks but stays above what was collected: no clamp, no demotion
	prev := State{TotalPrice: 10000, PaidAmount: 4000, PendingAmount: 6000, Status: domain.PaymentHalfPaid}

	st, overpaid := ReconcileTotalChange(8000, prev)

	assert.Equal(t, domain.PaymentHalfPaid, st.Status)
	assert.Equal(t, 4000.0, st.PaidAmount)
	assert.Equal(t, 4000.0, st.PendingAmount)
	assert.Equal(t, 0.0, overpaid)
}

// Invariants hold after any sequence of payment edits and repricings.
func TestAccountingInvariants_MutationSequence(t *testing.T) {
	st := ApplyPayment(10000, 0, "")

	check := func(st State) {
		t.Helper()
		assert.GreaterOrEqual(t, st.PaidAmount, 0.0)
		assert.LessOrEqual(t, st.PaidAmount, st.TotalPrice)
		assert.GreaterOrEqual(t, st.PendingAmount, 0.0)
		if st.Status != domain.PaymentToBill {
			assert.Equal(t, st.TotalPrice-st.PaidAmount, st.PendingAmount)
		} else {
			assert.Equal(t, 0.0, st.PendingAmount)
		}
		if st.Status == domain.PaymentPaid {
			assert.Equal(t, st.TotalPrice, st.PaidAmount)
		}
	}
	check(st)

	st = ApplyPayment(st.TotalPrice, 7000, "")
	check(st)

	st, _ = ReconcileTotalChange(5000, st)
	check(st)

	st, _ = ReconcileTotalChange(20000, st)
	check(st)

	st = ApplyPayment(st.TotalPrice, 20000, "")
	check(st)

	st, _ = ReconcileTotalChange(25000, st)
	check(st)
	assert.Equal(t, domain.PaymentHalfPaid, st.Status)
}

func advanceTiers() []AdvanceTier {
	return []AdvanceTier{
		{MaxUnits: 2, Percent: 25},
		{MaxUnits: 5, Percent: 50},
		{MaxUnits: 0, Percent: 75},
	}
}

func TestRequiredAdvance_TierSelection(t *testing.T) {
	assert.Equal(t, 2500.0, RequiredAdvance(10000, 1, advanceTiers()))
	assert.Equal(t, 2500.0, RequiredAdvance(10000, 2, advanceTiers()))
	assert.Equal(t, 5000.0, RequiredAdvance(10000, 3, advanceTiers()))
	assert.Equal(t, 7500.0, RequiredAdvance(10000, 6, advanceTiers()))
}

func TestRequiredAdvance_Empty(t *testing.T) {
	assert.Equal(t, 0.0, RequiredAdvance(10000, 3, nil))
	assert.Equal(t, 0.0, RequiredAdvance(0, 3, advanceTiers()))
}

func TestRemainingAdvance(t *testing.T) {
	assert.Equal(t, 1500.0, RemainingAdvance(2500, 1000))
	assert.Equal(t, 0.0, RemainingAdvance(2500, 4000), "never negative")
}
