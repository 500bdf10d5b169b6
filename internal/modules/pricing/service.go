package pricing

import (
	"math"
	"regexp"
	"strconv"

	"clubadmin/internal/domain"
)

// Quote is the priced breakdown of a booking: base, recomputed heads, total.
type Quote struct {
	BasePrice  float64              `json:"base_price"`
	Heads      []domain.ExtraCharge `json:"heads"`
	TotalPrice float64              `json:"total_price"`
}

var rateRe = regexp.MustCompile(`\(\s*([0-9]+(?:\.[0-9]+)?)\s*%\s*\)`)

// ParseRate extracts the percentage rate encoded in a head label,
// e.g. "GST (7%)" -> 7. The label is the canonical source of the rate; the
// stored amount is only a cache.
func ParseRate(name string) (float64, bool) {
	m := rateRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	rate, err := strconv.ParseFloat(m[1], 64)
	if err != nil || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// Compute prices a set of commitment rows on one resource.
//
// Every row bills one unit of the tier rate regardless of slot, so a second
// slot on the same day doubles that day's charge, and a room booking (one
// FULL_DAY row per night) bills per night. Fixed heads are summed into the
// subtotal and every percentage head is recomputed from it, even the ones
// that did not change — the subtotal may have.
func Compute(res domain.Resource, tier domain.PricingTier, rows []domain.CommitmentRow, heads []domain.ExtraCharge) (Quote, error) {
	return ComputeCombined([]domain.Resource{res}, tier, rows, heads)
}

// ComputeCombined prices one row set booked across several resources (a
// multi-room booking). Each resource bills its own tier rate per row; the
// heads are layered once over the combined base.
func ComputeCombined(resources []domain.Resource, tier domain.PricingTier, rows []domain.CommitmentRow, heads []domain.ExtraCharge) (Quote, error) {
	basePrice := 0.0
	for _, res := range resources {
		unitPrice, ok := res.RateCard[tier]
		if !ok {
			return Quote{}, ErrUnknownTier
		}
		basePrice += unitPrice * float64(len(rows))
	}
	basePrice = roundMoney(basePrice)

	outHeads, total, err := layerHeads(basePrice, heads)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		BasePrice:  basePrice,
		Heads:      outHeads,
		TotalPrice: total,
	}, nil
}

// layerHeads validates and re-derives the extra charges over a base price:
// fixed heads form the subtotal with the base, percentage heads are
// recomputed from that subtotal. The input slice is not mutated.
func layerHeads(basePrice float64, heads []domain.ExtraCharge) ([]domain.ExtraCharge, float64, error) {
	fixedTotal := 0.0
	for _, h := range heads {
		if h.IsPercentage {
			if _, ok := ParseRate(h.Name); !ok {
				return nil, 0, ErrInvalidChargeAmount
			}
			continue
		}
		if h.Amount <= 0 {
			return nil, 0, ErrInvalidChargeAmount
		}
		fixedTotal += h.Amount
	}

	subtotal := basePrice + fixedTotal

	out := make([]domain.ExtraCharge, len(heads))
	copy(out, heads)

	total := subtotal
	for i := range out {
		if !out[i].IsPercentage {
			continue
		}
		rate, _ := ParseRate(out[i].Name)
		out[i].Amount = roundMoney(subtotal * rate / 100)
		total += out[i].Amount
	}

	return out, roundMoney(total), nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
