package pricing

import "errors"

var (
	ErrUnknownTier         = errors.New("no rate for pricing tier")
	ErrInvalidChargeAmount = errors.New("charge amount must be positive")
)
