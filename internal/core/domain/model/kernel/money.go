package kernel

import (
	"fmt"

	"tanker/internal/pkg/errs"
)

// Money represents an amount of currency in whole units. Prices and bids in
// the brokerage carry no fractional part, so an integer representation avoids
// floating-point comparison problems in bound checks.
type Money int64

// NewMoney creates a Money amount, validating that it is strictly positive.
// All prices in the system (tier base prices, customer bids, supplier bids,
// accepted prices) must be greater than zero.
func NewMoney(amount int64) (Money, error) {
	m := Money(amount)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// Validate checks that the amount is strictly positive.
func (m Money) Validate() error {
	if m <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("money amount is invalid",
			fmt.Errorf("%d is not greater than 0", int64(m)))
	}
	return nil
}

// Int64 returns the raw amount for persistence and serialization.
func (m Money) Int64() int64 {
	return int64(m)
}
