package services

import (
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"
)

// Customer bids are accepted within [85%, 300%] of the tier base price,
// bounds inclusive.
const (
	bidLowerPercent = 85
	bidUpperPercent = 300
)

// PriceList maps allowed delivery quantity tiers (litres) to their base
// prices. The table is static and pre-seeded; it carries no mutation logic.
//
// Example:
//
//	prices := services.NewPriceList()
//	base, err := prices.BasePrice(2000) // 10000
//	err = prices.ValidateBidPrice(2000, kernel.Money(9000)) // within [8500, 30000]
type PriceList struct {
	tiers map[int]kernel.Money
}

// NewPriceList creates the price list with the standard tanker tiers.
func NewPriceList() *PriceList {
	return &PriceList{
		tiers: map[int]kernel.Money{
			1000: 6000,
			2000: 10000,
			3500: 16000,
			6000: 25000,
		},
	}
}

// BasePrice returns the base price for a quantity tier.
// Returns ObjectNotFoundError if the quantity matches no known tier.
func (p *PriceList) BasePrice(quantity int) (kernel.Money, error) {
	base, ok := p.tiers[quantity]
	if !ok {
		return 0, errs.NewObjectNotFoundError("quantity tier", quantity)
	}
	return base, nil
}

// ValidateBidPrice checks that a customer's opening bid for the given tier
// falls within [85%, 300%] of the tier base price, bounds inclusive.
// Returns ObjectNotFoundError for an unknown tier and ValueIsOutOfRangeError,
// carrying the acceptable bounds, for a bid outside them.
func (p *PriceList) ValidateBidPrice(quantity int, bidPrice kernel.Money) error {
	base, err := p.BasePrice(quantity)
	if err != nil {
		return err
	}

	lower := base * bidLowerPercent / 100
	upper := base * bidUpperPercent / 100
	if bidPrice < lower || bidPrice > upper {
		return errs.NewValueIsOutOfRangeError("bidPrice", bidPrice.Int64(), lower.Int64(), upper.Int64())
	}

	return nil
}

// Tiers returns the allowed quantities in no particular order.
// Used by read-side endpoints to expose the available tiers.
func (p *PriceList) Tiers() map[int]kernel.Money {
	tiers := make(map[int]kernel.Money, len(p.tiers))
	for quantity, base := range p.tiers {
		tiers[quantity] = base
	}
	return tiers
}
