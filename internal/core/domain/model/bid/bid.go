// Package bid contains the Bid aggregate: a supplier's competing price offer
// against an open order. Bids exist only while the order is open and
// unassigned; acceptance of any one bid purges every bid for that order.
package bid

import (
	"errors"
	"time"

	"tanker/internal/core/domain/model/kernel"
)

// ErrBidIsNotConstructed is returned when a Bid instance was not created
// through NewBid or RestoreBid.
var ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid or RestoreBid")

// Bid is a supplier's price offer on an open order. Bids carry no state of
// their own beyond identity and price: the lifecycle (creation while open,
// en-masse purge on acceptance or cancellation) is owned by the order engine.
type Bid struct {
	// id is the unique identifier for the bid
	id kernel.UUID

	// orderID references the open order being bid on
	orderID kernel.UUID

	// supplierID identifies the bidding supplier
	supplierID kernel.UUID

	// price is the supplier's offered price for the whole delivery
	price kernel.Money

	// createdAt records when the bid was placed
	createdAt time.Time

	// isConstructed ensures the bid was created via a constructor
	isConstructed bool
}

// NewBid creates a new bid for an open order.
// Price must be strictly positive; no uniqueness constraint exists across
// suppliers, so one supplier may re-bid at a different price.
func NewBid(
	id kernel.UUID,
	orderID kernel.UUID,
	supplierID kernel.UUID,
	price kernel.Money,
	createdAt time.Time,
) (*Bid, error) {
	b := &Bid{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setSupplierID(supplierID),
		b.setPrice(price),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBid rehydrates a bid from persistence.
func RestoreBid(
	id kernel.UUID,
	orderID kernel.UUID,
	supplierID kernel.UUID,
	price kernel.Money,
	createdAt time.Time,
) (*Bid, error) {
	return NewBid(id, orderID, supplierID, price, createdAt)
}

// Validate ensures the Bid instance was properly constructed.
func (b *Bid) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBidIsNotConstructed
	}
	return nil
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// OrderID returns the identifier of the order being bid on.
func (b *Bid) OrderID() kernel.UUID {
	return b.orderID
}

// SupplierID returns the identifier of the bidding supplier.
func (b *Bid) SupplierID() kernel.UUID {
	return b.supplierID
}

// Price returns the offered price.
func (b *Bid) Price() kernel.Money {
	return b.price
}

// CreatedAt returns when the bid was placed.
func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	b.orderID = orderID
	return nil
}

func (b *Bid) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	b.supplierID = supplierID
	return nil
}

func (b *Bid) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	b.price = price
	return nil
}
