package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrPlaceBidCommandIsNotConstructed = errors.New(
		"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
	)
)

// PlaceBidCommand represents a supplier's price offer against an open order.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	bidID      kernel.UUID
	orderID    kernel.UUID
	supplierID kernel.UUID
	price      kernel.Money

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to bid on an open order.
// Price must be strictly positive.
func NewPlaceBidCommand(
	bidID kernel.UUID,
	orderID kernel.UUID,
	supplierID kernel.UUID,
	price kernel.Money,
) (PlaceBidCommand, error) {
	cmd := PlaceBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidID(bidID),
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setPrice(price),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// BidID returns the identifier the bid will be created under.
func (c PlaceBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// OrderID returns the identifier of the order being bid on.
func (c PlaceBidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the identifier of the bidding supplier.
func (c PlaceBidCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Price returns the offered price.
func (c PlaceBidCommand) Price() kernel.Money {
	return c.price
}

func (c *PlaceBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	c.bidID = bidID
	return nil
}

func (c *PlaceBidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceBidCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	c.supplierID = supplierID
	return nil
}

func (c *PlaceBidCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
