package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to open a new delivery
// order at a given quantity tier and opening bid price.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, location, 2000, kernel.Money(9000))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	location   kernel.Location
	quantity   int
	bidPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new delivery order.
// Validates identifier and value-object integrity; whether the quantity
// matches a tier and the bid lies within the tier bounds is checked by the
// handler against the price list.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	location kernel.Location,
	quantity int,
	bidPrice kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLocation(location),
		cmd.setQuantity(quantity),
		cmd.setBidPrice(bidPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Location returns the delivery destination.
func (c CreateOrderCommand) Location() kernel.Location {
	return c.location
}

// Quantity returns the requested volume in litres.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// BidPrice returns the customer's opening bid.
func (c CreateOrderCommand) BidPrice() kernel.Money {
	return c.bidPrice
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setBidPrice(bidPrice kernel.Money) error {
	if err := bidPrice.Validate(); err != nil {
		return err
	}
	c.bidPrice = bidPrice
	return nil
}
