package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrFinishOrderCommandIsNotConstructed = errors.New(
		"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
	)
)

// FinishOrderCommand represents the driver completing the delivery.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to complete a delivery.
func NewFinishOrderCommand(orderID kernel.UUID, driverID kernel.UUID) (FinishOrderCommand, error) {
	cmd := FinishOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return FinishOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c FinishOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the completing driver.
func (c FinishOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *FinishOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *FinishOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
