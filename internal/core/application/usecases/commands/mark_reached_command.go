package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrMarkReachedCommandIsNotConstructed = errors.New(
		"MarkReachedCommand must be created via NewMarkReachedCommand constructor",
	)
)

// MarkReachedCommand represents the driver arriving at the delivery location.
type MarkReachedCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReachedCommand creates a command to mark arrival at the destination.
func NewMarkReachedCommand(orderID kernel.UUID, driverID kernel.UUID) (MarkReachedCommand, error) {
	cmd := MarkReachedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return MarkReachedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReachedCommand) Validate() error {
	return c.guard.Validate(ErrMarkReachedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c MarkReachedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the arriving driver.
func (c MarkReachedCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *MarkReachedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkReachedCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
