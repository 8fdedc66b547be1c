package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrStartRideCommandIsNotConstructed = errors.New(
		"StartRideCommand must be created via NewStartRideCommand constructor",
	)
)

// StartRideCommand represents the confirmed driver departing for delivery.
type StartRideCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRideCommand creates a command to start the delivery ride.
func NewStartRideCommand(orderID kernel.UUID, driverID kernel.UUID) (StartRideCommand, error) {
	cmd := StartRideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return StartRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRideCommand) Validate() error {
	return c.guard.Validate(ErrStartRideCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c StartRideCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the departing driver.
func (c StartRideCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartRideCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartRideCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
