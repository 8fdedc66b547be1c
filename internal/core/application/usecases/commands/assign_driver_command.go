package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// AssignDriverCommand represents a supplier offering one of its roster
// drivers an order the supplier holds under the confirmation timer.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	supplierID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to offer an order to a driver.
func NewAssignDriverCommand(
	orderID kernel.UUID,
	supplierID kernel.UUID,
	driverID kernel.UUID,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being offered.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the identifier of the offering supplier.
func (c AssignDriverCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// DriverID returns the identifier of the driver receiving the offer.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	c.supplierID = supplierID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
