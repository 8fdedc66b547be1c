package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrAcceptBidCommandIsNotConstructed = errors.New(
		"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
	)
)

// AcceptBidCommand represents a customer's exclusive acceptance of one
// supplier bid on their open order.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	bidID      kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptBidCommand creates a command to accept a supplier's bid.
func NewAcceptBidCommand(bidID kernel.UUID, customerID kernel.UUID) (AcceptBidCommand, error) {
	cmd := AcceptBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidID(bidID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return AcceptBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

// BidID returns the identifier of the bid being accepted.
func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// CustomerID returns the identifier of the accepting customer.
func (c AcceptBidCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *AcceptBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	c.bidID = bidID
	return nil
}

func (c *AcceptBidCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
