package commands

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"
	"tanker/internal/pkg/guard"
)

const (
	minRating = 1
	maxRating = 5
)

var (
	ErrSubmitRatingCommandIsNotConstructed = errors.New(
		"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
	)
)

// SubmitRatingCommand represents the customer rating a finished delivery.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a finished delivery.
// Rating must be between 1 and 5 inclusive.
func NewSubmitRatingCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	rating int,
) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// OrderID returns the identifier of the rated order.
func (c SubmitRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the rating customer.
func (c SubmitRatingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the submitted rating.
func (c SubmitRatingCommand) Rating() int {
	return c.rating
}

func (c *SubmitRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitRatingCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *SubmitRatingCommand) setRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	c.rating = rating
	return nil
}
