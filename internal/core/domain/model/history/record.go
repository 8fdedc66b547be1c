// Package history contains the immutable archival record of a finished or
// cancelled order. One record is written exactly at the order's terminus and
// is never mutated afterwards, with a single exception: the customer's rating
// is stamped once onto a completed record.
package history

import (
	"errors"
	"fmt"
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"
)

// Outcome is the terminal disposition captured by a history record.
type Outcome string

const (
	// OutcomeCompleted marks an order that was delivered and finished.
	OutcomeCompleted Outcome = "completed"
	// OutcomeCancelled marks an order cancelled after a driver was locked in.
	OutcomeCancelled Outcome = "cancelled"
)

// Validate checks that the outcome is one of the defined terminal dispositions.
func (o Outcome) Validate() error {
	switch o {
	case OutcomeCompleted, OutcomeCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("outcome is invalid",
			fmt.Errorf("%q is not a valid outcome", string(o)))
	}
}

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is the archival snapshot of a finished or cancelled order, used for
// rating and past-order queries. It captures the commercial terms at the
// order's terminus; after the live order row is deleted the record is the
// order's only representation.
type Record struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	supplierID kernel.UUID

	// driverID is nil for cancellations that happened before confirmation
	driverID *kernel.UUID

	outcome  Outcome
	price    kernel.Money
	quantity int
	location kernel.Location

	// confirmedAt carries over the order's confirmation time, if any
	confirmedAt *time.Time

	// rating is stamped once by the customer on a completed record
	rating *int

	archivedAt time.Time

	isConstructed bool
}

// NewRecord creates the archival record for an order reaching its terminus.
func NewRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	supplierID kernel.UUID,
	driverID *kernel.UUID,
	outcome Outcome,
	price kernel.Money,
	quantity int,
	location kernel.Location,
	confirmedAt *time.Time,
	archivedAt time.Time,
) (*Record, error) {
	r := &Record{
		outcome:       outcome,
		confirmedAt:   confirmedAt,
		archivedAt:    archivedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCustomerID(customerID),
		r.setSupplierID(supplierID),
		r.setQuantity(quantity),
		r.setPrice(price),
		r.setLocation(location),
		outcome.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		dID := *driverID
		if err := dID.Validate(); err != nil {
			return nil, err
		}
		r.driverID = &dID
	}

	return r, nil
}

// RestoreRecord rehydrates a history record from persistence.
func RestoreRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	supplierID kernel.UUID,
	driverID *kernel.UUID,
	outcome Outcome,
	price kernel.Money,
	quantity int,
	location kernel.Location,
	confirmedAt *time.Time,
	rating *int,
	archivedAt time.Time,
) (*Record, error) {
	r, err := NewRecord(id, orderID, customerID, supplierID, driverID,
		outcome, price, quantity, location, confirmedAt, archivedAt)
	if err != nil {
		return nil, err
	}

	if rating != nil {
		value := *rating
		if value < 1 || value > 5 {
			return nil, errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
		}
		r.rating = &value
	}

	return r, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// OrderID returns the archived order's identifier.
func (r *Record) OrderID() kernel.UUID { return r.orderID }

// CustomerID returns the customer who opened the archived order.
func (r *Record) CustomerID() kernel.UUID { return r.customerID }

// SupplierID returns the supplier who held the archived order.
func (r *Record) SupplierID() kernel.UUID { return r.supplierID }

// DriverID returns the confirmed driver, or nil if none was locked in.
func (r *Record) DriverID() *kernel.UUID { return r.driverID }

// Outcome returns the terminal disposition.
func (r *Record) Outcome() Outcome { return r.outcome }

// Price returns the accepted price at the order's terminus.
func (r *Record) Price() kernel.Money { return r.price }

// Quantity returns the delivered (or intended) volume in litres.
func (r *Record) Quantity() int { return r.quantity }

// Location returns the delivery destination.
func (r *Record) Location() kernel.Location { return r.location }

// ConfirmedAt returns the order's confirmation time, if a driver confirmed.
func (r *Record) ConfirmedAt() *time.Time { return r.confirmedAt }

// Rating returns the customer's rating, or nil if not yet rated.
func (r *Record) Rating() *int { return r.rating }

// ArchivedAt returns when the record was written.
func (r *Record) ArchivedAt() time.Time { return r.archivedAt }

// IsRated reports whether a rating has been recorded.
func (r *Record) IsRated() bool {
	return r.rating != nil
}

// SubmitRating stamps the customer's rating onto a completed record.
// A record can be rated exactly once, only for completed outcomes, and only
// with a value between 1 and 5.
func (r *Record) SubmitRating(rating int) error {
	if r.outcome != OutcomeCompleted {
		return errs.NewConflictError("only completed deliveries can be rated")
	}
	if r.rating != nil {
		return errs.NewConflictError("order has already been rated")
	}
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	r.rating = &rating
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Record) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Record) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	r.supplierID = supplierID
	return nil
}

func (r *Record) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

func (r *Record) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	r.price = price
	return nil
}

func (r *Record) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
