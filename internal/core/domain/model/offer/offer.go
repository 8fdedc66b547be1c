// Package offer contains the DriverOffer aggregate: a time-boxed proposal
// binding one driver to one order, pending confirmation. Offers exist to
// support the confirmation race; at most one live offer exists per
// (order, driver) pair, while one order may fan out offers to many drivers.
package offer

import (
	"errors"
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"
)

// DriverResponseWindow is how long an offered driver has to confirm or reject
// before the personal offer deadline lapses.
const DriverResponseWindow = 1 * time.Minute

// ErrOfferIsNotConstructed is returned when a DriverOffer instance was not
// created through NewDriverOffer or RestoreDriverOffer.
var ErrOfferIsNotConstructed = errors.New("DriverOffer must be created via NewDriverOffer or RestoreDriverOffer")

// DriverOffer is a supplier's time-boxed proposal to a specific driver for a
// specific order. The (orderID, driverID) pair is the identity; an offer is
// never updated to "accepted" — acceptance is represented solely by the
// order's driver field, set by the confirmation race.
//
// An offer is live while its deadline has not passed and the driver has not
// rejected it. A rejected offer stays on record: the supplier may not re-offer
// the same order to a driver who declined it.
type DriverOffer struct {
	// orderID and driverID together identify the offer
	orderID  kernel.UUID
	driverID kernel.UUID

	// supplierID identifies the supplier who fanned out this offer
	supplierID kernel.UUID

	// deadline is the driver's personal confirmation deadline
	deadline time.Time

	// rejected is set when the driver declines before the deadline
	rejected bool

	// isConstructed ensures the offer was created via a constructor
	isConstructed bool
}

// NewDriverOffer creates a fresh pending offer with the driver's personal
// deadline at now + DriverResponseWindow.
func NewDriverOffer(
	orderID kernel.UUID,
	driverID kernel.UUID,
	supplierID kernel.UUID,
	now time.Time,
) (*DriverOffer, error) {
	o := &DriverOffer{
		deadline:      now.Add(DriverResponseWindow),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setOrderID(orderID),
		o.setDriverID(driverID),
		o.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreDriverOffer rehydrates an offer from persistence.
func RestoreDriverOffer(
	orderID kernel.UUID,
	driverID kernel.UUID,
	supplierID kernel.UUID,
	deadline time.Time,
	rejected bool,
) (*DriverOffer, error) {
	o := &DriverOffer{
		deadline:      deadline,
		rejected:      rejected,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setOrderID(orderID),
		o.setDriverID(driverID),
		o.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the DriverOffer instance was properly constructed.
func (o *DriverOffer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the offered order.
func (o *DriverOffer) OrderID() kernel.UUID {
	return o.orderID
}

// DriverID returns the identifier of the offered driver.
func (o *DriverOffer) DriverID() kernel.UUID {
	return o.driverID
}

// SupplierID returns the identifier of the offering supplier.
func (o *DriverOffer) SupplierID() kernel.UUID {
	return o.supplierID
}

// Deadline returns the driver's personal confirmation deadline.
func (o *DriverOffer) Deadline() time.Time {
	return o.deadline
}

// Rejected reports whether the driver declined this offer.
func (o *DriverOffer) Rejected() bool {
	return o.rejected
}

// IsExpired reports whether the personal deadline has lapsed by now.
func (o *DriverOffer) IsExpired(now time.Time) bool {
	return now.After(o.deadline)
}

// IsLive reports whether the offer can still be confirmed: not rejected and
// not past its deadline.
func (o *DriverOffer) IsLive(now time.Time) bool {
	return !o.rejected && !o.IsExpired(now)
}

// Reject records the driver's decline. A driver cannot retroactively decline
// an expired offer, and a rejection is final.
func (o *DriverOffer) Reject(now time.Time) error {
	if o.rejected {
		return errs.NewConflictError("offer is already rejected")
	}
	if o.IsExpired(now) {
		return errs.NewDeadlineExpiredError("driver offer deadline", o.deadline)
	}

	o.rejected = true
	return nil
}

func (o *DriverOffer) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	o.orderID = orderID
	return nil
}

func (o *DriverOffer) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	o.driverID = driverID
	return nil
}

func (o *DriverOffer) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	o.supplierID = supplierID
	return nil
}
