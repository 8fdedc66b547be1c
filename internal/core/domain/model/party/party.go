// Package party contains the Supplier and Driver aggregates at the boundary
// the lifecycle engine needs: the supplier's running rating and the driver's
// roster membership and availability. Profile details (names, yards, CNIC)
// belong to an external profile service and are not modelled here.
package party

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"
)

var (
	// ErrSupplierIsNotConstructed is returned when a Supplier was not created
	// through NewSupplier or RestoreSupplier.
	ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier or RestoreSupplier")

	// ErrDriverIsNotConstructed is returned when a Driver was not created
	// through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// Supplier carries the engine-owned state of a supplier: the running average
// rating and the count of rated orders it is derived from.
type Supplier struct {
	id kernel.UUID

	// rating is the running average over ratedOrders ratings
	rating float64

	// ratedOrders counts the ratings folded into the average
	ratedOrders int

	isConstructed bool
}

// NewSupplier creates a supplier with no ratings yet.
func NewSupplier(id kernel.UUID) (*Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Supplier{id: id, isConstructed: true}, nil
}

// RestoreSupplier rehydrates a supplier from persistence.
func RestoreSupplier(id kernel.UUID, rating float64, ratedOrders int) (*Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if rating < 0 || rating > 5 {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	if ratedOrders < 0 {
		return nil, errs.NewValueIsInvalidError("ratedOrders")
	}
	return &Supplier{id: id, rating: rating, ratedOrders: ratedOrders, isConstructed: true}, nil
}

// Validate ensures the Supplier instance was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID { return s.id }

// Rating returns the running average rating.
func (s *Supplier) Rating() float64 { return s.rating }

// RatedOrders returns how many ratings the average is built from.
func (s *Supplier) RatedOrders() int { return s.ratedOrders }

// RecordRating folds one customer rating into the running average:
// (old × count + rating) / (count + 1), then increments the count.
func (s *Supplier) RecordRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	s.rating = (s.rating*float64(s.ratedOrders) + float64(rating)) / float64(s.ratedOrders+1)
	s.ratedOrders++
	return nil
}

// Driver carries the engine-owned state of a driver: which supplier's roster
// it belongs to and whether it is currently free to take an order. The
// availability flag is mutated only inside the same transaction as the order
// state it correlates with (confirm, finish, cancel).
type Driver struct {
	id         kernel.UUID
	supplierID kernel.UUID
	available  bool

	isConstructed bool
}

// NewDriver creates an available driver on the given supplier's roster.
func NewDriver(id kernel.UUID, supplierID kernel.UUID) (*Driver, error) {
	if err := errors.Join(id.Validate(), supplierID.Validate()); err != nil {
		return nil, err
	}
	return &Driver{id: id, supplierID: supplierID, available: true, isConstructed: true}, nil
}

// RestoreDriver rehydrates a driver from persistence.
func RestoreDriver(id kernel.UUID, supplierID kernel.UUID, available bool) (*Driver, error) {
	if err := errors.Join(id.Validate(), supplierID.Validate()); err != nil {
		return nil, err
	}
	return &Driver{id: id, supplierID: supplierID, available: available, isConstructed: true}, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// SupplierID returns the roster the driver belongs to.
func (d *Driver) SupplierID() kernel.UUID { return d.supplierID }

// IsAvailable reports whether the driver is free to take an order.
func (d *Driver) IsAvailable() bool { return d.available }

// BelongsTo reports whether the driver is on the given supplier's roster.
func (d *Driver) BelongsTo(supplierID kernel.UUID) bool {
	return d.supplierID.IsEqual(supplierID)
}

// MarkBusy flags the driver as occupied by a confirmed order.
func (d *Driver) MarkBusy() {
	d.available = false
}

// MarkAvailable returns the driver to the free pool.
func (d *Driver) MarkAvailable() {
	d.available = true
}
