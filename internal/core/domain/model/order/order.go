package order

import (
	"errors"
	"fmt"
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"
)

// SupplierResponseWindow is how long an accepted supplier has to get one of
// its drivers confirmed before the acceptance goes stale.
const SupplierResponseWindow = 5 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a bulk-liquid delivery request in the system. It is the
// aggregate root that manages the order lifecycle from creation through
// bidding, driver confirmation, and delivery to archival.
//
// Order maintains these invariants:
//   - a driver is only ever set when a supplier is set
//   - an accepted price exists exactly from the supplier-timer state onward
//   - status transitions follow the state machine in Status and never reverse
//   - the customer bid price and quantity are validated at construction
//
// The struct uses private fields to ensure encapsulation; all lifecycle
// mutation goes through validated methods.
type Order struct {
	// id is the unique identifier for the order, immutable after creation
	id kernel.UUID

	// customerID identifies the customer who opened the order
	customerID kernel.UUID

	// supplierID is set when the customer accepts a supplier's bid (nil before)
	supplierID *kernel.UUID

	// driverID is set when a driver wins the confirmation race (nil before)
	driverID *kernel.UUID

	// location is the delivery destination
	location kernel.Location

	// quantity is the requested volume in litres; must match a pricing tier
	quantity int

	// customerBidPrice is the price the customer opened the order at
	customerBidPrice kernel.Money

	// acceptedPrice is the supplier bid the customer accepted (nil before)
	acceptedPrice *kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// supplierDeadline bounds the supplier's window to confirm a driver
	supplierDeadline *time.Time

	// confirmedAt records when the winning driver confirmed
	confirmedAt *time.Time

	// createdAt records when the customer opened the order
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Open state.
//
// The aggregate validates identifier and value-object integrity plus a
// positive quantity. Whether the quantity matches a pricing tier and whether
// the bid price lies within the tier's bounds is validated by the pricing
// domain service before this constructor is called.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	location kernel.Location,
	quantity int,
	customerBidPrice kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Open,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setQuantity(quantity),
		o.setCustomerBidPrice(customerBidPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence, re-checking the
// cross-field invariants that the live transitions guarantee:
// driver set implies supplier set, and the accepted price exists exactly when
// the order has left the Open state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplierID *kernel.UUID,
	driverID *kernel.UUID,
	location kernel.Location,
	quantity int,
	customerBidPrice kernel.Money,
	acceptedPrice *kernel.Money,
	status Status,
	supplierDeadline *time.Time,
	confirmedAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:           status,
		supplierDeadline: supplierDeadline,
		confirmedAt:      confirmedAt,
		createdAt:        createdAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setQuantity(quantity),
		o.setCustomerBidPrice(customerBidPrice),
		status.Validate(),
		status.ValidateCanHaveSupplier(supplierID != nil),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil && supplierID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order is invalid",
			errors.New("driver is set without a supplier"))
	}

	if (acceptedPrice != nil) != (status != Open) {
		return nil, errs.NewValueIsInvalidErrorWithCause("order is invalid",
			fmt.Errorf("accepted price presence does not match status %s", status))
	}

	if supplierID != nil {
		sID := *supplierID
		if err := sID.Validate(); err != nil {
			return nil, err
		}
		o.supplierID = &sID
	}

	if driverID != nil {
		dID := *driverID
		if err := dID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = &dID
	}

	if acceptedPrice != nil {
		price := *acceptedPrice
		if err := price.Validate(); err != nil {
			return nil, err
		}
		o.acceptedPrice = &price
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who opened the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Supplier returns the accepted supplier's ID, or nil while the order is open.
func (o *Order) Supplier() *kernel.UUID {
	return o.supplierID
}

// Driver returns the confirmed driver's ID, or nil before confirmation.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Location returns the delivery destination.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Quantity returns the requested volume in litres.
func (o *Order) Quantity() int {
	return o.quantity
}

// CustomerBidPrice returns the price the customer opened the order at.
func (o *Order) CustomerBidPrice() kernel.Money {
	return o.customerBidPrice
}

// AcceptedPrice returns the accepted supplier bid, or nil while open.
func (o *Order) AcceptedPrice() *kernel.Money {
	return o.acceptedPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// SupplierDeadline returns the supplier confirmation deadline, or nil while open.
func (o *Order) SupplierDeadline() *time.Time {
	return o.supplierDeadline
}

// ConfirmedAt returns when the winning driver confirmed, or nil before that.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// CreatedAt returns when the customer opened the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedByCustomer reports whether the given customer opened this order.
func (o *Order) IsOwnedByCustomer(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// IsOwnedBySupplier reports whether the given supplier holds this order.
func (o *Order) IsOwnedBySupplier(supplierID kernel.UUID) bool {
	return o.supplierID != nil && o.supplierID.IsEqual(supplierID)
}

// IsAssignedToDriver reports whether the given driver won this order.
func (o *Order) IsAssignedToDriver(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// SupplierDeadlineExpired reports whether the supplier confirmation window
// has lapsed by the given instant. Returns false while no deadline is set.
func (o *Order) SupplierDeadlineExpired(now time.Time) bool {
	return o.supplierDeadline != nil && now.After(*o.supplierDeadline)
}

// AcceptBid records the customer's exclusive acceptance of one supplier bid.
//
// Business rules:
//   - the order must be Open with no supplier set
//   - the supplier, accepted price, and supplier deadline are set together
//
// The caller is responsible for purging the order's bids in the same
// transaction; bids may not outlive acceptance.
func (o *Order) AcceptBid(supplierID kernel.UUID, price kernel.Money, now time.Time) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	if err := price.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptBid()
	if err != nil {
		return err
	}
	if o.supplierID != nil {
		return errs.NewConflictError("order already has an accepted supplier")
	}

	deadline := now.Add(SupplierResponseWindow)
	o.status = newStatus
	o.supplierID = &supplierID
	o.acceptedPrice = &price
	o.supplierDeadline = &deadline
	return nil
}

// Confirm records that the given driver won the confirmation race.
//
// The race itself is resolved by the store's conditional set-if-null write on
// the driver field; Confirm is applied by the winner afterwards, in the same
// transaction, to move the status forward and stamp the confirmation time.
// A driver field already holding a different driver means this caller lost
// and must not have reached here.
func (o *Order) Confirm(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if o.driverID != nil && !o.driverID.IsEqual(driverID) {
		return errs.NewConflictError("already accepted by another driver")
	}

	o.status = newStatus
	o.driverID = &driverID
	o.confirmedAt = &now
	return nil
}

// StartRide moves the order from Accepted to RideStarted.
// Only the confirmed driver may start the ride.
func (o *Order) StartRide(driverID kernel.UUID) error {
	if err := o.validateDriverOwnership(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.StartRide()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReached moves the order from RideStarted to Reached.
// Only the confirmed driver may mark arrival.
func (o *Order) MarkReached(driverID kernel.UUID) error {
	if err := o.validateDriverOwnership(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.Reach()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finish moves the order from Reached to Finished.
// Only the confirmed driver may finish the delivery. The caller archives the
// completed history record and frees the driver in the same transaction.
func (o *Order) Finish(driverID kernel.UUID) error {
	if err := o.validateDriverOwnership(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) validateDriverOwnership(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !o.IsAssignedToDriver(driverID) {
		return errs.NewConflictError("order is not assigned to this driver")
	}
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setLocation validates and sets the delivery destination.
func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

// setQuantity validates and sets the requested volume.
// Quantity must be positive; tier membership is checked by the price list.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// setCustomerBidPrice validates and sets the customer's opening bid.
func (o *Order) setCustomerBidPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.customerBidPrice = price
	return nil
}
