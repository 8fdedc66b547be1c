package order

import (
	"fmt"

	"tanker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Open ──> SupplierTimer ──> Accepted ──> RideStarted ──> Reached ──> Finished
//
// Cancellation removes the order entirely and is allowed from any state before
// Finished; it is not a status of its own. No state is re-enterable once left.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when a customer creates an order.
	// Suppliers may place bids only while the order is Open.
	Open

	// SupplierTimer indicates the customer accepted a supplier's bid.
	// The supplier has a bounded window to get a driver confirmed.
	SupplierTimer

	// Accepted indicates a driver won the confirmation race.
	// The order is locked to one supplier and one driver.
	Accepted

	// RideStarted indicates the driver departed toward the destination.
	RideStarted

	// Reached indicates the driver arrived at the delivery location.
	Reached

	// Finished indicates the delivery completed. The order row survives in
	// this state only until the customer rates the delivery.
	Finished
)

// getStatusStrings returns the map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Open:          "open",
		SupplierTimer: "supplier_timer",
		Accepted:      "accepted",
		RideStarted:   "ride_started",
		Reached:       "reached",
		Finished:      "finished",
	}
}

// getValidStatusStrings returns the map of valid Status values only.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:          "open",
		SupplierTimer: "supplier_timer",
		Accepted:      "accepted",
		RideStarted:   "ride_started",
		Reached:       "reached",
		Finished:      "finished",
	}
}

// StatusFromString parses a wire name back into a Status.
// Used when rehydrating orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when rehydrating
// orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("open", "supplier_timer", ...).
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AcceptBid transitions Open -> SupplierTimer.
// Any other current state fails with InvalidStateError carrying the actual
// status, which covers the case of a second customer acceptance racing a
// first one that already moved the order on.
func (s Status) AcceptBid() (Status, error) {
	if s != Open {
		return 0, errs.NewInvalidStateError("accept bid", Open.String(), s.String())
	}
	return SupplierTimer, nil
}

// Confirm transitions SupplierTimer -> Accepted.
// Only orders waiting on the supplier timer can be confirmed by a driver.
func (s Status) Confirm() (Status, error) {
	if s != SupplierTimer {
		return 0, errs.NewInvalidStateError("confirm", SupplierTimer.String(), s.String())
	}
	return Accepted, nil
}

// StartRide transitions Accepted -> RideStarted.
func (s Status) StartRide() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateError("start ride", Accepted.String(), s.String())
	}
	return RideStarted, nil
}

// Reach transitions RideStarted -> Reached.
func (s Status) Reach() (Status, error) {
	if s != RideStarted {
		return 0, errs.NewInvalidStateError("mark reached", RideStarted.String(), s.String())
	}
	return Reached, nil
}

// Finish transitions Reached -> Finished.
func (s Status) Finish() (Status, error) {
	if s != Reached {
		return 0, errs.NewInvalidStateError("finish", Reached.String(), s.String())
	}
	return Finished, nil
}

// CanBeCancelled reports whether an order in this status may still be
// cancelled. Every state before Finished qualifies; a finished order leaves
// the system through rating instead.
func (s Status) CanBeCancelled() bool {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return false
	}
	return s != Finished
}

// HasDriverLockedIn reports whether a driver has won the confirmation race by
// the time the order is in this status. Used to decide whether cancellation
// must archive a cancelled history record and free the driver.
func (s Status) HasDriverLockedIn() bool {
	return s == Accepted || s == RideStarted || s == Reached || s == Finished
}

// ValidateCanHaveSupplier validates consistency between status and supplier
// assignment. Open orders must not have a supplier; every later state must.
func (s Status) ValidateCanHaveSupplier(supplier bool) error {
	if supplier && s == Open {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a supplier", s.String()),
		)
	}

	if !supplier && s != Open {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no supplier", s.String()),
		)
	}

	return nil
}

// ValidateCanHaveDriver validates consistency between status and driver
// assignment. A driver may only be set once the order is Accepted or later;
// earlier states must have no driver.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && !s.HasDriverLockedIn() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && s.HasDriverLockedIn() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}
