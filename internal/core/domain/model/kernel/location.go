package kernel

import "tanker/internal/pkg/errs"

// ErrLocationIsRequired is returned when a delivery location is empty.
var ErrLocationIsRequired = errs.NewValueIsRequiredError("location must be created via NewLocation with a non-empty address")

// Location is a value object representing a delivery destination address.
// The brokerage treats the address as an opaque string supplied by the
// customer; it only guarantees the address is present and non-blank.
//
// The zero value of Location is invalid and must be constructed via
// NewLocation.
type Location struct {
	address string
}

// NewLocation creates a Location from a street address.
// Returns ErrLocationIsRequired if the address is empty.
func NewLocation(address string) (Location, error) {
	if address == "" {
		return Location{}, ErrLocationIsRequired
	}
	return Location{address: address}, nil
}

// Address returns the street address of the delivery destination.
func (l Location) Address() string {
	return l.address
}

// IsEqual compares two locations by address.
func (l Location) IsEqual(other Location) bool {
	return l.address == other.address
}

// Validate checks if the Location is properly constructed.
// Returns ErrLocationIsRequired for the zero value.
func (l Location) Validate() error {
	if l.address == "" {
		return ErrLocationIsRequired
	}
	return nil
}
