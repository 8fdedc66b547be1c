package queries

import (
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

const (
	// DriverOfferRejected means the driver declined this order.
	DriverOfferRejected = "rejected"
	// DriverOfferPending means the driver holds a live offer within its deadline.
	DriverOfferPending = "pending"
	// DriverOfferAvailable means no live offer stands for this driver.
	DriverOfferAvailable = "available"
)

var (
	ErrGetDriverOfferStatusesQueryIsNotConstructed = errors.New(
		"GetDriverOfferStatusesQuery must be created via NewGetDriverOfferStatusesQuery constructor",
	)
)

// GetDriverOfferStatusesQuery derives, per roster driver, where that driver
// stands on one order. Suppliers use the answer to decide whom to (re-)offer:
// a rejected driver is off the table, a pending one is still deciding, an
// available one can be offered now.
type GetDriverOfferStatusesQuery struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverOfferStatusesQuery creates a query for roster offer statuses.
func NewGetDriverOfferStatusesQuery(
	supplierID kernel.UUID,
	orderID kernel.UUID,
) (GetDriverOfferStatusesQuery, error) {
	q := GetDriverOfferStatusesQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setSupplierID(supplierID),
		q.setOrderID(orderID),
	); err != nil {
		return GetDriverOfferStatusesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOfferStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOfferStatusesQueryIsNotConstructed)
}

// SupplierID returns the supplier whose roster is inspected.
func (q GetDriverOfferStatusesQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// OrderID returns the order the statuses are derived against.
func (q GetDriverOfferStatusesQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetDriverOfferStatusesQuery) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	q.supplierID = supplierID
	return nil
}

func (q *GetDriverOfferStatusesQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetDriverOfferStatusesQueryResponse is one roster driver's derived status.
type GetDriverOfferStatusesQueryResponse struct {
	DriverID kernel.UUID
	Status   string
}
