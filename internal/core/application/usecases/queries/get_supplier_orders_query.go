package queries

import (
	"errors"
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrGetSupplierOrdersQueryIsNotConstructed = errors.New(
		"GetSupplierOrdersQuery must be created via NewGetSupplierOrdersQuery constructor",
	)
)

// GetSupplierOrdersQuery retrieves a supplier's workload: the orders it
// currently holds plus the archived outcomes of its past deliveries.
type GetSupplierOrdersQuery struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSupplierOrdersQuery creates a query for one supplier's orders.
func NewGetSupplierOrdersQuery(supplierID kernel.UUID) (GetSupplierOrdersQuery, error) {
	q := GetSupplierOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setSupplierID(supplierID); err != nil {
		return GetSupplierOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierOrdersQueryIsNotConstructed)
}

// SupplierID returns the supplier whose workload is requested.
func (q GetSupplierOrdersQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

func (q *GetSupplierOrdersQuery) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	q.supplierID = supplierID
	return nil
}

// SupplierActiveOrder is one order the supplier currently holds.
type SupplierActiveOrder struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Address       string
	Quantity      int
	AcceptedPrice int64
	Status        string
	Deadline      *time.Time
}

// SupplierHistoryEntry is one archived delivery outcome for the supplier.
type SupplierHistoryEntry struct {
	OrderID    kernel.UUID
	Outcome    string
	Price      int64
	Quantity   int
	Rating     *int
	ArchivedAt time.Time
}

// GetSupplierOrdersQueryResponse bundles the supplier's live and past work.
type GetSupplierOrdersQueryResponse struct {
	Active  []SupplierActiveOrder
	History []SupplierHistoryEntry
}
