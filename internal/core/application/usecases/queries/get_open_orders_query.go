// Package queries contains the read side of the engine. Queries bypass the
// aggregates and read projection rows straight from the database with raw
// SQL; they never mutate state and never hold a transaction open.
package queries

import (
	"errors"
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery retrieves every order still open for bidding.
// Suppliers browse this list to decide what to bid on.
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve open orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one open order in the browse list.
type GetOpenOrdersQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Address          string
	Quantity         int
	CustomerBidPrice int64
	CreatedAt        time.Time
}
