package ports

import (
	"context"

	"tanker/internal/core/domain/model/bid"
	"tanker/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for supplier bids.
// Bids are append-only while an order stays open; the only mutation is the
// en-masse purge driven by acceptance or cancellation.
type BidRepository interface {
	// Add persists a new bid.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid by its unique identifier.
	// Returns ObjectNotFoundError if the bid does not exist.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetAllForOrder retrieves all pending bids against an order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error)

	// DeleteAllForOrder purges every bid row for the order. Invoked the
	// instant an order leaves the open state, and on order deletion.
	DeleteAllForOrder(ctx context.Context, orderID kernel.UUID) error
}
