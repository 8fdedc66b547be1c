package ports

import (
	"context"

	"tanker/internal/core/domain/model/history"
	"tanker/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for archival records.
// Records are written once at an order's terminus; the single later mutation
// is the rating stamp.
type HistoryRepository interface {
	// Add persists a new history record.
	Add(ctx context.Context, aggregate *history.Record) error

	// GetByOrderID retrieves the record archived for an order.
	// Returns ObjectNotFoundError if the order has no record.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*history.Record, error)

	// Update persists the rating stamp on a record.
	Update(ctx context.Context, aggregate *history.Record) error
}
