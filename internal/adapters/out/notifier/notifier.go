package notifier

import (
	"context"
	"log/slog"

	"tanker/internal/core/domain/model/kernel"
)

// LogChangeNotifier publishes change signals to the structured log. A
// real-time broadcast layer (websocket hub, message broker) can replace it
// without touching the handlers; delivery is fire-and-forget either way.
type LogChangeNotifier struct {
	logger *slog.Logger
}

// NewLogChangeNotifier creates a change notifier backed by the given logger.
func NewLogChangeNotifier(logger *slog.Logger) *LogChangeNotifier {
	return &LogChangeNotifier{
		logger: logger.With("component", "change_notifier"),
	}
}

// OrderChanged signals that the order's row was created, mutated, or deleted.
func (n *LogChangeNotifier) OrderChanged(ctx context.Context, orderID kernel.UUID) {
	n.logger.InfoContext(ctx, "Order changed", "order_id", orderID.String())
}

// OffersChanged signals that the driver-offer rows for the order changed.
func (n *LogChangeNotifier) OffersChanged(ctx context.Context, orderID kernel.UUID) {
	n.logger.InfoContext(ctx, "Offers changed", "order_id", orderID.String())
}
