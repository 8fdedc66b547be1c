package queries

import (
	"context"

	"tanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSupplierOrdersQueryHandler retrieves a supplier's live orders and its
// archived delivery history in one response.
type GetSupplierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierOrdersQueryHandler creates a handler for supplier workload queries.
func NewGetSupplierOrdersQueryHandler(db *gorm.DB) GetSupplierOrdersQueryHandler {
	return GetSupplierOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSupplierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierOrdersQuery,
) (GetSupplierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSupplierOrdersQueryResponse{}, err
	}

	active, err := h.activeOrders(ctx, query.SupplierID())
	if err != nil {
		return GetSupplierOrdersQueryResponse{}, err
	}

	past, err := h.historyEntries(ctx, query.SupplierID())
	if err != nil {
		return GetSupplierOrdersQueryResponse{}, err
	}

	return GetSupplierOrdersQueryResponse{Active: active, History: past}, nil
}

func (h GetSupplierOrdersQueryHandler) activeOrders(
	ctx context.Context,
	supplierID kernel.UUID,
) ([]SupplierActiveOrder, error) {
	active := make([]SupplierActiveOrder, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			address,
			quantity,
			accepted_price,
			status,
			supplier_deadline
		FROM orders
		WHERE supplier_id = ?
		ORDER BY created_at DESC
	`, supplierID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry SupplierActiveOrder
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&entry.Address,
			&entry.Quantity,
			&entry.AcceptedPrice,
			&entry.Status,
			&entry.Deadline,
		)
		if err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		entry.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}

		active = append(active, entry)
	}

	return active, rows.Err()
}

func (h GetSupplierOrdersQueryHandler) historyEntries(
	ctx context.Context,
	supplierID kernel.UUID,
) ([]SupplierHistoryEntry, error) {
	past := make([]SupplierHistoryEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			outcome,
			price,
			quantity,
			rating,
			archived_at
		FROM history_records
		WHERE supplier_id = ?
		ORDER BY archived_at DESC
	`, supplierID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry SupplierHistoryEntry
		var orderID uuid.UUID

		err = rows.Scan(
			&orderID,
			&entry.Outcome,
			&entry.Price,
			&entry.Quantity,
			&entry.Rating,
			&entry.ArchivedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}

		past = append(past, entry)
	}

	return past, rows.Err()
}
