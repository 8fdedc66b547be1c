package queries

import (
	"context"
	"database/sql"
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's full detail row.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. An absent order fails with a not-found error.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var supplierID, driverID uuid.NullUUID
	var acceptedPrice sql.NullInt64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			supplier_id,
			driver_id,
			address,
			quantity,
			customer_bid_price,
			accepted_price,
			status,
			supplier_deadline,
			confirmed_at,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&supplierID,
		&driverID,
		&resp.Address,
		&resp.Quantity,
		&resp.CustomerBidPrice,
		&acceptedPrice,
		&resp.Status,
		&resp.SupplierDeadline,
		&resp.ConfirmedAt,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if supplierID.Valid {
		sID, sErr := kernel.UUIDFromBytes(supplierID.UUID[:])
		if sErr != nil {
			return GetOrderQueryResponse{}, sErr
		}
		resp.SupplierID = &sID
	}

	if driverID.Valid {
		dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if dErr != nil {
			return GetOrderQueryResponse{}, dErr
		}
		resp.DriverID = &dID
	}

	if acceptedPrice.Valid {
		price := acceptedPrice.Int64
		resp.AcceptedPrice = &price
	}

	return resp, nil
}
