// Package orderrepo implements order persistence. It maps the order
// aggregate onto its relational row and carries the conditional-write
// primitive the confirmation race is resolved with.
package orderrepo

import (
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and status for the one-open-order-per-customer lookup
// and the open-orders browse query.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	SupplierID       *uuid.UUID `gorm:"type:uuid;index"`
	DriverID         *uuid.UUID `gorm:"type:uuid"`
	Address          string
	Quantity         int
	CustomerBidPrice int64
	AcceptedPrice    *int64
	Status           string `gorm:"type:varchar(16);index"`
	SupplierDeadline *time.Time
	ConfirmedAt      *time.Time
	CreatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var supplierID, driverID *uuid.UUID
	if id := aggregate.Supplier(); id != nil {
		raw := id.Bytes()
		supplierID = &raw
	}
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var acceptedPrice *int64
	if price := aggregate.AcceptedPrice(); price != nil {
		raw := price.Int64()
		acceptedPrice = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		SupplierID:       supplierID,
		DriverID:         driverID,
		Address:          aggregate.Location().Address(),
		Quantity:         aggregate.Quantity(),
		CustomerBidPrice: aggregate.CustomerBidPrice().Int64(),
		AcceptedPrice:    acceptedPrice,
		Status:           aggregate.Status().String(),
		SupplierDeadline: aggregate.SupplierDeadline(),
		ConfirmedAt:      aggregate.ConfirmedAt(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate,
// re-running the aggregate's cross-field invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var supplierID *kernel.UUID
	if dto.SupplierID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.SupplierID)[:])
		if sErr != nil {
			return nil, sErr
		}
		supplierID = &sID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}

	loc, err := kernel.NewLocation(dto.Address)
	if err != nil {
		return nil, err
	}

	bidPrice, err := kernel.NewMoney(dto.CustomerBidPrice)
	if err != nil {
		return nil, err
	}

	var acceptedPrice *kernel.Money
	if dto.AcceptedPrice != nil {
		price, priceErr := kernel.NewMoney(*dto.AcceptedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		acceptedPrice = &price
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		supplierID,
		driverID,
		loc,
		dto.Quantity,
		bidPrice,
		acceptedPrice,
		status,
		dto.SupplierDeadline,
		dto.ConfirmedAt,
		dto.CreatedAt,
	)
}
