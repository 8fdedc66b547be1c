// Package historyrepo implements delivery history persistence.
package historyrepo

import (
	"time"

	"tanker/internal/core/domain/model/history"
	"tanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting history records.
// History outlives the order row it archives; order_id is indexed for the
// rating lookup but carries no foreign key.
type RecordDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index"`
	SupplierID  uuid.UUID  `gorm:"type:uuid;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid"`
	Outcome     string     `gorm:"type:varchar(16)"`
	Price       int64
	Quantity    int
	Address     string
	ConfirmedAt *time.Time
	Rating      *int
	ArchivedAt  time.Time
}

// TableName specifies the database table name for history entities.
func (RecordDTO) TableName() string {
	return "history_records"
}

func fromDomain(aggregate *history.Record) RecordDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return RecordDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		SupplierID:  aggregate.SupplierID().Bytes(),
		DriverID:    driverID,
		Outcome:     string(aggregate.Outcome()),
		Price:       aggregate.Price().Int64(),
		Quantity:    aggregate.Quantity(),
		Address:     aggregate.Location().Address(),
		ConfirmedAt: aggregate.ConfirmedAt(),
		Rating:      aggregate.Rating(),
		ArchivedAt:  aggregate.ArchivedAt(),
	}
}

func toDomain(dto RecordDTO) (*history.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Address)
	if err != nil {
		return nil, err
	}

	return history.RestoreRecord(
		id,
		orderID,
		customerID,
		supplierID,
		driverID,
		history.Outcome(dto.Outcome),
		price,
		dto.Quantity,
		loc,
		dto.ConfirmedAt,
		dto.Rating,
		dto.ArchivedAt,
	)
}
