// Package partyrepo implements supplier and driver roster persistence.
package partyrepo

import (
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure for persisting suppliers.
type SupplierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rating      float64
	RatedOrders int
}

// TableName specifies the database table name for supplier entities.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// DriverDTO represents the database structure for persisting roster drivers.
type DriverDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID `gorm:"type:uuid;index"`
	Available  bool
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func supplierFromDomain(aggregate *party.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:          aggregate.ID().Bytes(),
		Rating:      aggregate.Rating(),
		RatedOrders: aggregate.RatedOrders(),
	}
}

func supplierToDomain(dto SupplierDTO) (*party.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return party.RestoreSupplier(id, dto.Rating, dto.RatedOrders)
}

func driverFromDomain(aggregate *party.Driver) DriverDTO {
	return DriverDTO{
		ID:         aggregate.ID().Bytes(),
		SupplierID: aggregate.SupplierID().Bytes(),
		Available:  aggregate.IsAvailable(),
	}
}

func driverToDomain(dto DriverDTO) (*party.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	return party.RestoreDriver(id, supplierID, dto.Available)
}
