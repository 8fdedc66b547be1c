// Package offerrepo implements driver-offer persistence. Offers are keyed by
// the (order, driver) pair rather than a surrogate ID; at most one row per
// pair exists at any time.
package offerrepo

import (
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting driver offers.
type OfferDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID `gorm:"type:uuid;index"`
	Deadline   time.Time
	Rejected   bool
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "driver_offers"
}

func fromDomain(aggregate *offer.DriverOffer) OfferDTO {
	return OfferDTO{
		OrderID:    aggregate.OrderID().Bytes(),
		DriverID:   aggregate.DriverID().Bytes(),
		SupplierID: aggregate.SupplierID().Bytes(),
		Deadline:   aggregate.Deadline(),
		Rejected:   aggregate.Rejected(),
	}
}

func toDomain(dto OfferDTO) (*offer.DriverOffer, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreDriverOffer(orderID, driverID, supplierID, dto.Deadline, dto.Rejected)
}
