// Package bidrepo implements supplier bid persistence.
package bidrepo

import (
	"time"

	"tanker/internal/core/domain/model/bid"
	"tanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BidDTO represents the database structure for persisting bids.
// Indexed by order so acceptance can purge all of an order's bids at once.
type BidDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	SupplierID uuid.UUID `gorm:"type:uuid;index"`
	Price      int64
	CreatedAt  time.Time
}

// TableName specifies the database table name for bid entities.
func (BidDTO) TableName() string {
	return "bids"
}

func fromDomain(aggregate *bid.Bid) BidDTO {
	return BidDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		SupplierID: aggregate.SupplierID().Bytes(),
		Price:      aggregate.Price().Int64(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(id, orderID, supplierID, price, dto.CreatedAt)
}
