package offerrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/offer"
	"tanker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Put inserts a fresh offer for its (order, driver) pair, first removing any
// stale non-rejected row for the pair. A rejected row is never displaced;
// callers must check for one before offering again.
func (r *GormOfferRepository) Put(ctx context.Context, aggregate *offer.DriverOffer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Delete(&OfferDTO{},
		"order_id = ? AND driver_id = ? AND rejected = false",
		aggregate.OrderID().Bytes(), aggregate.DriverID().Bytes()).Error
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Get retrieves the offer for an (order, driver) pair.
func (r *GormOfferRepository) Get(ctx context.Context, orderID, driverID kernel.UUID) (*offer.DriverOffer, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND driver_id = ?", orderID.Bytes(), driverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer",
				fmt.Sprintf("%s/%s", orderID.String(), driverID.String()))
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing offer's mutable state (the rejected flag).
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.DriverOffer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).
		Where("order_id = ? AND driver_id = ?", dto.OrderID, dto.DriverID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// GetAllForOrder retrieves every offer row standing against an order.
func (r *GormOfferRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*offer.DriverOffer, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	offers := make([]*offer.DriverOffer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}

// DeleteAllForOrder removes every offer row for an order, rejected or not.
// Ran when a driver wins the confirmation race or the order is cancelled.
func (r *GormOfferRepository) DeleteAllForOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OfferDTO{}, "order_id = ?", orderID.Bytes()).Error
}

// DeleteExpiredUnrejected sweeps offer rows whose deadline passed without the
// driver rejecting. Rejected rows are kept: they carry the re-offer ban.
// A lazily-checked operation racing the sweep still wins, since both paths
// judge the same deadline column.
func (r *GormOfferRepository) DeleteExpiredUnrejected(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&OfferDTO{},
		"deadline < ? AND rejected = false", now)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
