package partyrepo

import (
	"context"
	"errors"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/party"
	"tanker/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB, tracker aggregateTracker) *GormSupplierRepository {
	return &GormSupplierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new supplier to the database.
func (r *GormSupplierRepository) Add(ctx context.Context, aggregate *party.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := supplierFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a supplier by ID.
func (r *GormSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*party.Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplier", id.String())
		}
		return nil, err
	}

	return supplierToDomain(dto)
}

// Update saves a supplier's recomputed rating state.
func (r *GormSupplierRepository) Update(ctx context.Context, aggregate *party.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := supplierFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SupplierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *party.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*party.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// Update saves a driver's availability state.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *party.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForSupplier retrieves a supplier's full driver roster.
func (r *GormDriverRepository) GetAllForSupplier(ctx context.Context, supplierID kernel.UUID) ([]*party.Driver, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "supplier_id = ?", supplierID.Bytes()).Error; err != nil {
		return nil, err
	}

	drivers := make([]*party.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := driverToDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
