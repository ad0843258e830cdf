package coilrepo

import (
	"context"
	"errors"

	"steelflow/internal/core/domain/model/coil"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCoilRepository implements CoilRepository using GORM.
type GormCoilRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCoilRepository creates a new GORM coil repository.
func NewGormCoilRepository(db *gorm.DB, tracker aggregateTracker) *GormCoilRepository {
	return &GormCoilRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a coil by ID.
func (r *GormCoilRepository) Get(ctx context.Context, id kernel.UUID) (*coil.Coil, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CoilDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coil", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTag retrieves a coil by its tag number.
func (r *GormCoilRepository) GetByTag(ctx context.Context, tagNumber string) (*coil.Coil, error) {
	if tagNumber == "" {
		return nil, errs.NewValueIsRequiredError("tagNumber")
	}

	var dto CoilDTO
	if err := r.db.WithContext(ctx).First(&dto, "tag_number = ?", tagNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coilTag", tagNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the coil's consumed weight as a compare-and-swap against
// the version the aggregate was read at. A stale writer gets a version
// conflict and must re-read the coil before retrying.
func (r *GormCoilRepository) Update(ctx context.Context, aggregate *coil.Coil) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	readVersion := aggregate.Version()
	result := r.db.WithContext(ctx).
		Model(&CoilDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), readVersion).
		Updates(map[string]any{
			"remaining_weight_lbs": aggregate.RemainingWeightLbs(),
			"version":              readVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("coil", readVersion)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
