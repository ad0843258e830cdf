package workorderrepo

import (
	"context"
	"errors"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work-order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database, including its line items and
// the created event.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order. The header update is guarded by the
// version the aggregate was read at; a stale writer gets a version conflict.
// Line items are rewritten; event rows are append-only, existing positions
// are never touched.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	readVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = readVersion + 1

	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Omit(clause.Associations).
		Where("id = ? AND version = ?", dto.ID, readVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("workOrder", readVersion)
	}

	if err := r.db.WithContext(ctx).
		Where("work_order_id = ?", dto.ID).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.LineItems) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}

	if len(dto.Events) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID with its line items and event log.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all work orders in a non-terminal status.
func (r *GormWorkOrderRepository) GetAllActive(ctx context.Context) ([]*workorder.WorkOrder, error) {
	return r.findAll(ctx, "status NOT IN (?, ?)", workorder.Completed, workorder.Canceled)
}

// GetAllInProgress retrieves work orders currently executing.
func (r *GormWorkOrderRepository) GetAllInProgress(ctx context.Context) ([]*workorder.WorkOrder, error) {
	return r.findAll(ctx, "status = ?", workorder.InProgress)
}

func (r *GormWorkOrderRepository) findAll(
	ctx context.Context,
	query string,
	args ...any,
) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Order("created_at").
		Find(&dtos, append([]any{query}, args...)...).Error
	if err != nil {
		return nil, err
	}

	workOrders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		workOrders = append(workOrders, aggregate)
	}

	return workOrders, nil
}
