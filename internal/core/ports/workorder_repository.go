package ports

import (
	"context"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work-order
// aggregates. Writes are version-guarded: an update against a stale version
// fails with a version conflict instead of overwriting a concurrent writer.
type WorkOrderRepository interface {
	// Add persists a new work-order aggregate to storage.
	// The work order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work-order aggregate.
	// Fails with a version conflict when the stored version no longer
	// matches the version the aggregate was read at.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work-order aggregate by its unique identifier,
	// including its line items and event log.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetAllActive retrieves all work orders in a non-terminal status,
	// ordered by creation time.
	GetAllActive(ctx context.Context) ([]*workorder.WorkOrder, error)

	// GetAllInProgress retrieves work orders currently executing.
	// Used by the execution tick job to advance elapsed-time tracking.
	GetAllInProgress(ctx context.Context) ([]*workorder.WorkOrder, error)
}
