package queries

import (
	"errors"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var ErrGetWorkOrderProgressQueryIsNotConstructed = errors.New(
	"GetWorkOrderProgressQuery must be created via NewGetWorkOrderProgressQuery constructor",
)

// GetWorkOrderProgressQuery retrieves execution progress for one work order:
// processed weight, percent complete, elapsed execution time, throughput rate,
// and the estimated completion time while running.
type GetWorkOrderProgressQuery struct {
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderProgressQuery creates a progress query for a work order.
func NewGetWorkOrderProgressQuery(workOrderID kernel.UUID) (GetWorkOrderProgressQuery, error) {
	if err := workOrderID.Validate(); err != nil {
		return GetWorkOrderProgressQuery{}, err
	}

	return GetWorkOrderProgressQuery{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderProgressQueryIsNotConstructed)
}

// WorkOrderID returns the work order the query targets.
func (q GetWorkOrderProgressQuery) WorkOrderID() kernel.UUID {
	return q.workOrderID
}

// GetWorkOrderProgressQueryResponse is the progress read model.
//
// ProgressPercent is 0 when nothing is planned. RateLbsPerHour is 0 until
// execution time has accumulated. EstimatedComplete is set only while the
// work order is running on a machine with a known throughput.
type GetWorkOrderProgressQueryResponse struct {
	WorkOrderID       kernel.UUID
	Status            string
	TotalPlannedLbs   float64
	ProcessedLbs      float64
	ProgressPercent   float64
	ElapsedSeconds    int64
	RateLbsPerHour    float64
	EstimatedComplete *time.Time
}
