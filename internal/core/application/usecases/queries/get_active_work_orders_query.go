package queries

import (
	"errors"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var ErrGetActiveWorkOrdersQueryIsNotConstructed = errors.New(
	"GetActiveWorkOrdersQuery must be created via NewGetActiveWorkOrdersQuery constructor",
)

// GetActiveWorkOrdersQuery retrieves all work orders in a non-terminal
// status for floor monitoring.
type GetActiveWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveWorkOrdersQuery creates a query to retrieve active work orders.
// This is a parameterless query that fetches everything not yet finished.
func NewGetActiveWorkOrdersQuery() GetActiveWorkOrdersQuery {
	return GetActiveWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveWorkOrdersQueryIsNotConstructed)
}

// GetActiveWorkOrdersQueryResponse is one row of the active work order list.
type GetActiveWorkOrdersQueryResponse struct {
	WorkOrderID     kernel.UUID
	TagNumber       string
	Status          string
	Priority        int
	DueDate         time.Time
	TotalPlannedLbs float64
	ProcessedLbs    float64
}
