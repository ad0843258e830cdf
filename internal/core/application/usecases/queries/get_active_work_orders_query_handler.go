package queries

import (
	"context"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveWorkOrdersQueryHandler lists work orders that have not reached a
// terminal status, with their planned and processed weight totals.
type GetActiveWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveWorkOrdersQueryHandler creates a handler for active work order
// queries. Requires a GORM database connection for query execution.
func NewGetActiveWorkOrdersQueryHandler(db *gorm.DB) GetActiveWorkOrdersQueryHandler {
	return GetActiveWorkOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by creation time so the
// floor sees runs in the order they were planned.
func (h GetActiveWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveWorkOrdersQuery,
) ([]GetActiveWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workOrders := make([]GetActiveWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.tag_number,
			w.status,
			w.priority,
			w.due_date,
			COALESCE(SUM(li.planned_weight_lbs), 0) AS total_planned_lbs,
			COALESCE(SUM(
				CASE WHEN li.planned_quantity > 0
					THEN li.planned_weight_lbs * li.processed_quantity / li.planned_quantity
					ELSE 0
				END), 0) AS processed_lbs
		FROM work_orders w
		LEFT JOIN work_order_line_items li ON li.work_order_id = w.id
		WHERE w.status NOT IN (?, ?)
		GROUP BY w.id, w.tag_number, w.status, w.priority, w.due_date, w.created_at
		ORDER BY w.created_at
	`, workorder.Completed, workorder.Canceled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveWorkOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.TagNumber,
			&status,
			&resp.Priority,
			&resp.DueDate,
			&resp.TotalPlannedLbs,
			&resp.ProcessedLbs,
		)
		if err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.WorkOrderID = workOrderID
		resp.Status = workorder.Status(status).String()
		workOrders = append(workOrders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workOrders, nil
}
