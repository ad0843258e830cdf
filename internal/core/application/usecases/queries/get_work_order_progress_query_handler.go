package queries

import (
	"context"
	"database/sql"
	"time"

	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkOrderProgressQueryHandler computes the progress read model straight
// from storage, bypassing the aggregate. Elapsed time is rebuilt from the
// persisted closed spans plus the open span when the work order is running,
// so the number is correct whether or not the tick job is keeping up.
type GetWorkOrderProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderProgressQueryHandler creates a handler for progress queries.
// Requires a GORM database connection for query execution.
func NewGetWorkOrderProgressQueryHandler(db *gorm.DB) GetWorkOrderProgressQueryHandler {
	return GetWorkOrderProgressQueryHandler{db: db}
}

// Handle executes the progress query.
func (h GetWorkOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderProgressQuery,
) (GetWorkOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderProgressQueryResponse{}, err
	}

	var row struct {
		Status             int
		ActualLbs          float64
		AccumulatedSeconds int64
		RunningSince       sql.NullTime
		ThroughputLbsPerHr float64
		TotalPlannedLbs    float64
		ProcessedLbs       float64
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			w.status,
			w.actual_lbs,
			w.accumulated_seconds,
			w.running_since,
			COALESCE(m.throughput_lbs_per_hour, 0) AS throughput_lbs_per_hr,
			COALESCE(SUM(li.planned_weight_lbs), 0) AS total_planned_lbs,
			COALESCE(SUM(
				CASE WHEN li.planned_quantity > 0
					THEN li.planned_weight_lbs * li.processed_quantity / li.planned_quantity
					ELSE 0
				END), 0) AS processed_lbs
		FROM work_orders w
		LEFT JOIN machines m ON m.id = w.machine_id
		LEFT JOIN work_order_line_items li ON li.work_order_id = w.id
		WHERE w.id = ?
		GROUP BY w.id, w.status, w.actual_lbs, w.accumulated_seconds, w.running_since,
			m.throughput_lbs_per_hour
	`, query.WorkOrderID().String()).Scan(&row)
	if result.Error != nil {
		return GetWorkOrderProgressQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetWorkOrderProgressQueryResponse{},
			errs.NewObjectNotFoundError("workOrderID", query.WorkOrderID().String())
	}

	now := time.Now().UTC()
	status := workorder.Status(row.Status)

	elapsed := time.Duration(row.AccumulatedSeconds) * time.Second
	if row.RunningSince.Valid && now.After(row.RunningSince.Time) {
		elapsed += now.Sub(row.RunningSince.Time)
	}

	resp := GetWorkOrderProgressQueryResponse{
		WorkOrderID:     query.WorkOrderID(),
		Status:          status.String(),
		TotalPlannedLbs: row.TotalPlannedLbs,
		ProcessedLbs:    row.ProcessedLbs,
		ElapsedSeconds:  int64(elapsed / time.Second),
	}

	if row.TotalPlannedLbs > 0 {
		resp.ProgressPercent = row.ProcessedLbs / row.TotalPlannedLbs * 100
	}

	if hours := elapsed.Hours(); hours > 0 {
		produced := row.ProcessedLbs
		if status == workorder.Completed {
			produced = row.ActualLbs
		}
		resp.RateLbsPerHour = produced / hours
	}

	if status == workorder.InProgress && row.ThroughputLbsPerHr > 0 {
		remaining := row.TotalPlannedLbs - row.ProcessedLbs
		if remaining < 0 {
			remaining = 0
		}
		eta := now.Add(time.Duration(remaining / row.ThroughputLbsPerHr * float64(time.Hour)))
		resp.EstimatedComplete = &eta
	}

	return resp, nil
}
