package commands

import (
	"context"
	"errors"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/core/ports"
	"steelflow/internal/pkg/errs"
)

// ExecutionSnapshot is one running work order's progress at tracking time.
type ExecutionSnapshot struct {
	WorkOrderID kernel.UUID
	TagNumber   string
	Progress    workorder.Progress
}

// TrackExecutionCommandHandler computes progress snapshots for all
// InProgress work orders. The pass is read-only: elapsed time and progress
// derive from recorded transitions and production counts, so nothing is
// written back.
type TrackExecutionCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	machines   ports.MachineCatalog
}

// NewTrackExecutionCommandHandler creates a handler for execution tracking
// passes. The machine catalog feeds rated throughput into completion
// estimates.
func NewTrackExecutionCommandHandler(
	uowFactory WorkOrderUoWFactory,
	machines ports.MachineCatalog,
) TrackExecutionCommandHandler {
	return TrackExecutionCommandHandler{
		uowFactory: uowFactory,
		machines:   machines,
	}
}

// Handle processes the tracking command. Returns one snapshot per InProgress
// work order, in repository order. A machine lookup failure degrades that
// order's estimate to none instead of failing the pass.
func (h *TrackExecutionCommandHandler) Handle(
	ctx context.Context,
	cmd TrackExecutionCommand,
) ([]ExecutionSnapshot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	running, err := uow.WorkOrderRepository().GetAllInProgress(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	snapshots := make([]ExecutionSnapshot, 0, len(running))
	for _, aggregate := range running {
		var throughput float64
		machine, machineErr := h.machines.GetMachine(ctx, aggregate.MachineID())
		if machineErr == nil {
			throughput = machine.ThroughputLbsPerHour
		} else if !errors.Is(machineErr, errs.ErrObjectNotFound) {
			return nil, machineErr
		}

		snapshots = append(snapshots, ExecutionSnapshot{
			WorkOrderID: aggregate.ID(),
			TagNumber:   aggregate.TagNumber(),
			Progress:    aggregate.Progress(now, throughput),
		})
	}

	return snapshots, nil
}
