package commands_test

import (
	"testing"
	"time"

	"steelflow/internal/core/application/usecases/commands"
	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoreRunningWorkOrder rebuilds an InProgress work order whose execution
// clock opened at the given instant.
func restoreRunningWorkOrder(t *testing.T, id, machineID kernel.UUID, since time.Time) *workorder.WorkOrder {
	t.Helper()

	item, err := workorder.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), "Acme Stamping", 3500,
		320, 10, 3200, 0, workorder.SplitNone, 1)
	require.NoError(t, err)
	require.NoError(t, item.RecordProduction(5))

	created := since.Add(-time.Hour)
	aggregate, err := workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:                id,
		TagNumber:         "C-20250612-001",
		MachineID:         machineID,
		CoilID:            kernel.NewUUID(),
		Status:            workorder.InProgress,
		Operator:          "operator.mlee",
		LineItems:         []*workorder.LineItem{item},
		TotalWorkOrders:   1,
		WorkOrderSequence: 1,
		CreatedAt:         created,
		ActualStart:       &since,
		Events:            []workorder.Event{{Type: workorder.EventCreated, At: created}},
		Version:           5,
		RunningSince:      &since,
	})
	require.NoError(t, err)
	return aggregate
}

func TestTrackExecutionCommandHandler_Handle_SnapshotsRunningOrders(t *testing.T) {
	ctx := t.Context()
	workOrderID := kernel.NewUUID()
	machineID := kernel.NewUUID()
	since := time.Now().UTC().Add(-30 * time.Minute)
	aggregate := restoreRunningWorkOrder(t, workOrderID, machineID, since)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("GetAllInProgress", ctx).Return([]*workorder.WorkOrder{aggregate}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	machines := new(MockMachineCatalog)
	machines.On("GetMachine", ctx, machineID).Return(catalog.Machine{
		ID:                   machineID,
		Name:                 "CTL-1",
		Category:             catalog.CTL,
		IsActive:             true,
		ThroughputLbsPerHour: 5000,
		MaxSkidCapacityLbs:   4000,
	}, nil).Once()

	h := commands.NewTrackExecutionCommandHandler(factory, machines)
	snapshots, err := h.Handle(ctx, commands.NewTrackExecutionCommand())
	require.NoError(t, err)

	require.Len(t, snapshots, 1)
	snapshot := snapshots[0]
	assert.Equal(t, workOrderID, snapshot.WorkOrderID)
	assert.Equal(t, "C-20250612-001", snapshot.TagNumber)
	assert.Equal(t, workorder.InProgress, snapshot.Progress.Status)
	assert.InDelta(t, 1750.0, snapshot.Progress.ProcessedLbs, 1e-9)
	assert.InDelta(t, 50.0, snapshot.Progress.Percent, 1e-9)
	assert.NotNil(t, snapshot.Progress.EstimatedComplete)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTrackExecutionCommandHandler_Handle_NoRunningOrders(t *testing.T) {
	ctx := t.Context()

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("GetAllInProgress", ctx).Return([]*workorder.WorkOrder{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	machines := new(MockMachineCatalog)

	h := commands.NewTrackExecutionCommandHandler(factory, machines)
	snapshots, err := h.Handle(ctx, commands.NewTrackExecutionCommand())

	require.NoError(t, err)
	assert.Empty(t, snapshots)
	machines.AssertNotCalled(t, "GetMachine", mock.Anything, mock.Anything)
}
