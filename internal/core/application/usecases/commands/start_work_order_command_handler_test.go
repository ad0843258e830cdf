package commands_test

import (
	"testing"
	"time"

	"steelflow/internal/core/application/usecases/commands"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoreWorkOrder rebuilds a persisted work order in the given status with
// one allocated line item.
func restoreWorkOrder(t *testing.T, id kernel.UUID, status workorder.Status) *workorder.WorkOrder {
	t.Helper()

	item, err := workorder.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), "Acme Stamping", 3500,
		320, 10, 3200, 0, workorder.SplitNone, 1)
	require.NoError(t, err)

	created := time.Date(2025, 6, 12, 6, 0, 0, 0, time.UTC)
	aggregate, err := workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:                id,
		TagNumber:         "C-20250612-001",
		MachineID:         kernel.NewUUID(),
		CoilID:            kernel.NewUUID(),
		Status:            status,
		LineItems:         []*workorder.LineItem{item},
		TotalWorkOrders:   1,
		WorkOrderSequence: 1,
		CreatedAt:         created,
		Events:            []workorder.Event{{Type: workorder.EventCreated, At: created}},
		Version:           3,
	})
	require.NoError(t, err)
	return aggregate
}

func TestStartWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	workOrderID := kernel.NewUUID()
	aggregate := restoreWorkOrder(t, workOrderID, workorder.Pending)

	cmd, err := commands.NewStartWorkOrderCommand(workOrderID, "operator.mlee")
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, workOrderID).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartWorkOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, workorder.InProgress, aggregate.Status())
	assert.Equal(t, "operator.mlee", aggregate.Operator())
	assert.NotNil(t, aggregate.ActualStart())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartWorkOrderCommandHandler_Handle_TerminalStatus(t *testing.T) {
	ctx := t.Context()
	workOrderID := kernel.NewUUID()
	aggregate := restoreWorkOrder(t, workOrderID, workorder.Canceled)

	cmd, err := commands.NewStartWorkOrderCommand(workOrderID, "operator.mlee")
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("Get", ctx, workOrderID).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartWorkOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, workorder.ErrIllegalTransition)
	assert.Equal(t, workorder.Canceled, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewStartWorkOrderCommand_EmptyOperator(t *testing.T) {
	_, err := commands.NewStartWorkOrderCommand(kernel.NewUUID(), "")

	require.ErrorIs(t, err, commands.ErrOperatorIsRequired)
}
