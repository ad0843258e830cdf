package commands_test

import (
	"math"
	"testing"

	"steelflow/internal/core/application/usecases/commands"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdjustLineItemCommand_ValidInput(t *testing.T) {
	workOrderID := kernel.NewUUID()
	quantity := 8

	cmd, err := commands.NewAdjustLineItemCommand(workOrderID, 2, &quantity, nil)

	require.NoError(t, err)
	assert.Equal(t, workOrderID, cmd.WorkOrderID())
	assert.Equal(t, 2, cmd.Sequence())
	require.NotNil(t, cmd.NewQuantity())
	assert.Equal(t, 8, *cmd.NewQuantity())
	assert.Nil(t, cmd.NewWeightLbs())
}

func TestNewAdjustLineItemCommand_BothValuesProvided(t *testing.T) {
	quantity := 8
	weight := 2560.0

	_, err := commands.NewAdjustLineItemCommand(kernel.NewUUID(), 1, &quantity, &weight)

	require.ErrorIs(t, err, commands.ErrAdjustmentIsAmbiguous)
}

func TestNewAdjustLineItemCommand_NeitherValueProvided(t *testing.T) {
	_, err := commands.NewAdjustLineItemCommand(kernel.NewUUID(), 1, nil, nil)

	require.ErrorIs(t, err, commands.ErrAdjustmentIsAmbiguous)
}

func TestNewAdjustLineItemCommand_NonFiniteWeight(t *testing.T) {
	weight := math.NaN()

	_, err := commands.NewAdjustLineItemCommand(kernel.NewUUID(), 1, nil, &weight)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAdjustLineItemCommand_InvalidSequence(t *testing.T) {
	quantity := 8

	_, err := commands.NewAdjustLineItemCommand(kernel.NewUUID(), 0, &quantity, nil)

	require.ErrorIs(t, err, commands.ErrSequenceIsInvalid)
}

func TestNewPauseWorkOrderCommand_ParsesReason(t *testing.T) {
	cmd, err := commands.NewPauseWorkOrderCommand(kernel.NewUUID(), "coil-change", "operator.mlee")

	require.NoError(t, err)
	assert.Equal(t, workorder.CoilChange, cmd.Reason())
}

func TestNewPauseWorkOrderCommand_UnknownReason(t *testing.T) {
	_, err := commands.NewPauseWorkOrderCommand(kernel.NewUUID(), "lunch", "operator.mlee")

	require.Error(t, err)
}
