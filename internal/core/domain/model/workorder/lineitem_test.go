package workorder_test

import (
	"testing"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLineItem builds a line item with a 320 lbs unit weight,
// 10 planned pieces (3200 lbs), no split.
func newTestLineItem(t *testing.T, sequence int) *workorder.LineItem {
	t.Helper()
	item, err := workorder.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(),
		"Acme Stamping", 3500,
		320, 10, 3200, 0,
		workorder.SplitNone, sequence,
	)
	require.NoError(t, err)
	return item
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create pending item with no production", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.Validate())
		assert.Equal(t, 10, item.PlannedQuantity())
		assert.InDelta(t, 3200.0, item.PlannedWeightLbs(), 1e-9)
		assert.Equal(t, 0, item.ProcessedQuantity())
		assert.Equal(t, workorder.ItemPending, item.Status())
		assert.False(t, item.ManuallyAdjusted())
		assert.Equal(t, 1, item.Sequence())
	})

	t.Run("should reject non-positive unit weight", func(t *testing.T) {
		_, err := workorder.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(), "Acme", 3500,
			0, 10, 3200, 0, workorder.SplitNone, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject sequence below 1", func(t *testing.T) {
		_, err := workorder.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(), "Acme", 3500,
			320, 10, 3200, 0, workorder.SplitNone, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLineItem_AdjustQuantity(t *testing.T) {
	t.Run("should recompute weight from fixed unit weight", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.AdjustQuantity(12, 15))

		assert.Equal(t, 12, item.PlannedQuantity())
		assert.InDelta(t, 3840.0, item.PlannedWeightLbs(), 1e-9)
		assert.InDelta(t, 0.0, item.ResidualWeightLbs(), 1e-9)
		assert.True(t, item.ManuallyAdjusted())
	})

	t.Run("should clamp to remaining quantity", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.AdjustQuantity(20, 15))

		assert.Equal(t, 15, item.PlannedQuantity())
		assert.InDelta(t, 4800.0, item.PlannedWeightLbs(), 1e-9)
	})

	t.Run("should clamp negative quantity to zero", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.AdjustQuantity(-3, 15))

		assert.Equal(t, 0, item.PlannedQuantity())
		assert.InDelta(t, 0.0, item.PlannedWeightLbs(), 1e-9)
	})
}

func TestLineItem_AdjustWeight(t *testing.T) {
	t.Run("should floor quantity and record residual", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.AdjustWeight(3500, 4800))

		assert.Equal(t, 10, item.PlannedQuantity())
		assert.InDelta(t, 3500.0, item.PlannedWeightLbs(), 1e-9)
		assert.InDelta(t, 300.0, item.ResidualWeightLbs(), 1e-9)
		assert.True(t, item.ManuallyAdjusted())
	})

	t.Run("should clamp to remaining weight", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.AdjustWeight(9999, 4800))

		assert.InDelta(t, 4800.0, item.PlannedWeightLbs(), 1e-9)
		assert.Equal(t, 15, item.PlannedQuantity())
	})

	t.Run("should clamp negative weight to zero", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.AdjustWeight(-100, 4800))

		assert.InDelta(t, 0.0, item.PlannedWeightLbs(), 1e-9)
		assert.Equal(t, 0, item.PlannedQuantity())
	})
}

func TestLineItem_RecordProduction(t *testing.T) {
	t.Run("should advance status through production", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.NoError(t, item.RecordProduction(4))
		assert.Equal(t, 4, item.ProcessedQuantity())
		assert.Equal(t, workorder.ItemInProgress, item.Status())
		assert.InDelta(t, 1280.0, item.ProcessedWeightLbs(), 1e-9)

		require.NoError(t, item.RecordProduction(6))
		assert.Equal(t, workorder.ItemCompleted, item.Status())
		assert.InDelta(t, 3200.0, item.ProcessedWeightLbs(), 1e-9)
	})

	t.Run("should never exceed planned quantity", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		err := item.RecordProduction(11)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 0, item.ProcessedQuantity())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		item := newTestLineItem(t, 1)

		require.ErrorIs(t, item.RecordProduction(0), errs.ErrValueIsInvalid)
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should fail for nil and zero-value items", func(t *testing.T) {
		var nilItem *workorder.LineItem
		assert.Equal(t, workorder.ErrLineItemIsNotConstructed, nilItem.Validate())
		assert.Equal(t, workorder.ErrLineItemIsNotConstructed, (&workorder.LineItem{}).Validate())
	})
}
