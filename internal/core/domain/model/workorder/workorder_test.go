package workorder_test

import (
	"testing"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 6, 12, 7, 0, 0, 0, time.UTC)

func newTestWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	wo, err := workorder.NewWorkOrder(
		kernel.NewUUID(), "WO-2025-0142",
		kernel.NewUUID(), kernel.NewUUID(),
		testStart.AddDate(0, 0, 7), 2,
		"band and tag per customer spec", "planner",
		testStart,
	)
	require.NoError(t, err)
	return wo
}

func newAllocatedWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	wo := newTestWorkOrder(t)
	item := newTestLineItem(t, 1)
	require.NoError(t, wo.ApplyAllocation([]*workorder.LineItem{item}, false, 1))
	return wo
}

func TestNewWorkOrder(t *testing.T) {
	t.Run("should create draft with created event", func(t *testing.T) {
		wo := newTestWorkOrder(t)

		require.NoError(t, wo.Validate())
		assert.Equal(t, workorder.Draft, wo.Status())
		assert.Equal(t, "WO-2025-0142", wo.TagNumber())
		assert.False(t, wo.IsMultiWorkOrder())
		assert.Equal(t, int64(1), wo.Version())

		events := wo.Events()
		require.Len(t, events, 1)
		assert.Equal(t, workorder.EventCreated, events[0].Type)
		assert.Equal(t, "planner", events[0].Operator)
	})

	t.Run("should fail without tag number", func(t *testing.T) {
		_, err := workorder.NewWorkOrder(
			kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(),
			testStart, 1, "", "planner", testStart)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for nil work order", func(t *testing.T) {
		var wo *workorder.WorkOrder
		assert.Equal(t, workorder.ErrWorkOrderIsNotConstructed, wo.Validate())
	})
}

func TestWorkOrder_Start(t *testing.T) {
	t.Run("should require line items", func(t *testing.T) {
		wo := newTestWorkOrder(t)

		err := wo.Start("j.ramirez", testStart.Add(time.Hour))

		require.ErrorIs(t, err, workorder.ErrNoLineItems)
		assert.Equal(t, workorder.Draft, wo.Status())
		assert.Len(t, wo.Events(), 1)
	})

	t.Run("should require resolved machine and coil", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			kernel.NewUUID(), "WO-1", kernel.UUID{}, kernel.NewUUID(),
			testStart, 1, "", "planner", testStart)
		require.NoError(t, err)

		err = wo.Start("j.ramirez", testStart)

		require.ErrorIs(t, err, workorder.ErrMachineNotResolved)
	})

	t.Run("should require operator", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)

		require.ErrorIs(t, wo.Start("", testStart), errs.ErrValueIsRequired)
	})

	t.Run("should start from Draft", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		startAt := testStart.Add(time.Hour)

		require.NoError(t, wo.Start("j.ramirez", startAt))

		assert.Equal(t, workorder.InProgress, wo.Status())
		assert.Equal(t, "j.ramirez", wo.Operator())
		require.NotNil(t, wo.ActualStart())
		assert.Equal(t, startAt, *wo.ActualStart())

		events := wo.Events()
		require.Len(t, events, 2)
		assert.Equal(t, workorder.EventStarted, events[1].Type)
	})

	t.Run("should start from Pending after scheduling", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Schedule())
		assert.Equal(t, workorder.Pending, wo.Status())

		require.NoError(t, wo.Start("j.ramirez", testStart.Add(time.Hour)))
		assert.Equal(t, workorder.InProgress, wo.Status())
	})
}

// Full lifecycle: Pending -> start -> pause(material) -> resume ->
// complete(3480) -> further transitions rejected.
func TestWorkOrder_Lifecycle(t *testing.T) {
	wo := newAllocatedWorkOrder(t)
	require.NoError(t, wo.Schedule())

	startAt := testStart.Add(time.Hour)
	require.NoError(t, wo.Start("j.ramirez", startAt))
	assert.Equal(t, workorder.InProgress, wo.Status())

	pauseAt := startAt.Add(30 * time.Minute)
	require.NoError(t, wo.Pause(workorder.Material, "j.ramirez", pauseAt))
	assert.Equal(t, workorder.Awaiting, wo.Status())

	resumeAt := pauseAt.Add(15 * time.Minute)
	require.NoError(t, wo.Resume("j.ramirez", resumeAt))
	assert.Equal(t, workorder.InProgress, wo.Status())

	completeAt := resumeAt.Add(30 * time.Minute)
	actual := 3480.0
	require.NoError(t, wo.Complete(&actual, "two skids short", "j.ramirez", completeAt))

	assert.Equal(t, workorder.Completed, wo.Status())
	assert.InDelta(t, 3480.0, wo.ActualLbs(), 1e-9)
	require.NotNil(t, wo.ActualEnd())
	assert.Equal(t, completeAt, *wo.ActualEnd())

	events := wo.Events()
	require.Len(t, events, 5)
	assert.Equal(t, workorder.EventCreated, events[0].Type)
	assert.Equal(t, workorder.EventStarted, events[1].Type)
	assert.Equal(t, workorder.EventPaused, events[2].Type)
	assert.Equal(t, "material", events[2].Notes)
	assert.Equal(t, workorder.EventResumed, events[3].Type)
	assert.Equal(t, workorder.EventCompleted, events[4].Type)
	assert.Equal(t, "two skids short", events[4].Notes)

	// Pause excluded: 30 min running + 30 min running.
	assert.Equal(t, time.Hour, wo.ElapsedTime(completeAt.Add(time.Hour)))

	t.Run("terminal work order rejects every transition without new events", func(t *testing.T) {
		before := len(wo.Events())

		require.ErrorIs(t, wo.Start("j.ramirez", completeAt), workorder.ErrIllegalTransition)
		require.ErrorIs(t, wo.Pause(workorder.Break, "j.ramirez", completeAt), workorder.ErrIllegalTransition)
		require.ErrorIs(t, wo.Resume("j.ramirez", completeAt), workorder.ErrIllegalTransition)
		require.ErrorIs(t, wo.Complete(nil, "", "j.ramirez", completeAt), workorder.ErrIllegalTransition)
		require.ErrorIs(t, wo.Cancel("j.ramirez", "", completeAt), workorder.ErrIllegalTransition)

		assert.Len(t, wo.Events(), before)
		assert.Equal(t, workorder.Completed, wo.Status())
	})
}

func TestWorkOrder_Pause(t *testing.T) {
	t.Run("should reject invalid reason without mutating", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))

		err := wo.Pause(workorder.UnknownReason, "j.ramirez", testStart.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, workorder.InProgress, wo.Status())
		assert.Len(t, wo.Events(), 2)
	})
}

func TestWorkOrder_Complete(t *testing.T) {
	t.Run("should default actual weight to total planned", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))

		require.NoError(t, wo.Complete(nil, "", "j.ramirez", testStart.Add(time.Hour)))

		assert.InDelta(t, 3200.0, wo.ActualLbs(), 1e-9)
	})

	t.Run("should reject negative actual weight before mutating", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))
		bad := -1.0

		err := wo.Complete(&bad, "", "j.ramirez", testStart.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, workorder.InProgress, wo.Status())
	})
}

func TestWorkOrder_Cancel(t *testing.T) {
	t.Run("should cancel from Draft", func(t *testing.T) {
		wo := newTestWorkOrder(t)

		require.NoError(t, wo.Cancel("planner", "order withdrawn", testStart))

		assert.Equal(t, workorder.Canceled, wo.Status())
		events := wo.Events()
		assert.Equal(t, workorder.EventCanceled, events[len(events)-1].Type)
	})

	t.Run("should stop the execution clock when canceling a running order", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))
		cancelAt := testStart.Add(20 * time.Minute)

		require.NoError(t, wo.Cancel("supervisor", "coil rejected", cancelAt))

		assert.Equal(t, 20*time.Minute, wo.ElapsedTime(cancelAt.Add(time.Hour)))
	})
}

func TestWorkOrder_ElapsedTime(t *testing.T) {
	t.Run("should accumulate only while in progress", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)

		assert.Zero(t, wo.ElapsedTime(testStart.Add(time.Hour)))

		require.NoError(t, wo.Start("j.ramirez", testStart))
		assert.Equal(t, 10*time.Minute, wo.ElapsedTime(testStart.Add(10*time.Minute)))

		pauseAt := testStart.Add(15 * time.Minute)
		require.NoError(t, wo.Pause(workorder.Break, "j.ramirez", pauseAt))
		assert.Equal(t, 15*time.Minute, wo.ElapsedTime(pauseAt.Add(2*time.Hour)))
	})
}

func TestWorkOrder_AdjustLineItem(t *testing.T) {
	t.Run("should adjust by quantity", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		qty := 12

		require.NoError(t, wo.AdjustLineItem(1, &qty, nil, 15, 4800))

		item := wo.LineItems()[0]
		assert.Equal(t, 12, item.PlannedQuantity())
		assert.True(t, item.ManuallyAdjusted())
	})

	t.Run("should reject ambiguous adjustment", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		qty := 12
		weight := 3500.0

		require.ErrorIs(t, wo.AdjustLineItem(1, &qty, &weight, 15, 4800), errs.ErrValueIsInvalid)
		require.ErrorIs(t, wo.AdjustLineItem(1, nil, nil, 15, 4800), errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown sequence", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		qty := 12

		require.ErrorIs(t, wo.AdjustLineItem(9, &qty, nil, 15, 4800), workorder.ErrLineItemNotFound)
	})
}

func TestWorkOrder_RecordProduction(t *testing.T) {
	t.Run("should reject production unless in progress", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)

		require.ErrorIs(t, wo.RecordProduction(1, 2), workorder.ErrIllegalTransition)
	})

	t.Run("should record production while running", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))

		require.NoError(t, wo.RecordProduction(1, 4))

		assert.Equal(t, 4, wo.LineItems()[0].ProcessedQuantity())
	})
}

func TestWorkOrder_Progress(t *testing.T) {
	t.Run("should be zero percent with nothing planned", func(t *testing.T) {
		wo := newTestWorkOrder(t)

		p := wo.Progress(testStart, 5000)

		assert.Zero(t, p.Percent)
		assert.Zero(t, p.RateLbsPerHour)
	})

	t.Run("should be monotonic and reach exactly 100", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))

		last := -1.0
		for i := 0; i < 10; i++ {
			require.NoError(t, wo.RecordProduction(1, 1))
			p := wo.Progress(testStart.Add(time.Hour), 5000)
			assert.GreaterOrEqual(t, p.Percent, last)
			last = p.Percent
		}
		assert.InDelta(t, 100.0, last, 1e-9)
	})

	t.Run("should report rate from elapsed hours", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))
		actual := 3480.0
		require.NoError(t, wo.Complete(&actual, "", "j.ramirez", testStart.Add(30*time.Minute)))

		p := wo.Progress(testStart.Add(2*time.Hour), 5000)

		assert.Equal(t, 30*time.Minute, p.Elapsed)
		assert.InDelta(t, 6960.0, p.RateLbsPerHour, 1e-6)
	})

	t.Run("should estimate completion while running", func(t *testing.T) {
		wo := newAllocatedWorkOrder(t)
		require.NoError(t, wo.Start("j.ramirez", testStart))
		now := testStart.Add(10 * time.Minute)

		p := wo.Progress(now, 3200)

		require.NotNil(t, p.EstimatedComplete)
		assert.Equal(t, now.Add(time.Hour), *p.EstimatedComplete)
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	t.Run("should rebuild aggregate from snapshot", func(t *testing.T) {
		item := newTestLineItem(t, 1)
		started := testStart.Add(time.Hour)
		wo, err := workorder.RestoreWorkOrder(workorder.Snapshot{
			ID:                 kernel.NewUUID(),
			TagNumber:          "WO-2025-0142",
			MachineID:          kernel.NewUUID(),
			CoilID:             kernel.NewUUID(),
			DueDate:            testStart.AddDate(0, 0, 7),
			Priority:           2,
			Status:             workorder.InProgress,
			Operator:           "j.ramirez",
			LineItems:          []*workorder.LineItem{item},
			TotalWorkOrders:    1,
			WorkOrderSequence:  1,
			CreatedAt:          testStart,
			ActualStart:        &started,
			Events:             []workorder.Event{{Type: workorder.EventCreated, At: testStart}},
			Version:            3,
			AccumulatedSeconds: 900,
			RunningSince:       &started,
		})

		require.NoError(t, err)
		assert.Equal(t, workorder.InProgress, wo.Status())
		assert.Equal(t, int64(3), wo.Version())
		assert.Equal(t, 15*time.Minute+30*time.Minute, wo.ElapsedTime(started.Add(30*time.Minute)))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := workorder.RestoreWorkOrder(workorder.Snapshot{
			ID:        kernel.NewUUID(),
			TagNumber: "WO-1",
			Status:    workorder.UnknownStatus,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
