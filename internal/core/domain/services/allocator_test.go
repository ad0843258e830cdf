package services_test

import (
	"testing"

	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/core/domain/services"
	"steelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(category catalog.MachineCategory, maxSkidLbs float64) catalog.Machine {
	return catalog.Machine{
		ID:                   kernel.NewUUID(),
		Name:                 "CTL-1",
		Category:             category,
		IsActive:             true,
		ThroughputLbsPerHour: 6000,
		MaxSkidCapacityLbs:   maxSkidLbs,
	}
}

func newTestCustomer(maxSkidLbs float64) *catalog.Customer {
	return &catalog.Customer{
		ID:                 kernel.NewUUID(),
		Name:               "Acme Stamping",
		MaxSkidCapacityLbs: maxSkidLbs,
	}
}

// newTestMatch builds a match with the given ordered pair and remaining weight.
func newTestMatch(
	customer *catalog.Customer,
	orderedQuantity int,
	orderedWeightLbs float64,
	remainingWeightLbs float64,
) services.Match {
	customerID := kernel.NewUUID()
	if customer != nil {
		customerID = customer.ID
	}
	remainingQuantity := orderedQuantity
	return services.Match{
		Order: catalog.SalesOrder{
			ID:         kernel.NewUUID(),
			Number:     "SO-1001",
			CustomerID: customerID,
		},
		LineItem: catalog.OrderLineItem{
			ID:                 kernel.NewUUID(),
			ItemCode:           "CTL-48-120",
			ItemID:             "ITEM-48",
			OrderedQuantity:    orderedQuantity,
			OrderedWeightLbs:   orderedWeightLbs,
			RemainingQuantity:  remainingQuantity,
			RemainingWeightLbs: remainingWeightLbs,
		},
		Customer: customer,
	}
}

func TestAllocator_Allocate(t *testing.T) {
	allocator := services.NewAllocator()

	t.Run("should split on skid capacity across two rounds", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)
		customer := newTestCustomer(3500)
		match := newTestMatch(customer, 15, 4800, 4800)

		alloc, err := allocator.Allocate(machine, 18500, []services.Match{match})
		require.NoError(t, err)

		require.Len(t, alloc.LineItems, 2)

		first := alloc.LineItems[0]
		assert.InDelta(t, 3500.0, first.PlannedWeightLbs(), 1e-9)
		assert.Equal(t, 10, first.PlannedQuantity())
		assert.Equal(t, workorder.SplitSkidCapacity, first.SplitReason())
		assert.InDelta(t, 300.0, first.ResidualWeightLbs(), 1e-9)
		assert.Equal(t, 1, first.Sequence())

		second := alloc.LineItems[1]
		assert.InDelta(t, 1300.0, second.PlannedWeightLbs(), 1e-9)
		assert.Equal(t, 4, second.PlannedQuantity())
		assert.Equal(t, workorder.SplitNone, second.SplitReason())
		assert.InDelta(t, 20.0, second.ResidualWeightLbs(), 1e-9)
		assert.Equal(t, 2, second.Sequence())

		assert.True(t, alloc.IsMultiWorkOrder)
		assert.Equal(t, 2, alloc.TotalRounds)
		assert.InDelta(t, 4800.0, alloc.ConsumedWeightLbs, 1e-9)
	})

	t.Run("should split on coil capacity when the coil binds", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)
		match := newTestMatch(newTestCustomer(4000), 20, 2000, 2000)

		alloc, err := allocator.Allocate(machine, 500, []services.Match{match})
		require.NoError(t, err)

		require.Len(t, alloc.LineItems, 1)
		item := alloc.LineItems[0]
		assert.InDelta(t, 500.0, item.PlannedWeightLbs(), 1e-9)
		assert.Equal(t, 5, item.PlannedQuantity())
		assert.Equal(t, workorder.SplitCoilCapacity, item.SplitReason())
		assert.False(t, alloc.IsMultiWorkOrder)
		assert.InDelta(t, 500.0, alloc.ConsumedWeightLbs, 1e-9)
	})

	t.Run("should not split when demand fits in one round", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 5000)
		match := newTestMatch(newTestCustomer(5000), 10, 1200, 1200)

		alloc, err := allocator.Allocate(machine, 9000, []services.Match{match})
		require.NoError(t, err)

		require.Len(t, alloc.LineItems, 1)
		assert.InDelta(t, 1200.0, alloc.LineItems[0].PlannedWeightLbs(), 1e-9)
		assert.Equal(t, workorder.SplitNone, alloc.LineItems[0].SplitReason())
		assert.False(t, alloc.IsMultiWorkOrder)
		assert.Equal(t, 1, alloc.TotalRounds)
	})

	t.Run("should prefer skid capacity when both constraints bind", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 1000)
		match := newTestMatch(newTestCustomer(1000), 30, 3000, 3000)

		alloc, err := allocator.Allocate(machine, 1000, []services.Match{match})
		require.NoError(t, err)

		require.Len(t, alloc.LineItems, 1)
		assert.Equal(t, workorder.SplitSkidCapacity, alloc.LineItems[0].SplitReason())
	})

	t.Run("should fall back to machine ceiling without a customer", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 3000)
		match := newTestMatch(nil, 20, 8000, 8000)

		alloc, err := allocator.Allocate(machine, 20000, []services.Match{match})
		require.NoError(t, err)

		require.Len(t, alloc.LineItems, 3)
		for _, item := range alloc.LineItems {
			assert.LessOrEqual(t, item.PlannedWeightLbs(), 3000.0)
			assert.Equal(t, "", item.CustomerName())
		}
	})

	t.Run("should share one sequence counter across line items", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 3500)
		customer := newTestCustomer(3500)
		matches := []services.Match{
			newTestMatch(customer, 15, 4800, 4800),
			newTestMatch(customer, 10, 1200, 1200),
		}

		alloc, err := allocator.Allocate(machine, 18500, matches)
		require.NoError(t, err)

		require.Len(t, alloc.LineItems, 3)
		for i, item := range alloc.LineItems {
			assert.Equal(t, i+1, item.Sequence())
		}
		assert.Equal(t, 3, alloc.TotalRounds)
		assert.True(t, alloc.IsMultiWorkOrder)
	})

	t.Run("should conserve coil weight across the run", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 2500)
		customer := newTestCustomer(9000)
		matches := []services.Match{
			newTestMatch(customer, 12, 3600, 3600),
			newTestMatch(customer, 8, 4000, 4000),
			newTestMatch(customer, 5, 1500, 1500),
		}

		const coilWeight = 6000.0
		alloc, err := allocator.Allocate(machine, coilWeight, matches)
		require.NoError(t, err)

		var total float64
		for _, item := range alloc.LineItems {
			total += item.PlannedWeightLbs()
		}
		assert.InDelta(t, alloc.ConsumedWeightLbs, total, 1e-9)
		assert.LessOrEqual(t, total, coilWeight)
	})

	t.Run("should stop allocating when the coil is exhausted", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)
		customer := newTestCustomer(4000)
		matches := []services.Match{
			newTestMatch(customer, 10, 3000, 3000),
			newTestMatch(customer, 10, 3000, 3000),
		}

		alloc, err := allocator.Allocate(machine, 3000, matches)
		require.NoError(t, err)

		require.Len(t, alloc.LineItems, 1)
		assert.InDelta(t, 3000.0, alloc.ConsumedWeightLbs, 1e-9)
	})

	t.Run("should reject a line item with zero ordered weight", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)
		match := newTestMatch(newTestCustomer(4000), 10, 0, 0)

		_, err := allocator.Allocate(machine, 5000, []services.Match{match})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should skip exhausted demand without emitting items", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)
		match := newTestMatch(newTestCustomer(4000), 10, 3200, 0)

		alloc, err := allocator.Allocate(machine, 5000, []services.Match{match})
		require.NoError(t, err)

		assert.Empty(t, alloc.LineItems)
		assert.Equal(t, 0, alloc.TotalRounds)
	})

	t.Run("should reject a negative coil weight", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)

		_, err := allocator.Allocate(machine, -1, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCapacityResolver_Resolve(t *testing.T) {
	resolver := services.NewCapacityResolver()

	t.Run("should take the smaller of machine and customer ceilings", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)

		assert.InDelta(t, 3500.0, resolver.Resolve(machine, newTestCustomer(3500)), 1e-9)
		assert.InDelta(t, 4000.0, resolver.Resolve(machine, newTestCustomer(6000)), 1e-9)
	})

	t.Run("should fall back to machine ceiling when customer is unknown", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)

		assert.InDelta(t, 4000.0, resolver.Resolve(machine, nil), 1e-9)
	})

	t.Run("should ignore a customer without a configured ceiling", func(t *testing.T) {
		machine := newTestMachine(catalog.CTL, 4000)

		assert.InDelta(t, 4000.0, resolver.Resolve(machine, newTestCustomer(0)), 1e-9)
	})
}
