package commands

import (
	"context"

	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/coil"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/core/domain/services"
	"steelflow/internal/core/ports"
)

// ReallocateWorkOrderCommandHandler re-runs the allocation engine for a
// Draft or Pending work order and merges the fresh result with the existing
// line items. Manual entries win: demand lines an operator already corrected
// are excluded from the fresh run entirely.
//
// Coil accounting across a re-run is conservative. The fresh run may reuse
// the weight the replaced automatic items had reserved; when the merged plan
// weighs more than the old one, only the difference is consumed from the
// coil. A lighter plan releases nothing, because the coil's remaining weight
// never increases.
type ReallocateWorkOrderCommandHandler struct {
	uowFactory   UoWFactory
	machines     ports.MachineCatalog
	customers    ports.CustomerDirectory
	salesOrders  ports.SalesOrderCatalog
	capabilities ports.CapabilityCatalog
	matcher      services.Matcher
	allocator    services.Allocator
}

// NewReallocateWorkOrderCommandHandler creates a handler for re-allocation.
func NewReallocateWorkOrderCommandHandler(
	uowFactory UoWFactory,
	machines ports.MachineCatalog,
	customers ports.CustomerDirectory,
	salesOrders ports.SalesOrderCatalog,
	capabilities ports.CapabilityCatalog,
) ReallocateWorkOrderCommandHandler {
	return ReallocateWorkOrderCommandHandler{
		uowFactory:   uowFactory,
		machines:     machines,
		customers:    customers,
		salesOrders:  salesOrders,
		capabilities: capabilities,
		matcher:      services.NewMatcher(),
		allocator:    services.NewAllocator(),
	}
}

// Handle processes the re-allocation command.
func (h *ReallocateWorkOrderCommandHandler) Handle(ctx context.Context, cmd ReallocateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	aggregate, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	machine, err := h.machines.GetMachine(ctx, aggregate.MachineID())
	if err != nil {
		return err
	}

	coilRepo := uow.CoilRepository()
	coilAggregate, err := coilRepo.Get(ctx, aggregate.CoilID())
	if err != nil {
		return err
	}

	existing := aggregate.LineItems()
	oldTotal := aggregate.TotalPlannedWeightLbs()

	// Weight reserved by the automatic items being replaced goes back into
	// the run-local budget for the fresh run.
	var replacedWeight float64
	adjusted := make(map[string]bool)
	for _, item := range existing {
		if item.ManuallyAdjusted() {
			adjusted[item.OrderLineItemID().String()] = true
		} else {
			replacedWeight += item.PlannedWeightLbs()
		}
	}

	matches, err := h.matchOpenDemand(ctx, machine, coilAggregate)
	if err != nil {
		return err
	}

	unadjusted := matches[:0]
	for _, match := range matches {
		if !adjusted[match.LineItem.ID.String()] {
			unadjusted = append(unadjusted, match)
		}
	}

	budget := coilAggregate.RemainingWeightLbs() + replacedWeight
	alloc, err := h.allocator.Allocate(machine, budget, unadjusted)
	if err != nil {
		return err
	}

	merged, isMulti, totalRounds := workorder.MergeLineItems(existing, alloc.LineItems)
	if err = aggregate.ApplyAllocation(merged, isMulti, totalRounds); err != nil {
		return err
	}

	if delta := aggregate.TotalPlannedWeightLbs() - oldTotal; delta > 0 {
		if err = coilAggregate.Consume(delta); err != nil {
			return err
		}
		if err = coilRepo.Update(ctx, coilAggregate); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ReallocateWorkOrderCommandHandler) matchOpenDemand(
	ctx context.Context,
	machine catalog.Machine,
	coilAggregate *coil.Coil,
) ([]services.Match, error) {
	orders, err := h.salesOrders.FindOpen(ctx)
	if err != nil {
		return nil, err
	}

	var producible map[string]struct{}
	if machine.Category == catalog.CTL {
		producible, err = h.capabilities.ProducibleItemCodes(ctx, coilAggregate.ID())
		if err != nil {
			return nil, err
		}
	}

	matches, err := h.matcher.Match(machine, coilAggregate, orders, producible)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]*catalog.Customer)
	for i := range matches {
		key := matches[i].Order.CustomerID.String()
		customer, seen := resolved[key]
		if !seen {
			if record, lookupErr := h.customers.GetCustomer(ctx, matches[i].Order.CustomerID); lookupErr == nil {
				customer = &record
			}
			resolved[key] = customer
		}
		matches[i].Customer = customer
	}

	return matches, nil
}
