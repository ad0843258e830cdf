package commands

import (
	"context"
	"fmt"
	"time"

	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/coil"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/core/domain/services"
	"steelflow/internal/core/ports"
	"steelflow/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler handles the full allocation flow: match open
// order demand against the coil, partition it into line items under the
// binding capacity constraints, and persist the new work order together with
// the coil weight decrement in one transaction.
type CreateWorkOrderCommandHandler struct {
	uowFactory   UoWFactory
	machines     ports.MachineCatalog
	customers    ports.CustomerDirectory
	salesOrders  ports.SalesOrderCatalog
	capabilities ports.CapabilityCatalog
	matcher      services.Matcher
	allocator    services.Allocator
}

// NewCreateWorkOrderCommandHandler creates a handler for work-order creation.
// Requires a UoWFactory spanning work orders and coils plus the read-only
// reference catalogs the allocation run draws from.
func NewCreateWorkOrderCommandHandler(
	uowFactory UoWFactory,
	machines ports.MachineCatalog,
	customers ports.CustomerDirectory,
	salesOrders ports.SalesOrderCatalog,
	capabilities ports.CapabilityCatalog,
) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory:   uowFactory,
		machines:     machines,
		customers:    customers,
		salesOrders:  salesOrders,
		capabilities: capabilities,
		matcher:      services.NewMatcher(),
		allocator:    services.NewAllocator(),
	}
}

// Handle processes the work-order creation command.
//
// The allocation run reads the coil's remaining weight once and works against
// that run-local counter; the decrement is committed atomically with the
// work-order insert, and a concurrent writer on the same coil surfaces as a
// version conflict for the caller to retry.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	machine, err := h.machines.GetMachine(ctx, cmd.MachineID())
	if err != nil {
		return err
	}
	if !machine.IsActive {
		return errs.NewValueIsInvalidErrorWithCause(
			"machineID", fmt.Errorf("machine %s is not active", machine.Name))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	coilRepo := uow.CoilRepository()
	coilAggregate, err := coilRepo.GetByTag(ctx, cmd.CoilTag())
	if err != nil {
		return err
	}

	matches, err := h.matchOpenDemand(ctx, machine, coilAggregate)
	if err != nil {
		return err
	}

	alloc, err := h.allocator.Allocate(machine, coilAggregate.RemainingWeightLbs(), matches)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := workorder.NewWorkOrder(
		cmd.WorkOrderID(), coilAggregate.TagNumber(), machine.ID, coilAggregate.ID(),
		cmd.DueDate(), cmd.Priority(), cmd.Instructions(), cmd.CreatedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = aggregate.ApplyAllocation(alloc.LineItems, alloc.IsMultiWorkOrder, alloc.TotalRounds); err != nil {
		return err
	}

	if alloc.ConsumedWeightLbs > 0 {
		if err = coilAggregate.Consume(alloc.ConsumedWeightLbs); err != nil {
			return err
		}
		if err = coilRepo.Update(ctx, coilAggregate); err != nil {
			return err
		}
	}

	if err = uow.WorkOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// matchOpenDemand runs the matching engine over the open order book and
// enriches each match with its customer record. A failed customer lookup
// leaves the match in place with no customer; the machine ceiling alone then
// binds for it.
func (h *CreateWorkOrderCommandHandler) matchOpenDemand(
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
