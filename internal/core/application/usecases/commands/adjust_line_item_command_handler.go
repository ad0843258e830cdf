package commands

import (
	"context"
	"fmt"

	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/core/ports"
)

// AdjustLineItemCommandHandler applies a manual override to one line item.
// The edit is bounded by the remaining quantity/weight on the originating
// order line item, re-read from the sales order catalog so the clamp uses
// current demand, not the snapshot taken at allocation time.
type AdjustLineItemCommandHandler struct {
	uowFactory  WorkOrderUoWFactory
	salesOrders ports.SalesOrderCatalog
}

// NewAdjustLineItemCommandHandler creates a handler for manual adjustments.
func NewAdjustLineItemCommandHandler(
	uowFactory WorkOrderUoWFactory,
	salesOrders ports.SalesOrderCatalog,
) AdjustLineItemCommandHandler {
	return AdjustLineItemCommandHandler{
		uowFactory:  uowFactory,
		salesOrders: salesOrders,
	}
}

// Handle processes the adjustment command. Values outside the valid range
// clamp to it; the item is marked manually adjusted so later re-allocation
// runs never overwrite it.
func (h *AdjustLineItemCommandHandler) Handle(ctx context.Context, cmd AdjustLineItemCommand) error {
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

	item, err := findBySequence(aggregate, cmd.Sequence())
	if err != nil {
		return err
	}

	_, orderItem, err := h.salesOrders.GetLineItem(ctx, item.OrderLineItemID())
	if err != nil {
		return err
	}

	err = aggregate.AdjustLineItem(
		cmd.Sequence(), cmd.NewQuantity(), cmd.NewWeightLbs(),
		orderItem.RemainingQuantity, orderItem.RemainingWeightLbs,
	)
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func findBySequence(aggregate *workorder.WorkOrder, sequence int) (*workorder.LineItem, error) {
	for _, item := range aggregate.LineItems() {
		if item.Sequence() == sequence {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: sequence %d", workorder.ErrLineItemNotFound, sequence)
}
