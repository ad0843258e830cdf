package commands

import (
	"context"
)

// RecordProductionCommandHandler reports produced pieces against a line item.
// Only a running work order accepts production; the aggregate caps the count
// at the planned quantity.
type RecordProductionCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRecordProductionCommandHandler creates a handler for production
// reporting. Requires a WorkOrderUoWFactory for transactional persistence.
func NewRecordProductionCommandHandler(uowFactory WorkOrderUoWFactory) RecordProductionCommandHandler {
	return RecordProductionCommandHandler{uowFactory: uowFactory}
}

// Handle processes the production report.
func (h *RecordProductionCommandHandler) Handle(ctx context.Context, cmd RecordProductionCommand) error {
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

	if err = aggregate.RecordProduction(cmd.Sequence(), cmd.Quantity()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
