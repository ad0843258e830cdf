package commands

import (
	"context"
	"time"
)

// CompleteWorkOrderCommandHandler finishes a running work order, stamping the
// actual end time and reported weight.
type CompleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCompleteWorkOrderCommandHandler creates a handler for completion
// operations. Requires a WorkOrderUoWFactory for transactional persistence.
func NewCompleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CompleteWorkOrderCommandHandler {
	return CompleteWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the completion command.
func (h *CompleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd CompleteWorkOrderCommand) error {
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

	if err = aggregate.Complete(cmd.ActualWeightLbs(), cmd.Notes(), cmd.Operator(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
