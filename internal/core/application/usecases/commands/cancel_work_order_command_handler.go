package commands

import (
	"context"
	"time"
)

// CancelWorkOrderCommandHandler abandons a work order. The cancellation stops
// the execution clock; the coil weight already consumed stays consumed.
type CancelWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCancelWorkOrderCommandHandler creates a handler for cancel operations.
// Requires a WorkOrderUoWFactory for transactional persistence.
func NewCancelWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CancelWorkOrderCommandHandler {
	return CancelWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancellation command.
func (h *CancelWorkOrderCommandHandler) Handle(ctx context.Context, cmd CancelWorkOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.Operator(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
