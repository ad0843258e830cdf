package commands

import (
	"context"
	"time"
)

// PauseWorkOrderCommandHandler suspends a running work order. The pause
// closes the execution clock span, so paused time never counts as elapsed.
type PauseWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewPauseWorkOrderCommandHandler creates a handler for pause operations.
// Requires a WorkOrderUoWFactory for transactional persistence.
func NewPauseWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) PauseWorkOrderCommandHandler {
	return PauseWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the pause command.
func (h *PauseWorkOrderCommandHandler) Handle(ctx context.Context, cmd PauseWorkOrderCommand) error {
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

	if err = aggregate.Pause(cmd.Reason(), cmd.Operator(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
