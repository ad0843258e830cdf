package commands

import (
	"context"
	"time"
)

// StartWorkOrderCommandHandler begins execution of a work order.
// The aggregate enforces the preconditions: resolved machine and coil
// references and at least one allocated line item.
type StartWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewStartWorkOrderCommandHandler creates a handler for start operations.
// Requires a WorkOrderUoWFactory for transactional persistence.
func NewStartWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) StartWorkOrderCommandHandler {
	return StartWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the start command. On success the work order is
// InProgress with its execution clock open and a started event appended.
func (h *StartWorkOrderCommandHandler) Handle(ctx context.Context, cmd StartWorkOrderCommand) error {
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

	if err = aggregate.Start(cmd.Operator(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
