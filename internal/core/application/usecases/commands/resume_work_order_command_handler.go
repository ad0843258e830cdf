package commands

import (
	"context"
	"time"
)

// ResumeWorkOrderCommandHandler restarts a paused work order and reopens its
// execution clock.
type ResumeWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewResumeWorkOrderCommandHandler creates a handler for resume operations.
// Requires a WorkOrderUoWFactory for transactional persistence.
func NewResumeWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) ResumeWorkOrderCommandHandler {
	return ResumeWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the resume command.
func (h *ResumeWorkOrderCommandHandler) Handle(ctx context.Context, cmd ResumeWorkOrderCommand) error {
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

	if err = aggregate.Resume(cmd.Operator(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
