package commands

import (
	"context"
)

// ScheduleWorkOrderCommandHandler moves a Draft work order to Pending.
type ScheduleWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewScheduleWorkOrderCommandHandler creates a handler for scheduling
// operations. Requires a WorkOrderUoWFactory for transactional persistence.
func NewScheduleWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) ScheduleWorkOrderCommandHandler {
	return ScheduleWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the scheduling command. Records the planned window when
// given, then applies the Draft to Pending transition.
func (h *ScheduleWorkOrderCommandHandler) Handle(ctx context.Context, cmd ScheduleWorkOrderCommand) error {
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

	if cmd.ScheduledStart() != nil {
		if err = aggregate.SetSchedule(*cmd.ScheduledStart(), *cmd.ScheduledEnd()); err != nil {
			return err
		}
	}
	if err = aggregate.Schedule(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
