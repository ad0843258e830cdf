package commands

import (
	"errors"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var (
	ErrScheduleWorkOrderCommandIsNotConstructed = errors.New(
		"ScheduleWorkOrderCommand must be created via NewScheduleWorkOrderCommand constructor",
	)
	ErrScheduleWindowIsIncomplete = errors.New("scheduled start and end must be provided together")
)

// ScheduleWorkOrderCommand releases a Draft work order to the floor,
// optionally recording a planned execution window.
type ScheduleWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID    kernel.UUID
	scheduledStart *time.Time
	scheduledEnd   *time.Time

	guard guard.ConstructorGuard
}

// NewScheduleWorkOrderCommand creates a command to move a work order from
// Draft to Pending. The window is optional but must be complete when given.
func NewScheduleWorkOrderCommand(
	workOrderID kernel.UUID,
	scheduledStart *time.Time,
	scheduledEnd *time.Time,
) (ScheduleWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return ScheduleWorkOrderCommand{}, err
	}
	if (scheduledStart == nil) != (scheduledEnd == nil) {
		return ScheduleWorkOrderCommand{}, ErrScheduleWindowIsIncomplete
	}

	return ScheduleWorkOrderCommand{
		workOrderID:    workOrderID,
		scheduledStart: scheduledStart,
		scheduledEnd:   scheduledEnd,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrScheduleWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the work order to schedule.
func (c ScheduleWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// ScheduledStart returns the planned start, if given.
func (c ScheduleWorkOrderCommand) ScheduledStart() *time.Time {
	return c.scheduledStart
}

// ScheduledEnd returns the planned end, if given.
func (c ScheduleWorkOrderCommand) ScheduledEnd() *time.Time {
	return c.scheduledEnd
}
