package commands

import (
	"errors"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
	ErrCoilTagIsRequired   = errors.New("coil tag is required")
	ErrPriorityIsInvalid   = errors.New("priority must not be negative")
	ErrCreatedByIsRequired = errors.New("created-by actor is required")
)

// CreateWorkOrderCommand represents a request to allocate a coil to open
// order demand on a machine and persist the resulting work order.
//
// Example:
//
//	workOrderID := kernel.NewUUID()
//	cmd, err := NewCreateWorkOrderCommand(workOrderID, machineID, "C-20250612-001",
//	    dueDate, 1, "rush order", "planner.jsmith")
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, machines, customers, salesOrders, capabilities)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create work order: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID  kernel.UUID
	machineID    kernel.UUID
	coilTag      string
	dueDate      time.Time
	priority     int
	instructions string
	createdBy    string

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to allocate and register a new
// work order. Validates that both identifiers are valid, the coil tag is not
// empty, the priority is not negative, and the creating actor is named.
func NewCreateWorkOrderCommand(
	workOrderID kernel.UUID,
	machineID kernel.UUID,
	coilTag string,
	dueDate time.Time,
	priority int,
	instructions string,
	createdBy string,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		dueDate:      dueDate,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setMachineID(machineID),
		cmd.setCoilTag(coilTag),
		cmd.setPriority(priority),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the identifier assigned to the new work order.
func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// MachineID returns the production machine the run targets.
func (c CreateWorkOrderCommand) MachineID() kernel.UUID {
	return c.machineID
}

// CoilTag returns the tag number of the coil to allocate from.
func (c CreateWorkOrderCommand) CoilTag() string {
	return c.coilTag
}

// DueDate returns the due date for the run.
func (c CreateWorkOrderCommand) DueDate() time.Time {
	return c.dueDate
}

// Priority returns the scheduling priority.
func (c CreateWorkOrderCommand) Priority() int {
	return c.priority
}

// Instructions returns free-form instructions for the floor.
func (c CreateWorkOrderCommand) Instructions() string {
	return c.instructions
}

// CreatedBy returns the actor recorded on the created event.
func (c CreateWorkOrderCommand) CreatedBy() string {
	return c.createdBy
}

func (c *CreateWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CreateWorkOrderCommand) setMachineID(machineID kernel.UUID) error {
	if err := machineID.Validate(); err != nil {
		return err
	}

	c.machineID = machineID
	return nil
}

func (c *CreateWorkOrderCommand) setCoilTag(coilTag string) error {
	if coilTag == "" {
		return ErrCoilTagIsRequired
	}

	c.coilTag = coilTag
	return nil
}

func (c *CreateWorkOrderCommand) setPriority(priority int) error {
	if priority < 0 {
		return ErrPriorityIsInvalid
	}

	c.priority = priority
	return nil
}

func (c *CreateWorkOrderCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return ErrCreatedByIsRequired
	}

	c.createdBy = createdBy
	return nil
}
