package commands

import (
	"errors"

	"steelflow/internal/pkg/guard"
)

// TrackExecutionCommand triggers a tracking pass over all InProgress work
// orders. Each pass computes a fresh progress snapshot per running order so
// the floor view stays live between operator actions.
//
// Example:
//
//	cmd := NewTrackExecutionCommand()
//	handler := NewTrackExecutionCommandHandler(uowFactory, machines)
//
//	// Run periodically while orders execute
//	ticker := time.NewTicker(time.Second)
//	for range ticker.C {
//	    snapshots, err := handler.Handle(ctx, cmd)
//	    ...
//	}
type TrackExecutionCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrTrackExecutionCommandIsNotConstructed = errors.New(
		"TrackExecutionCommand must be created via NewTrackExecutionCommand constructor",
	)
)

// NewTrackExecutionCommand creates a command to trigger an execution
// tracking pass. This is a parameterless command covering all running orders.
func NewTrackExecutionCommand() TrackExecutionCommand {
	command := TrackExecutionCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrTrackExecutionCommandIsNotConstructed if validation fails.
func (c *TrackExecutionCommand) Validate() error {
	return c.guard.Validate(ErrTrackExecutionCommandIsNotConstructed)
}
