// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"steelflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work-order repository
	// within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// CoilRepoFactory provides access to the coil repository within a
	// transaction.
	CoilRepoFactory interface {
		CoilRepository() ports.CoilRepository
	}

	// WorkOrderUoW manages transactions for work-order-only operations.
	// Used by lifecycle commands that never touch the coil.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work-order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// UoW manages transactions spanning the work order and its coil.
	// Allocation commands need both writes in one transaction: the
	// work-order insert and the coil weight decrement commit atomically
	// or not at all.
	UoW interface {
		TxManager
		WorkOrderRepoFactory
		CoilRepoFactory
	}

	// UoWFactory creates new unit of work instances for allocation commands.
	UoWFactory interface {
		Create() UoW
	}
)
