// Package workorder provides the WorkOrder aggregate: the schedulable unit of
// production created by allocating open order demand against a coil on a
// machine.
//
// The package includes:
//   - WorkOrder: the aggregate root owning line items, lifecycle, and audit log
//   - Status: a state machine enforcing the shop-floor workflow
//   - LineItem: one allocated slice of demand with split/override annotations
//   - Event: an immutable entry in the append-only audit log
//   - PauseReason: the closed set of valid reasons for pausing a run
//
// Key business rules:
//   - Status transitions are monotonic; Completed and Canceled are terminal
//   - A failed transition mutates nothing and appends no event
//   - The event log is append-only; history is never rewritten
//   - Execution time accumulates only while the status is InProgress
//   - Manual line-item edits are flagged and survive re-allocation
//
// The package follows Domain-Driven Design principles: all mutation goes
// through aggregate methods that enforce invariants, and persistence rebuilds
// aggregates through restore constructors.
package workorder
