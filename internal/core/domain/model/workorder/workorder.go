package workorder

import (
	"errors"
	"fmt"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder was not created
	// through NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New(
		"WorkOrder must be created via NewWorkOrder or RestoreWorkOrder constructor")

	// ErrNoLineItems indicates an attempt to start a work order that has no
	// allocated line items.
	ErrNoLineItems = errors.New("work order has no line items")

	// ErrMachineNotResolved indicates an attempt to start a work order whose
	// machine reference was never resolved.
	ErrMachineNotResolved = errors.New("work order machine is not resolved")

	// ErrCoilNotResolved indicates an attempt to start a work order whose coil
	// reference was never resolved.
	ErrCoilNotResolved = errors.New("work order coil is not resolved")

	// ErrLineItemNotFound indicates that no line item with the requested
	// sequence number exists on the work order.
	ErrLineItemNotFound = errors.New("line item not found on work order")
)

// WorkOrder is the aggregate root driving one production run: a machine, a
// coil, the allocated line items, the lifecycle status, and the append-only
// event log. All mutation goes through methods that enforce the state
// machine; a rejected operation leaves the aggregate untouched.
//
// WorkOrder is a single-writer aggregate. The version stamp is read from
// storage and checked by the persistence adapter on every update, so a writer
// holding a stale copy fails with a version conflict instead of silently
// overwriting concurrent changes.
type WorkOrder struct {
	id                kernel.UUID
	tagNumber         string
	machineID         kernel.UUID
	coilID            kernel.UUID
	dueDate           time.Time
	priority          int
	status            Status
	instructions      string
	operator          string
	lineItems         []*LineItem
	isMultiWorkOrder  bool
	totalWorkOrders   int
	workOrderSequence int
	createdAt         time.Time
	scheduledStart    *time.Time
	scheduledEnd      *time.Time
	actualStart       *time.Time
	actualEnd         *time.Time
	actualLbs         float64
	events            []Event
	version           int64

	// Execution-time bookkeeping: accumulated holds closed InProgress spans,
	// runningSince marks the start of the open span while InProgress.
	accumulated  time.Duration
	runningSince *time.Time

	isConstructed bool
}

// NewWorkOrder creates a work order in Draft with a single created event and
// no line items. The allocation engine populates line items afterwards via
// ApplyAllocation.
func NewWorkOrder(
	id kernel.UUID,
	tagNumber string,
	machineID kernel.UUID,
	coilID kernel.UUID,
	dueDate time.Time,
	priority int,
	instructions string,
	createdBy string,
	now time.Time,
) (*WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if tagNumber == "" {
		return nil, errs.NewValueIsRequiredError("tagNumber")
	}

	return &WorkOrder{
		id:                id,
		tagNumber:         tagNumber,
		machineID:         machineID,
		coilID:            coilID,
		dueDate:           dueDate,
		priority:          priority,
		status:            Draft,
		instructions:      instructions,
		workOrderSequence: 1,
		totalWorkOrders:   1,
		createdAt:         now,
		version:           1,
		events:            []Event{{Type: EventCreated, At: now, Operator: createdBy}},
		isConstructed:     true,
	}, nil
}

// Snapshot carries every persisted field of a work order. It exists so the
// persistence adapter can rebuild the aggregate without a constructor taking
// twenty positional arguments.
type Snapshot struct {
	ID                 kernel.UUID
	TagNumber          string
	MachineID          kernel.UUID
	CoilID             kernel.UUID
	DueDate            time.Time
	Priority           int
	Status             Status
	Instructions       string
	Operator           string
	LineItems          []*LineItem
	IsMultiWorkOrder   bool
	TotalWorkOrders    int
	WorkOrderSequence  int
	CreatedAt          time.Time
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	ActualStart        *time.Time
	ActualEnd          *time.Time
	ActualLbs          float64
	Events             []Event
	Version            int64
	AccumulatedSeconds int64
	RunningSince       *time.Time
}

// RestoreWorkOrder reconstructs a work order from its persisted snapshot.
func RestoreWorkOrder(s Snapshot) (*WorkOrder, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	if s.TagNumber == "" {
		return nil, errs.NewValueIsRequiredError("tagNumber")
	}
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	for _, item := range s.LineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &WorkOrder{
		id:                s.ID,
		tagNumber:         s.TagNumber,
		machineID:         s.MachineID,
		coilID:            s.CoilID,
		dueDate:           s.DueDate,
		priority:          s.Priority,
		status:            s.Status,
		instructions:      s.Instructions,
		operator:          s.Operator,
		lineItems:         s.LineItems,
		isMultiWorkOrder:  s.IsMultiWorkOrder,
		totalWorkOrders:   s.TotalWorkOrders,
		workOrderSequence: s.WorkOrderSequence,
		createdAt:         s.CreatedAt,
		scheduledStart:    s.ScheduledStart,
		scheduledEnd:      s.ScheduledEnd,
		actualStart:       s.ActualStart,
		actualEnd:         s.ActualEnd,
		actualLbs:         s.ActualLbs,
		events:            s.Events,
		version:           s.Version,
		accumulated:       time.Duration(s.AccumulatedSeconds) * time.Second,
		runningSince:      s.RunningSince,
		isConstructed:     true,
	}, nil
}

// Validate ensures the work order was created through a constructor.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares work orders by identity.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID { return w.id }

// TagNumber returns the work order's human-readable tag.
func (w *WorkOrder) TagNumber() string { return w.tagNumber }

// MachineID returns the production machine reference.
func (w *WorkOrder) MachineID() kernel.UUID { return w.machineID }

// CoilID returns the source coil reference.
func (w *WorkOrder) CoilID() kernel.UUID { return w.coilID }

// DueDate returns the due date inherited from the driving sales orders.
func (w *WorkOrder) DueDate() time.Time { return w.dueDate }

// Priority returns the scheduling priority.
func (w *WorkOrder) Priority() int { return w.priority }

// Status returns the current lifecycle status.
func (w *WorkOrder) Status() Status { return w.status }

// Instructions returns free-form instructions for the floor.
func (w *WorkOrder) Instructions() string { return w.instructions }

// Operator returns the operator who started the run, if any.
func (w *WorkOrder) Operator() string { return w.operator }

// IsMultiWorkOrder reports whether any line item needed more than one
// allocation round.
func (w *WorkOrder) IsMultiWorkOrder() bool { return w.isMultiWorkOrder }

// TotalWorkOrders returns the number of allocation rounds produced by the run.
func (w *WorkOrder) TotalWorkOrders() int { return w.totalWorkOrders }

// WorkOrderSequence returns this work order's position within its split group.
func (w *WorkOrder) WorkOrderSequence() int { return w.workOrderSequence }

// CreatedAt returns the creation timestamp.
func (w *WorkOrder) CreatedAt() time.Time { return w.createdAt }

// ScheduledStart returns the planned start, if scheduled.
func (w *WorkOrder) ScheduledStart() *time.Time { return w.scheduledStart }

// ScheduledEnd returns the planned end, if scheduled.
func (w *WorkOrder) ScheduledEnd() *time.Time { return w.scheduledEnd }

// ActualStart returns the first transition into InProgress, if any.
func (w *WorkOrder) ActualStart() *time.Time { return w.actualStart }

// ActualEnd returns the completion timestamp, if completed.
func (w *WorkOrder) ActualEnd() *time.Time { return w.actualEnd }

// ActualLbs returns the weight reported at completion; zero until then.
func (w *WorkOrder) ActualLbs() float64 { return w.actualLbs }

// Version returns the optimistic-concurrency stamp read from storage.
func (w *WorkOrder) Version() int64 { return w.version }

// RunningSince returns the start of the open InProgress span, nil otherwise.
func (w *WorkOrder) RunningSince() *time.Time { return w.runningSince }

// AccumulatedSeconds returns the closed InProgress time in whole seconds, for
// persistence.
func (w *WorkOrder) AccumulatedSeconds() int64 {
	return int64(w.accumulated / time.Second)
}

// LineItems returns the allocated line items. The returned slice is a copy;
// the items themselves are the aggregate's (mutate them only through the
// aggregate).
func (w *WorkOrder) LineItems() []*LineItem {
	items := make([]*LineItem, len(w.lineItems))
	copy(items, w.lineItems)
	return items
}

// Events returns a copy of the append-only event log.
func (w *WorkOrder) Events() []Event {
	events := make([]Event, len(w.events))
	copy(events, w.events)
	return events
}

// SetSchedule records the planned start/end window.
func (w *WorkOrder) SetSchedule(start, end time.Time) error {
	if w.status.IsTerminal() {
		return fmt.Errorf("%w: cannot reschedule from %s", ErrIllegalTransition, w.status)
	}
	if end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduledEnd", fmt.Errorf("%s is before scheduled start", end.Format(time.RFC3339)))
	}
	w.scheduledStart = &start
	w.scheduledEnd = &end
	return nil
}

// ApplyAllocation replaces the line-item list with the result of an
// allocation run. Only Draft and Pending work orders accept allocations; a
// running or finished work order's plan is frozen.
//
// Callers re-running allocation must merge against manual entries first (see
// MergeLineItems); this method does not protect manual edits by itself.
func (w *WorkOrder) ApplyAllocation(items []*LineItem, isMulti bool, totalRounds int) error {
	if w.status != Draft && w.status != Pending {
		return fmt.Errorf("%w: cannot apply allocation from %s", ErrIllegalTransition, w.status)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if totalRounds < len(items) {
		totalRounds = len(items)
	}
	if totalRounds < 1 {
		totalRounds = 1
	}

	w.lineItems = items
	w.isMultiWorkOrder = isMulti
	w.totalWorkOrders = totalRounds
	return nil
}

// Schedule releases a Draft work order to the floor (Draft -> Pending).
func (w *WorkOrder) Schedule() error {
	newStatus, err := w.status.Schedule()
	if err != nil {
		return err
	}
	w.status = newStatus
	return nil
}

// Start begins execution. Preconditions: the machine and coil references are
// resolved, at least one line item is allocated, and an operator is named.
// On success the actual start is stamped (first start only), the execution
// clock opens, and a started event is appended.
func (w *WorkOrder) Start(operator string, now time.Time) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	if err := w.machineID.Validate(); err != nil {
		return ErrMachineNotResolved
	}
	if err := w.coilID.Validate(); err != nil {
		return ErrCoilNotResolved
	}
	if len(w.lineItems) == 0 {
		return ErrNoLineItems
	}

	newStatus, err := w.status.Start()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.operator = operator
	if w.actualStart == nil {
		start := now
		w.actualStart = &start
	}
	running := now
	w.runningSince = &running
	w.appendEvent(EventStarted, now, operator, "")
	return nil
}

// Pause suspends execution for a stated reason. The reason is validated
// before any state changes; an invalid reason leaves the work order running.
func (w *WorkOrder) Pause(reason PauseReason, operator string, now time.Time) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	newStatus, err := w.status.Pause()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.closeExecutionSpan(now)
	w.appendEvent(EventPaused, now, operator, reason.String())
	return nil
}

// Resume restarts a paused work order and reopens the execution clock.
func (w *WorkOrder) Resume(operator string, now time.Time) error {
	newStatus, err := w.status.Resume()
	if err != nil {
		return err
	}

	w.status = newStatus
	running := now
	w.runningSince = &running
	w.appendEvent(EventResumed, now, operator, "")
	return nil
}

// Complete finishes the run. When actualWeightLbs is nil the reported weight
// defaults to the total planned weight. Terminal: the work order accepts no
// further transitions afterwards.
func (w *WorkOrder) Complete(actualWeightLbs *float64, notes string, operator string, now time.Time) error {
	if actualWeightLbs != nil && *actualWeightLbs < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"actualWeightLbs", fmt.Errorf("%v is negative", *actualWeightLbs))
	}

	newStatus, err := w.status.Complete()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.closeExecutionSpan(now)
	end := now
	w.actualEnd = &end
	if actualWeightLbs != nil {
		w.actualLbs = *actualWeightLbs
	} else {
		w.actualLbs = w.TotalPlannedWeightLbs()
	}
	w.appendEvent(EventCompleted, now, operator, notes)
	return nil
}

// Cancel abandons the work order from any non-terminal status. Terminal.
func (w *WorkOrder) Cancel(operator string, notes string, now time.Time) error {
	newStatus, err := w.status.Cancel()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.closeExecutionSpan(now)
	w.appendEvent(EventCanceled, now, operator, notes)
	return nil
}

// AdjustLineItem applies a manual override to one line item, identified by
// its sequence number. Exactly one of newQuantity and newWeightLbs must be
// set; the other half of the pair is recomputed from the item's fixed unit
// weight. maxQuantity/maxWeightLbs are the remaining amounts on the
// originating order line item and bound the edit.
func (w *WorkOrder) AdjustLineItem(
	sequence int,
	newQuantity *int,
	newWeightLbs *float64,
	maxQuantity int,
	maxWeightLbs float64,
) error {
	if w.status.IsTerminal() {
		return fmt.Errorf("%w: cannot adjust line items from %s", ErrIllegalTransition, w.status)
	}
	if (newQuantity == nil) == (newWeightLbs == nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"adjustment", errors.New("exactly one of quantity and weight must be provided"))
	}

	item, err := w.findLineItem(sequence)
	if err != nil {
		return err
	}

	if newQuantity != nil {
		return item.AdjustQuantity(*newQuantity, maxQuantity)
	}
	return item.AdjustWeight(*newWeightLbs, maxWeightLbs)
}

// RecordProduction reports produced pieces against one line item. Only a
// running work order accepts production.
func (w *WorkOrder) RecordProduction(sequence, quantity int) error {
	if w.status != InProgress {
		return fmt.Errorf("%w: cannot record production from %s", ErrIllegalTransition, w.status)
	}

	item, err := w.findLineItem(sequence)
	if err != nil {
		return err
	}

	return item.RecordProduction(quantity)
}

// RecordError appends an error event to the log without changing status.
func (w *WorkOrder) RecordError(operator, notes string, now time.Time) error {
	if w.status.IsTerminal() {
		return fmt.Errorf("%w: cannot record errors from %s", ErrIllegalTransition, w.status)
	}
	w.appendEvent(EventError, now, operator, notes)
	return nil
}

// TotalPlannedWeightLbs sums planned weight across all line items.
func (w *WorkOrder) TotalPlannedWeightLbs() float64 {
	var total float64
	for _, item := range w.lineItems {
		total += item.PlannedWeightLbs()
	}
	return total
}

// ProcessedWeightLbs sums production-scaled weight across all line items.
func (w *WorkOrder) ProcessedWeightLbs() float64 {
	var total float64
	for _, item := range w.lineItems {
		total += item.ProcessedWeightLbs()
	}
	return total
}

// UnallocatedResidualLbs sums the floored-off weight across all line items:
// weight the run holds against the coil without a whole piece to produce.
func (w *WorkOrder) UnallocatedResidualLbs() float64 {
	var total float64
	for _, item := range w.lineItems {
		total += item.ResidualWeightLbs()
	}
	return total
}

// ElapsedTime returns execution time accumulated while InProgress, including
// the open span when the work order is currently running.
func (w *WorkOrder) ElapsedTime(now time.Time) time.Duration {
	elapsed := w.accumulated
	if w.runningSince != nil && now.After(*w.runningSince) {
		elapsed += now.Sub(*w.runningSince)
	}
	return elapsed
}

func (w *WorkOrder) findLineItem(sequence int) (*LineItem, error) {
	for _, item := range w.lineItems {
		if item.Sequence() == sequence {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: sequence %d", ErrLineItemNotFound, sequence)
}

func (w *WorkOrder) closeExecutionSpan(now time.Time) {
	if w.runningSince != nil {
		if now.After(*w.runningSince) {
			w.accumulated += now.Sub(*w.runningSince)
		}
		w.runningSince = nil
	}
}

func (w *WorkOrder) appendEvent(eventType EventType, at time.Time, operator, notes string) {
	w.events = append(w.events, Event{Type: eventType, At: at, Operator: operator, Notes: notes})
}
