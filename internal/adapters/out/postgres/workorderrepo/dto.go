// Package workorderrepo provides data transfer objects and mapping functions
// for work-order persistence. The aggregate spans three tables: the work
// order header, its line items, and the append-only event log.
package workorderrepo

import (
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for the work-order header.
// The version column backs optimistic concurrency: every update is guarded by
// the version the aggregate was read at.
type WorkOrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagNumber          string    `gorm:"index"`
	MachineID          uuid.UUID `gorm:"type:uuid;index"`
	CoilID             uuid.UUID `gorm:"type:uuid;index"`
	DueDate            time.Time
	Priority           int
	Status             int `gorm:"index"`
	Instructions       string
	Operator           string
	IsMultiWorkOrder   bool
	TotalWorkOrders    int
	WorkOrderSequence  int
	CreatedAt          time.Time
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	ActualStart        *time.Time
	ActualEnd          *time.Time
	ActualLbs          float64
	Version            int64
	AccumulatedSeconds int64
	RunningSince       *time.Time

	LineItems []LineItemDTO `gorm:"foreignKey:WorkOrderID"`
	Events    []EventDTO    `gorm:"foreignKey:WorkOrderID"`
}

// TableName specifies the database table name for work-order headers.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// LineItemDTO represents one allocated line item row. Sequence is unique per
// work order and forms the composite key.
type LineItemDTO struct {
	WorkOrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence           int       `gorm:"primaryKey"`
	SalesOrderID       uuid.UUID `gorm:"type:uuid;index"`
	OrderLineItemID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerName       string
	CustomerMaxSkidLbs float64
	UnitWeightLbs      float64
	PlannedQuantity    int
	PlannedWeightLbs   float64
	ResidualWeightLbs  float64
	ProcessedQuantity  int
	Status             int
	SplitReason        int
	ManuallyAdjusted   bool
}

// TableName specifies the database table name for work-order line items.
func (LineItemDTO) TableName() string {
	return "work_order_line_items"
}

// EventDTO represents one entry of the append-only event log. Seq is the
// event's position in the aggregate's log; rows are only ever inserted.
type EventDTO struct {
	WorkOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey"`
	Type        int
	At          time.Time
	Operator    string
	Notes       string
}

// TableName specifies the database table name for work-order events.
func (EventDTO) TableName() string {
	return "work_order_events"
}

// fromDomain converts a work-order aggregate to its database representation.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	id := aggregate.ID().Bytes()

	items := aggregate.LineItems()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			WorkOrderID:        id,
			Sequence:           item.Sequence(),
			SalesOrderID:       item.SalesOrderID().Bytes(),
			OrderLineItemID:    item.OrderLineItemID().Bytes(),
			CustomerName:       item.CustomerName(),
			CustomerMaxSkidLbs: item.CustomerMaxSkidLbs(),
			UnitWeightLbs:      item.UnitWeightLbs(),
			PlannedQuantity:    item.PlannedQuantity(),
			PlannedWeightLbs:   item.PlannedWeightLbs(),
			ResidualWeightLbs:  item.ResidualWeightLbs(),
			ProcessedQuantity:  item.ProcessedQuantity(),
			Status:             int(item.Status()),
			SplitReason:        int(item.SplitReason()),
			ManuallyAdjusted:   item.ManuallyAdjusted(),
		})
	}

	events := aggregate.Events()
	eventDTOs := make([]EventDTO, 0, len(events))
	for i, event := range events {
		eventDTOs = append(eventDTOs, EventDTO{
			WorkOrderID: id,
			Seq:         i + 1,
			Type:        int(event.Type),
			At:          event.At,
			Operator:    event.Operator,
			Notes:       event.Notes,
		})
	}

	return WorkOrderDTO{
		ID:                 id,
		TagNumber:          aggregate.TagNumber(),
		MachineID:          aggregate.MachineID().Bytes(),
		CoilID:             aggregate.CoilID().Bytes(),
		DueDate:            aggregate.DueDate(),
		Priority:           aggregate.Priority(),
		Status:             int(aggregate.Status()),
		Instructions:       aggregate.Instructions(),
		Operator:           aggregate.Operator(),
		IsMultiWorkOrder:   aggregate.IsMultiWorkOrder(),
		TotalWorkOrders:    aggregate.TotalWorkOrders(),
		WorkOrderSequence:  aggregate.WorkOrderSequence(),
		CreatedAt:          aggregate.CreatedAt(),
		ScheduledStart:     aggregate.ScheduledStart(),
		ScheduledEnd:       aggregate.ScheduledEnd(),
		ActualStart:        aggregate.ActualStart(),
		ActualEnd:          aggregate.ActualEnd(),
		ActualLbs:          aggregate.ActualLbs(),
		Version:            aggregate.Version(),
		AccumulatedSeconds: aggregate.AccumulatedSeconds(),
		RunningSince:       aggregate.RunningSince(),
		LineItems:          itemDTOs,
		Events:             eventDTOs,
	}
}

// toDomain converts database rows back to a work-order aggregate.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	machineID, err := kernel.UUIDFromBytes(dto.MachineID[:])
	if err != nil {
		return nil, err
	}
	coilID, err := kernel.UUIDFromBytes(dto.CoilID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*workorder.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	events := make([]workorder.Event, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		events = append(events, workorder.Event{
			Type:     workorder.EventType(eventDTO.Type),
			At:       eventDTO.At,
			Operator: eventDTO.Operator,
			Notes:    eventDTO.Notes,
		})
	}

	return workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:                 id,
		TagNumber:          dto.TagNumber,
		MachineID:          machineID,
		CoilID:             coilID,
		DueDate:            dto.DueDate,
		Priority:           dto.Priority,
		Status:             workorder.Status(dto.Status),
		Instructions:       dto.Instructions,
		Operator:           dto.Operator,
		LineItems:          items,
		IsMultiWorkOrder:   dto.IsMultiWorkOrder,
		TotalWorkOrders:    dto.TotalWorkOrders,
		WorkOrderSequence:  dto.WorkOrderSequence,
		CreatedAt:          dto.CreatedAt,
		ScheduledStart:     dto.ScheduledStart,
		ScheduledEnd:       dto.ScheduledEnd,
		ActualStart:        dto.ActualStart,
		ActualEnd:          dto.ActualEnd,
		ActualLbs:          dto.ActualLbs,
		Events:             events,
		Version:            dto.Version,
		AccumulatedSeconds: dto.AccumulatedSeconds,
		RunningSince:       dto.RunningSince,
	})
}

func lineItemToDomain(dto LineItemDTO) (*workorder.LineItem, error) {
	salesOrderID, err := kernel.UUIDFromBytes(dto.SalesOrderID[:])
	if err != nil {
		return nil, err
	}
	orderLineItemID, err := kernel.UUIDFromBytes(dto.OrderLineItemID[:])
	if err != nil {
		return nil, err
	}

	return workorder.RestoreLineItem(
		salesOrderID, orderLineItemID,
		dto.CustomerName, dto.CustomerMaxSkidLbs, dto.UnitWeightLbs,
		dto.PlannedQuantity, dto.PlannedWeightLbs, dto.ResidualWeightLbs,
		dto.ProcessedQuantity,
		workorder.LineItemStatus(dto.Status),
		workorder.SplitReason(dto.SplitReason),
		dto.ManuallyAdjusted,
		dto.Sequence,
	)
}
