// Package catalogrepo provides read-only access to the reference data the
// allocation engine draws from: machines, customers, the open order book,
// and the producible-from capability list. These tables are administered by
// the surrounding warehouse system; this adapter never writes them.
package catalogrepo

import (
	"time"

	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MachineDTO represents a production machine reference row.
type MachineDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	Category             string `gorm:"index"`
	IsActive             bool
	ThroughputLbsPerHour float64
	MaxSkidCapacityLbs   float64
}

// TableName specifies the database table name for machines.
func (MachineDTO) TableName() string {
	return "machines"
}

// CustomerDTO represents a customer reference row.
type CustomerDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string
	MaxSkidCapacityLbs  float64
	DeliveryWindow      string
	SpecialInstructions string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// SalesOrderDTO represents a sales order header row.
type SalesOrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number     string    `gorm:"index"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	DueDate    time.Time
	Priority   int

	LineItems []OrderLineItemDTO `gorm:"foreignKey:SalesOrderID"`
}

// TableName specifies the database table name for sales orders.
func (SalesOrderDTO) TableName() string {
	return "sales_orders"
}

// OrderLineItemDTO represents one demand line on a sales order.
type OrderLineItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	SalesOrderID       uuid.UUID `gorm:"type:uuid;index"`
	Position           int
	ItemCode           string `gorm:"index"`
	ItemID             string `gorm:"index"`
	Description        string
	OrderedQuantity    int
	OrderedWeightLbs   float64
	RemainingQuantity  int
	RemainingWeightLbs float64
	WidthIn            float64
	LengthIn           float64
	GaugeIn            float64
}

// TableName specifies the database table name for order line items.
func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

// CapabilityDTO links an item code to a coil that can produce it.
type CapabilityDTO struct {
	ItemCode string    `gorm:"primaryKey"`
	CoilID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for item capabilities.
func (CapabilityDTO) TableName() string {
	return "item_capabilities"
}

func machineToDomain(dto MachineDTO) (catalog.Machine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Machine{}, err
	}

	category, err := catalog.ParseMachineCategory(dto.Category)
	if err != nil {
		return catalog.Machine{}, err
	}

	return catalog.Machine{
		ID:                   id,
		Name:                 dto.Name,
		Category:             category,
		IsActive:             dto.IsActive,
		ThroughputLbsPerHour: dto.ThroughputLbsPerHour,
		MaxSkidCapacityLbs:   dto.MaxSkidCapacityLbs,
	}, nil
}

func customerToDomain(dto CustomerDTO) (catalog.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Customer{}, err
	}

	return catalog.Customer{
		ID:                  id,
		Name:                dto.Name,
		MaxSkidCapacityLbs:  dto.MaxSkidCapacityLbs,
		DeliveryWindow:      dto.DeliveryWindow,
		SpecialInstructions: dto.SpecialInstructions,
	}, nil
}

func salesOrderToDomain(dto SalesOrderDTO) (catalog.SalesOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.SalesOrder{}, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return catalog.SalesOrder{}, err
	}

	items := make([]catalog.OrderLineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := orderLineItemToDomain(itemDTO)
		if itemErr != nil {
			return catalog.SalesOrder{}, itemErr
		}
		items = append(items, item)
	}

	return catalog.SalesOrder{
		ID:         id,
		Number:     dto.Number,
		CustomerID: customerID,
		DueDate:    dto.DueDate,
		Priority:   dto.Priority,
		LineItems:  items,
	}, nil
}

func orderLineItemToDomain(dto OrderLineItemDTO) (catalog.OrderLineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.OrderLineItem{}, err
	}

	return catalog.OrderLineItem{
		ID:                 id,
		ItemCode:           dto.ItemCode,
		ItemID:             dto.ItemID,
		Description:        dto.Description,
		OrderedQuantity:    dto.OrderedQuantity,
		OrderedWeightLbs:   dto.OrderedWeightLbs,
		RemainingQuantity:  dto.RemainingQuantity,
		RemainingWeightLbs: dto.RemainingWeightLbs,
		WidthIn:            dto.WidthIn,
		LengthIn:           dto.LengthIn,
		GaugeIn:            dto.GaugeIn,
	}, nil
}
