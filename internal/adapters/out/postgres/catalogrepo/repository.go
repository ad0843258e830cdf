package catalogrepo

import (
	"context"
	"errors"

	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements the reference-data ports (MachineCatalog,
// CustomerDirectory, SalesOrderCatalog, CapabilityCatalog) over one GORM
// connection. All operations are reads.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetMachine retrieves a machine by ID.
func (r *GormCatalogRepository) GetMachine(ctx context.Context, id kernel.UUID) (catalog.Machine, error) {
	if err := id.Validate(); err != nil {
		return catalog.Machine{}, err
	}

	var dto MachineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Machine{}, errs.NewObjectNotFoundError("machine", id.String())
		}
		return catalog.Machine{}, err
	}

	return machineToDomain(dto)
}

// GetCustomer retrieves a customer by ID.
func (r *GormCatalogRepository) GetCustomer(ctx context.Context, id kernel.UUID) (catalog.Customer, error) {
	if err := id.Validate(); err != nil {
		return catalog.Customer{}, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Customer{}, errs.NewObjectNotFoundError("customer", id.String())
		}
		return catalog.Customer{}, err
	}

	return customerToDomain(dto)
}

// FindOpen retrieves sales orders that still carry open line items. Orders
// and their line items come back in stable positions so repeated allocation
// runs walk the book in the same sequence.
func (r *GormCatalogRepository) FindOpen(ctx context.Context) ([]catalog.SalesOrder, error) {
	var dtos []SalesOrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("remaining_weight_lbs > 0").Order("position")
		}).
		Where("id IN (?)", r.db.Model(&OrderLineItemDTO{}).
			Select("sales_order_id").
			Where("remaining_weight_lbs > 0")).
		Order("priority DESC, due_date, number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]catalog.SalesOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, domainErr := salesOrderToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// GetLineItem retrieves one order line item with its owning sales order.
func (r *GormCatalogRepository) GetLineItem(
	ctx context.Context,
	id kernel.UUID,
) (catalog.SalesOrder, catalog.OrderLineItem, error) {
	if err := id.Validate(); err != nil {
		return catalog.SalesOrder{}, catalog.OrderLineItem{}, err
	}

	var itemDTO OrderLineItemDTO
	if err := r.db.WithContext(ctx).First(&itemDTO, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.SalesOrder{}, catalog.OrderLineItem{},
				errs.NewObjectNotFoundError("orderLineItem", id.String())
		}
		return catalog.SalesOrder{}, catalog.OrderLineItem{}, err
	}

	var orderDTO SalesOrderDTO
	if err := r.db.WithContext(ctx).First(&orderDTO, "id = ?", itemDTO.SalesOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.SalesOrder{}, catalog.OrderLineItem{},
				errs.NewObjectNotFoundError("salesOrder", itemDTO.SalesOrderID.String())
		}
		return catalog.SalesOrder{}, catalog.OrderLineItem{}, err
	}

	order, err := salesOrderToDomain(orderDTO)
	if err != nil {
		return catalog.SalesOrder{}, catalog.OrderLineItem{}, err
	}
	item, err := orderLineItemToDomain(itemDTO)
	if err != nil {
		return catalog.SalesOrder{}, catalog.OrderLineItem{}, err
	}

	return order, item, nil
}

// ProducibleItemCodes returns the set of item codes producible from a coil.
func (r *GormCatalogRepository) ProducibleItemCodes(
	ctx context.Context,
	coilID kernel.UUID,
) (map[string]struct{}, error) {
	if err := coilID.Validate(); err != nil {
		return nil, err
	}

	var codes []string
	err := r.db.WithContext(ctx).
		Model(&CapabilityDTO{}).
		Where("coil_id = ?", coilID.Bytes()).
		Pluck("item_code", &codes).Error
	if err != nil {
		return nil, err
	}

	producible := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		producible[code] = struct{}{}
	}

	return producible, nil
}
