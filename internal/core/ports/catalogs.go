package ports

import (
	"context"

	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/kernel"
)

// MachineCatalog supplies machine reference data. Read-only; machines are
// administered outside this system.
type MachineCatalog interface {
	// GetMachine retrieves a machine by its unique identifier.
	// Returns an object-not-found error for an unknown machine.
	GetMachine(ctx context.Context, id kernel.UUID) (catalog.Machine, error)
}

// CustomerDirectory supplies customer reference data. A failed lookup is a
// documented fallback for capacity resolution, not a fatal error.
type CustomerDirectory interface {
	// GetCustomer retrieves a customer by its unique identifier.
	GetCustomer(ctx context.Context, id kernel.UUID) (catalog.Customer, error)
}

// SalesOrderCatalog supplies open customer order demand.
type SalesOrderCatalog interface {
	// FindOpen retrieves sales orders that still carry open line items,
	// in the catalog's stable iteration order.
	FindOpen(ctx context.Context) ([]catalog.SalesOrder, error)

	// GetLineItem retrieves one order line item together with its owning
	// sales order. Used to re-derive the fixed unit weight for manual edits.
	GetLineItem(ctx context.Context, id kernel.UUID) (catalog.SalesOrder, catalog.OrderLineItem, error)
}

// CapabilityCatalog derives which item codes a coil can produce. Backing data
// is the child-item specification list, each entry tagged with the coil ids
// that can produce it.
type CapabilityCatalog interface {
	// ProducibleItemCodes returns the set of item codes producible from
	// the given coil. An empty set is a valid answer, not an error.
	ProducibleItemCodes(ctx context.Context, coilID kernel.UUID) (map[string]struct{}, error)
}
