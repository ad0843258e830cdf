package commands_test

import (
	"context"

	"steelflow/internal/core/application/usecases/commands"
	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/coil"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, w *workorder.WorkOrder) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, w *workorder.WorkOrder) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllActive(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllInProgress(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

type MockCoilRepository struct{ mock.Mock }

func (m *MockCoilRepository) Get(ctx context.Context, id kernel.UUID) (*coil.Coil, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coil.Coil), args.Error(1)
}

func (m *MockCoilRepository) GetByTag(ctx context.Context, tagNumber string) (*coil.Coil, error) {
	args := m.Called(ctx, tagNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coil.Coil), args.Error(1)
}

func (m *MockCoilRepository) Update(ctx context.Context, c *coil.Coil) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) CoilRepository() ports.CoilRepository {
	args := m.Called()
	return args.Get(0).(ports.CoilRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockMachineCatalog struct{ mock.Mock }

func (m *MockMachineCatalog) GetMachine(ctx context.Context, id kernel.UUID) (catalog.Machine, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Machine), args.Error(1)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) GetCustomer(ctx context.Context, id kernel.UUID) (catalog.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Customer), args.Error(1)
}

type MockSalesOrderCatalog struct{ mock.Mock }

func (m *MockSalesOrderCatalog) FindOpen(ctx context.Context) ([]catalog.SalesOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderCatalog) GetLineItem(
	ctx context.Context,
	id kernel.UUID,
) (catalog.SalesOrder, catalog.OrderLineItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.SalesOrder), args.Get(1).(catalog.OrderLineItem), args.Error(2)
}

type MockCapabilityCatalog struct{ mock.Mock }

func (m *MockCapabilityCatalog) ProducibleItemCodes(
	ctx context.Context,
	coilID kernel.UUID,
) (map[string]struct{}, error) {
	args := m.Called(ctx, coilID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}
