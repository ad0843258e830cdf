package cmd

import (
	"steelflow/internal/adapters/out/postgres"
	"steelflow/internal/adapters/out/postgres/catalogrepo"
	"steelflow/internal/core/application/usecases/commands"
	"steelflow/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalogs   *catalogrepo.GormCatalogRepository
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogs:   catalogrepo.NewGormCatalogRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(
		c.uowFactoryFull(), c.catalogs, c.catalogs, c.catalogs, c.catalogs)
}

func (c *CompositionRoot) CreateReallocateWorkOrderCommandHandler() commands.ReallocateWorkOrderCommandHandler {
	return commands.NewReallocateWorkOrderCommandHandler(
		c.uowFactoryFull(), c.catalogs, c.catalogs, c.catalogs, c.catalogs)
}

func (c *CompositionRoot) CreateScheduleWorkOrderCommandHandler() commands.ScheduleWorkOrderCommandHandler {
	return commands.NewScheduleWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateStartWorkOrderCommandHandler() commands.StartWorkOrderCommandHandler {
	return commands.NewStartWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreatePauseWorkOrderCommandHandler() commands.PauseWorkOrderCommandHandler {
	return commands.NewPauseWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateResumeWorkOrderCommandHandler() commands.ResumeWorkOrderCommandHandler {
	return commands.NewResumeWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteWorkOrderCommandHandler() commands.CompleteWorkOrderCommandHandler {
	return commands.NewCompleteWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateCancelWorkOrderCommandHandler() commands.CancelWorkOrderCommandHandler {
	return commands.NewCancelWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateAdjustLineItemCommandHandler() commands.AdjustLineItemCommandHandler {
	return commands.NewAdjustLineItemCommandHandler(c.workOrderUoWFactory(), c.catalogs)
}

func (c *CompositionRoot) CreateRecordProductionCommandHandler() commands.RecordProductionCommandHandler {
	return commands.NewRecordProductionCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateTrackExecutionCommandHandler() commands.TrackExecutionCommandHandler {
	return commands.NewTrackExecutionCommandHandler(c.workOrderUoWFactory(), c.catalogs)
}

func (c *CompositionRoot) CreateGetWorkOrderProgressQueryHandler() queries.GetWorkOrderProgressQueryHandler {
	return queries.NewGetWorkOrderProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveWorkOrdersQueryHandler() queries.GetActiveWorkOrdersQueryHandler {
	return queries.NewGetActiveWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) workOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFull() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
