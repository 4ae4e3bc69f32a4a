package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/geo"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/rates"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateOptimizeFulfillmentCommandHandler() commands.OptimizeFulfillmentCommandHandler {
	var f commands.PlanUoWFactory = FuncPlanUoWFactory(func() commands.PlanUoW {
		return c.uowFactory.Create()
	})

	shippingCatalog := services.NewShippingCatalog(
		geo.NewStaticDistanceEstimator(),
		rates.NewStaticRateTable(),
	)

	return commands.NewOptimizeFulfillmentCommandHandler(shippingCatalog, f, c.logger)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOverdueShipmentsCommandHandler() commands.MarkOverdueShipmentsCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOverdueShipmentsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetPlanQueryHandler() queries.GetPlanQueryHandler {
	return queries.NewGetPlanQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredShipmentsQueryHandler() queries.GetUndeliveredShipmentsQueryHandler {
	return queries.NewGetUndeliveredShipmentsQueryHandler(c.gormDB)
}

type FuncPlanUoWFactory func() commands.PlanUoW

func (f FuncPlanUoWFactory) Create() commands.PlanUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
