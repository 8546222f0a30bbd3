package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"rugops/internal/adapters/out/postgres"
	"rugops/internal/core/application/usecases/commands"
	"rugops/internal/core/application/usecases/queries"
	"rugops/internal/core/domain/services"
	"rugops/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderContactCommandHandler() commands.UpdateOrderContactCommandHandler {
	return commands.NewUpdateOrderContactCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemDetailsCommandHandler() commands.UpdateItemDetailsCommandHandler {
	return commands.NewUpdateItemDetailsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetRepairEstimateCommandHandler() commands.SetRepairEstimateCommandHandler {
	return commands.NewSetRepairEstimateCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFlagItemRepairCommandHandler() commands.FlagItemRepairCommandHandler {
	return commands.NewFlagItemRepairCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkItemReadyCommandHandler() commands.MarkItemReadyCommandHandler {
	return commands.NewMarkItemReadyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkItemDeliveredCommandHandler() commands.MarkItemDeliveredCommandHandler {
	return commands.NewMarkItemDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetApprovalRequirementCommandHandler() commands.SetApprovalRequirementCommandHandler {
	return commands.NewSetApprovalRequirementCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDecideApprovalCommandHandler() commands.DecideApprovalCommandHandler {
	return commands.NewDecideApprovalCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeOrdersCommandHandler() commands.PurgeOrdersCommandHandler {
	return commands.NewPurgeOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMigrateOrdersCommandHandler() commands.MigrateOrdersCommandHandler {
	return commands.NewMigrateOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryReadyOrdersQueryHandler() queries.GetDeliveryReadyOrdersQueryHandler {
	return queries.NewGetDeliveryReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextOrderIDQueryHandler() queries.GetNextOrderIDQueryHandler {
	return queries.NewGetNextOrderIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingApprovalOrdersQueryHandler() queries.GetPendingApprovalOrdersQueryHandler {
	return queries.NewGetPendingApprovalOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlanRouteQueryHandler() queries.PlanRouteQueryHandler {
	// Planning reads through the repository outside any transaction.
	orderRepo := c.uowFactory.Create().OrderRepository()
	return queries.NewPlanRouteQueryHandler(orderRepo, services.NewRoutePlanner())
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPendingApprovalOrdersQueryHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
