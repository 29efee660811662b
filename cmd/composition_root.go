package cmd

import (
	"log/slog"

	api "governance/internal/adapters/in/http"
	"governance/internal/adapters/out/postgres"
	"governance/internal/adapters/out/postgres/governancerepo"
	"governance/internal/core/application/usecases/commands"
	"governance/internal/core/application/usecases/queries"
	"governance/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeWorkOrderStatusCommandHandler() commands.ChangeWorkOrderStatusCommandHandler {
	return commands.NewChangeWorkOrderStatusCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetOverloadedAssigneesQueryHandler() queries.GetOverloadedAssigneesQueryHandler {
	return queries.NewGetOverloadedAssigneesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGovernanceReader() *governancerepo.GormGovernanceReader {
	return governancerepo.NewGormGovernanceReader(c.gormDB)
}

// CreateServer wires the handlers that run behind the governor.
func (c *CompositionRoot) CreateServer() *api.Server {
	return api.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCreateWorkOrderCommandHandler(),
		c.CreateChangeWorkOrderStatusCommandHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverloadedAssigneesQueryHandler(), c.cfg.WorkloadAuditSchedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}
