package cmd

import (
	"log/slog"

	httpadapter "valueguard/internal/adapters/in/http"
	"valueguard/internal/adapters/out/postgres"
	"valueguard/internal/adapters/out/runtimecleanup"
	"valueguard/internal/core/application/usecases/commands"
	"valueguard/internal/core/application/usecases/queries"
	"valueguard/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config          Config
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	cleanupRegistry *runtimecleanup.Registry
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		cleanupRegistry: runtimecleanup.NewRegistry(logger),
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateCreateHolderCommandHandler() commands.CreateHolderCommandHandler {
	return commands.NewCreateHolderCommandHandler(c.holderUoWFactory(), c.cleanupRegistry)
}

func (c *CompositionRoot) CreatePurgeHoldersCommandHandler() commands.PurgeHoldersCommandHandler {
	return commands.NewPurgeHoldersCommandHandler(c.holderUoWFactory())
}

func (c *CompositionRoot) CreateGetHolderQueryHandler() queries.GetHolderQueryHandler {
	return queries.NewGetHolderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllHoldersQueryHandler() queries.GetAllHoldersQueryHandler {
	return queries.NewGetAllHoldersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	createHolderHandler := c.CreateCreateHolderCommandHandler()
	return httpadapter.NewServer(
		&createHolderHandler,
		c.CreateGetHolderQueryHandler(),
		c.CreateGetAllHoldersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purgeHandler := c.CreatePurgeHoldersCommandHandler()
	return jobs.NewJobManager(&purgeHandler, c.config.PurgeSchedule, c.config.HolderRetention, c.logger)
}

// CleanupRegistry exposes the registry so callers can report its counters.
func (c *CompositionRoot) CleanupRegistry() *runtimecleanup.Registry {
	return c.cleanupRegistry
}

func (c *CompositionRoot) holderUoWFactory() commands.HolderUoWFactory {
	return FuncHolderUoWFactory(func() commands.HolderUoW {
		return c.uowFactory.Create()
	})
}

type FuncHolderUoWFactory func() commands.HolderUoW

func (f FuncHolderUoWFactory) Create() commands.HolderUoW {
	return f()
}
