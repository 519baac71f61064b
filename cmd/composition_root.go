package cmd

import (
	"log/slog"
	"time"

	"workorder/internal/adapters/out/postgres"
	"workorder/internal/adapters/out/pricecatalog"
	"workorder/internal/core/application/session"
	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/application/usecases/queries"
	"workorder/internal/core/domain/model/pricelist"
	"workorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *pricecatalog.CachedCatalog
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	client, err := pricecatalog.NewClient(configs.PriceCatalogBaseURL, parseTimeout(configs.PriceCatalogTimeout))
	if err != nil {
		return CompositionRoot{}, err
	}

	catalog, err := pricecatalog.NewCachedCatalog(client, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		logger:     logger,
	}, nil
}

func parseTimeout(raw string) time.Duration {
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return timeout
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateWorkOrderCommandHandler() commands.UpdateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeWorkOrderStatusCommandHandler() commands.ChangeWorkOrderStatusCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeWorkOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateArchiveWorkOrderCommandHandler() commands.ArchiveWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveTimeEntriesCommandHandler() commands.SaveTimeEntriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveTimeEntriesCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveMaterialEntriesCommandHandler() commands.SaveMaterialEntriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveMaterialEntriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllWorkOrdersQueryHandler() queries.GetAllWorkOrdersQueryHandler {
	return queries.NewGetAllWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkshopOrdersQueryHandler() queries.GetWorkshopOrdersQueryHandler {
	return queries.NewGetWorkshopOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTimeEntriesQueryHandler() queries.GetTimeEntriesQueryHandler {
	return queries.NewGetTimeEntriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMaterialEntriesQueryHandler() queries.GetMaterialEntriesQueryHandler {
	return queries.NewGetMaterialEntriesQueryHandler(c.gormDB)
}

// PriceCatalog returns the shared cached catalog.
func (c *CompositionRoot) PriceCatalog() *pricecatalog.CachedCatalog {
	return c.catalog
}

// CreateEditSession produces an editing session for one work order's line
// items. Each open editor gets its own session.
func (c *CompositionRoot) CreateEditSession() (*session.EditSession, error) {
	return session.NewEditSession(c.uowFactory)
}

// CreateMaterialLookup produces the debounced article-key search for an
// editing session. onSuggestions presents the suggestion list for a row.
func (c *CompositionRoot) CreateMaterialLookup(
	editSession *session.EditSession,
	onSuggestions func(row int, suggestions []pricelist.Entry),
) (*session.MaterialLookup, error) {
	return session.NewMaterialLookup(editSession, c.catalog, session.DefaultLookupDelay, c.logger, onSuggestions)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(refreshSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.catalog, refreshSchedule, c.logger)
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
