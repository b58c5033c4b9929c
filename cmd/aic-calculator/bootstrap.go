package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/Halasue/endfield-aic-calculator/internal/adapters/cli"
	"github.com/Halasue/endfield-aic-calculator/internal/adapters/dataset"
	"github.com/Halasue/endfield-aic-calculator/internal/adapters/logging"
	"github.com/Halasue/endfield-aic-calculator/internal/adapters/metrics"
	"github.com/Halasue/endfield-aic-calculator/internal/adapters/persistence"
	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/commands"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/queries"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/services"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/internal/infrastructure/config"
	"github.com/Halasue/endfield-aic-calculator/internal/infrastructure/database"
)

// bootstrap loads configuration and wires handlers for one CLI invocation
func bootstrap(ctx context.Context, configPath string) (*cli.Runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLoggerFromConfig(&cfg.Logging)
	if err != nil {
		return nil, err
	}

	mediator := common.NewMediator()
	mediator.Use(common.LoggingMiddleware)

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		productionCollector := metrics.NewProductionMetricsCollector()
		if err := productionCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register production metrics: %w", err)
		}
		metrics.SetGlobalProductionCollector(productionCollector)

		requestCollector := metrics.NewRequestMetricsCollector()
		if err := requestCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register request metrics: %w", err)
		}
		mediator.Use(metrics.PrometheusMiddleware(requestCollector))
	}

	store := &lazyCatalogStore{cfg: &cfg.Database}

	var source production.DatasetSource
	switch cfg.Catalog.Source {
	case config.CatalogSourceDatabase:
		source = store
	default:
		source = dataset.NewFileSource(cfg.Catalog.Path)
	}
	catalogs := services.NewCatalogLoader(source)

	registrations := []error{
		common.RegisterHandler[*queries.CalculateProductionTreeQuery](mediator, queries.NewCalculateProductionTreeHandler(catalogs)),
		common.RegisterHandler[*queries.ListItemsQuery](mediator, queries.NewListItemsHandler(catalogs)),
		common.RegisterHandler[*queries.GetItemQuery](mediator, queries.NewGetItemHandler(catalogs)),
		common.RegisterHandler[*commands.ImportCatalogCommand](mediator, commands.NewImportCatalogHandler(dataset.NewReader(), store)),
	}
	if err := errors.Join(registrations...); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return &cli.Runtime{
		Config:   cfg,
		Mediator: mediator,
		Logger:   logger,
		Close: func() error {
			var errs []error
			if cfg.Metrics.Enabled {
				if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
					errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
				}
			}
			errs = append(errs, store.Close(), logger.Close())
			return errors.Join(errs...)
		},
	}, nil
}

// lazyCatalogStore opens the database on first use, so runs that read the catalog
// from a file never touch it
type lazyCatalogStore struct {
	cfg *config.DatabaseConfig

	once sync.Once
	db   *gorm.DB
	repo *persistence.GormCatalogRepository
	err  error
}

func (s *lazyCatalogStore) open() (*persistence.GormCatalogRepository, error) {
	s.once.Do(func() {
		db, err := database.NewConnection(s.cfg)
		if err != nil {
			s.err = fmt.Errorf("failed to connect to catalog store %s: %w", s.cfg.Target(), err)
			return
		}
		if err := database.AutoMigrate(db); err != nil {
			database.Close(db)
			s.err = fmt.Errorf("failed to migrate catalog store %s: %w", s.cfg.Target(), err)
			return
		}
		s.db = db
		s.repo = persistence.NewGormCatalogRepository(db)
	})
	return s.repo, s.err
}

func (s *lazyCatalogStore) Load(ctx context.Context) (*production.Dataset, error) {
	repo, err := s.open()
	if err != nil {
		return nil, err
	}
	return repo.Load(ctx)
}

func (s *lazyCatalogStore) Save(ctx context.Context, dataset *production.Dataset) error {
	repo, err := s.open()
	if err != nil {
		return err
	}
	return repo.Save(ctx, dataset)
}

func (s *lazyCatalogStore) Close() error {
	if s.db == nil {
		return nil
	}
	return database.Close(s.db)
}
