package api

import (
	"context"
	"fmt"

	"air/atlas/internal/common"
	"air/atlas/internal/config"
	"air/atlas/internal/db"
	"air/atlas/internal/db/repositories"
	"air/atlas/internal/metrics"
	"air/atlas/internal/providers"
	"air/atlas/internal/services"
	"air/atlas/internal/workers"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	FlightRefs  *repositories.FlightReferenceRepository
	FlightPaths *repositories.FlightPathRepository
}

type Services struct {
	Cache        common.CacheInterface
	FlightAware  *providers.FlightAwareProvider
	OpenFlights  *providers.OpenFlightsProvider
	Airports     *services.AirportService
	FlightPaths  *services.FlightPathService
	Registration *services.RegistrationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Workers  *workers.WorkersContainer
	Health   map[string]Pinger

	orm   *gorm.DB
	sqlDB *sqlx.DB
}

// InitDependencies opens storage, builds providers and services, and starts
// the background workers under ctx.
func InitDependencies(ctx context.Context, cfg *config.Config, metricsReg *metrics.MetricsRegistry) (_ *Dependencies, err error) {
	orm, err := db.InitORM(cfg.Database)
	if err != nil {
		return nil, err
	}
	var sqlDB *sqlx.DB
	defer func() {
		if err != nil {
			closeStorage(orm, sqlDB)
		}
	}()

	if err = db.Migrate(orm); err != nil {
		return nil, err
	}
	sqlDB, err = db.InitSQLX(cfg.Database, orm)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{
		FlightRefs:  repositories.NewFlightReferenceRepository(sqlDB),
		FlightPaths: repositories.NewFlightPathRepository(orm),
	}

	health := map[string]Pinger{"database": repos.FlightRefs}

	var cache common.CacheInterface
	switch cfg.Cache.Backend {
	case "redis":
		rc := common.NewRedisCacheService(common.NewRedisClient(cfg.Redis))
		health["redis"] = rc
		cache = rc
	case "memory":
		cache = common.NewCacheService(cfg.Cache.AirportTTL, 10*cfg.Cache.AirportTTL)
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Cache.Backend)
	}

	fa := providers.NewFlightAwareProvider(cfg.FlightAware, metricsReg)
	of := providers.NewOpenFlightsProvider(cfg.OpenFlights, metricsReg)
	airports := services.NewAirportService(of, cache, cfg.Cache.AirportTTL, metricsReg)

	svcs := &Services{
		Cache:        cache,
		FlightAware:  fa,
		OpenFlights:  of,
		Airports:     airports,
		FlightPaths:  services.NewFlightPathService(repos.FlightRefs, repos.FlightPaths, fa, airports, metricsReg),
		Registration: services.NewRegistrationService(repos.FlightRefs, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Workers:  workers.InitWorkers(ctx, cfg.Refresh, svcs.FlightPaths, repos.FlightPaths, metricsReg),
		Health:   health,
		orm:      orm,
		sqlDB:    sqlDB,
	}, nil
}

// Close stops intake on the refresh queue and releases connections.
func (d *Dependencies) Close() error {
	d.Workers.Refresh.Close()
	cacheErr := d.Services.Cache.Close()
	if err := closeStorage(d.orm, d.sqlDB); err != nil {
		return err
	}
	return cacheErr
}

// closeStorage closes the sqlx handle and gorm's pool. With sqlite they
// share one *sql.DB, which is closed once.
func closeStorage(orm *gorm.DB, sqlDB *sqlx.DB) error {
	var sqlErr error
	if sqlDB != nil {
		sqlErr = sqlDB.Close()
	}
	if ormDB, err := orm.DB(); err == nil && (sqlDB == nil || ormDB != sqlDB.DB) {
		if err := ormDB.Close(); err != nil {
			return err
		}
	}
	return sqlErr
}
