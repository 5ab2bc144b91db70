package db

import (
	"fmt"

	"air/atlas/internal/config"
	"air/atlas/internal/logging"
	"air/atlas/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitORM opens the configured database through gorm.
func InitORM(cfg config.DatabaseConfig) (*gormlib.DB, error) {
	var dialector gormlib.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	orm, err := gormlib.Open(dialector, &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		// one writer keeps sqlite from returning SQLITE_BUSY under the refresh pool
		sqlDB, err := orm.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	logging.Info("Connected to database via GORM", "driver", cfg.Driver)
	return orm, nil
}

// Migrate creates or updates the flight_ids and flight_paths tables.
func Migrate(orm *gormlib.DB) error {
	if err := orm.AutoMigrate(&gorm.FlightReference{}, &gorm.FlightPath{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
