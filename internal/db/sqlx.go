package db

import (
	"fmt"
	"time"

	"air/atlas/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	gormlib "gorm.io/gorm"
)

// InitSQLX returns the raw-SQL handle used by the reference repository.
// Postgres gets its own lib/pq pool; sqlite shares gorm's connection so
// in-memory databases stay visible to both.
func InitSQLX(cfg config.DatabaseConfig, orm *gormlib.DB) (*sqlx.DB, error) {
	switch cfg.Driver {
	case "postgres":
		var (
			conn *sqlx.DB
			err  error
		)
		for i := 0; i < 10; i++ {
			conn, err = sqlx.Connect("postgres", cfg.DSN)
			if err == nil {
				return conn, nil
			}
			time.Sleep(500 * time.Millisecond)
		}
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	case "sqlite":
		sqlDB, err := orm.DB()
		if err != nil {
			return nil, err
		}
		return sqlx.NewDb(sqlDB, "sqlite3"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
