// Package database opens and manages the GORM connection used by the
// user, blog, and comment stores. Driver selection is config-driven:
// postgres in production, sqlite for development and tests.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trendtrails/server/internal/logger"
)

// Config holds database connection settings.
type Config struct {
	// Driver is "postgres" or "sqlite" (default: sqlite).
	Driver string `mapstructure:"driver"`

	// DSN is the driver-specific connection string.
	DSN string `mapstructure:"dsn"`

	// MaxOpenConns caps the connection pool (default: 10).
	MaxOpenConns int `mapstructure:"max_open_conns"`

	// MaxIdleConns caps idle pooled connections (default: 5).
	MaxIdleConns int `mapstructure:"max_idle_conns"`

	// ConnMaxLifetime bounds connection reuse (default: 30m).
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Driver == "" {
		c.Driver = "sqlite"
	}
	if c.DSN == "" && c.Driver == "sqlite" {
		c.DSN = "trendtrails.db"
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 10
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = 30 * time.Minute
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite (got: %s)", c.Driver)
	}
	if c.DSN == "" {
		return fmt.Errorf("database.dsn is required for driver %s", c.Driver)
	}
	return nil
}

// DB wraps the GORM handle.
type DB struct {
	Gorm *gorm.DB
	log  *logger.Logger
}

// Open connects to the configured database and configures the pool.
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey across drivers.
func Open(cfg Config, log *logger.Logger) (*DB, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		dialector = sqlite.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: underlying handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.WithComponent("database").Info("Database connection established", map[string]interface{}{
		"driver": cfg.Driver,
	})
	return &DB{Gorm: db, log: log.WithComponent("database")}, nil
}

// AutoMigrate creates or updates the schema for the given models.
func (d *DB) AutoMigrate(models ...interface{}) error {
	if err := d.Gorm.AutoMigrate(models...); err != nil {
		return fmt.Errorf("database: auto-migrate: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the connection is alive.
func (d *DB) Ping() error {
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
