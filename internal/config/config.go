package config

import (
	"time"

	"github.com/maxviazov/customers-service/internal/logger"
)

// Source drivers understood by the application.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Source   SourceConfig        `mapstructure:"source"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	SQLite   SQLiteConfig        `mapstructure:"sqlite"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SourceConfig selects where the customer collection comes from.
type SourceConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory postgres sqlite"`
	// MemoryPath is a JSON file for the memory driver; empty means the bundled dataset.
	MemoryPath string `mapstructure:"memory_path"`
}

// PostgresConfig secrets (user, password, db) are expected from APP_POSTGRES_* env.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=1"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0,ltefield=MaxConns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	// SeedIfEmpty imports the bundled dataset into a database with no rows.
	SeedIfEmpty bool `mapstructure:"seed_if_empty"`
}
