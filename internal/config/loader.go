package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads the YAML file at path and applies APP_* environment overrides
// (APP_POSTGRES_PASSWORD overrides postgres.password, and so on).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	setDefaults(v)

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the sections that are in use; driver-specific sections are
// only required for the selected driver.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c.App); err != nil {
		return fmt.Errorf("invalid app config: %w", err)
	}
	if err := v.Struct(c.Source); err != nil {
		return fmt.Errorf("invalid source config: %w", err)
	}
	switch c.Source.Driver {
	case DriverPostgres:
		if err := v.Struct(c.Postgres); err != nil {
			return fmt.Errorf("invalid postgres config: %w", err)
		}
	case DriverSQLite:
		if err := v.Struct(c.SQLite); err != nil {
			return fmt.Errorf("invalid sqlite config: %w", err)
		}
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal,
// even when the YAML file leaves it out.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "customers-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.read_timeout", "5s")
	v.SetDefault("app.write_timeout", "10s")
	v.SetDefault("app.shutdown_timeout", "10s")

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.env", "")

	v.SetDefault("source.driver", DriverMemory)
	v.SetDefault("source.memory_path", "")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)

	v.SetDefault("sqlite.path", "data/customers.db")
	v.SetDefault("sqlite.seed_if_empty", true)
}
