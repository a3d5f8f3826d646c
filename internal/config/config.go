// Package config loads the cardorm configuration from cardorm.yaml, the
// environment and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/syssam/cardorm/dialect"
)

const maxWalkDepth = 25

// Config represents the configuration from cardorm.yaml.
type Config struct {
	// Schema is the path of the key set registry file.
	Schema string `mapstructure:"schema"`

	Database DatabaseConfig `mapstructure:"database"`
	Query    QueryConfig    `mapstructure:"query"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Dialect string `mapstructure:"dialect"`
	// Driver is the database/sql driver name. Empty selects the default
	// driver of the dialect.
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// QueryConfig holds query execution settings.
type QueryConfig struct {
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load discovers and loads configuration with precedence
// env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func Load(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CARDORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schema", "schema.yaml")

	v.SetDefault("database.dialect", dialect.SQLite)
	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")

	v.SetDefault("query.slow_threshold", 100*time.Millisecond)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// findConfigFile returns explicitPath if it exists. Otherwise it walks up
// from cwd looking for cardorm.yaml or cardorm.yml, stopping at a .git
// directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}
	dir := cwd
	for range maxWalkDepth {
		for _, name := range []string{"cardorm.yaml", "cardorm.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// DriverName returns the database/sql driver to open.
func (c *Config) DriverName() string {
	if c.Database.Driver != "" {
		return c.Database.Driver
	}
	return c.Database.Dialect
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Dialect {
	case dialect.SQLite, dialect.Postgres, dialect.MySQL:
	default:
		errs = append(errs, fmt.Errorf("database.dialect: unsupported dialect %q", c.Database.Dialect))
	}
	if c.Query.SlowThreshold < 0 {
		errs = append(errs, fmt.Errorf("query.slow_threshold: negative duration %s", c.Query.SlowThreshold))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// RequireDSN returns the DSN or an error when none is configured.
func (c *Config) RequireDSN() (string, error) {
	if c.Database.DSN == "" {
		return "", errors.New("database.dsn is required")
	}
	return c.Database.DSN, nil
}
