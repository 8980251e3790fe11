package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Port            int    `default:"8080" env:"PORT" json:"port" yaml:"port"`
	DataDir         string `default:"data" env:"DATA_DIR" json:"data_dir" yaml:"data_dir"`
	BackupKeep      int    `default:"10" env:"BACKUP_KEEP" json:"backup_keep" yaml:"backup_keep"`
	DefaultUser     string `default:"anonymous_user" env:"DEFAULT_USER" json:"default_user" yaml:"default_user"`
	StorageBackend  string `default:"file" env:"STORAGE_BACKEND" json:"storage_backend" yaml:"storage_backend"`
	PostgresDSN     string `env:"POSTGRES_DSN" json:"postgres_dsn" yaml:"postgres_dsn"`
	RetentionDays   int    `default:"0" env:"RETENTION_DAYS" json:"retention_days" yaml:"retention_days"`
	MinForecastDays int    `default:"7" env:"MIN_FORECAST_DAYS" json:"min_forecast_days" yaml:"min_forecast_days"`
}

// New reads .env, the optional file named by MINDGUARD_CONFIG and any extra
// files, then the environment. Later sources win.
func New(files ...string) (*Config, error) {
	_ = godotenv.Load()

	if path := getEnv("MINDGUARD_CONFIG", ""); path != "" {
		files = append([]string{path}, files...)
	}

	cfg := &Config{}
	loader := configor.New(&configor.Config{ENVPrefix: "-"})
	if err := loader.Load(cfg, files...); err != nil {
		return nil, fmt.Errorf("internal/config/config.go New: %w", err)
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("internal/config/config.go New: %w", err)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendFile:
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.BackupKeep < 0 || c.RetentionDays < 0 {
		return fmt.Errorf("BACKUP_KEEP and RETENTION_DAYS must not be negative")
	}
	if c.MinForecastDays < 1 {
		c.MinForecastDays = 7
	}
	if c.DefaultUser == "" {
		c.DefaultUser = "anonymous_user"
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
