package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type ProjectConfig struct {
	Profile   string         `yaml:"profile"`
	Version   int            `yaml:"version"`
	Database  DatabaseConfig `yaml:"database"`
	Knowledge string         `yaml:"knowledge"`
	Catalog   string         `yaml:"catalog"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Profile) == "" {
		return fmt.Errorf("profile name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch driver {
	case DriverSQLite, DriverPostgres:
	case "":
		return fmt.Errorf("database driver is required")
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	cfg.Database.Driver = driver

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required")
	}

	return nil
}
