package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/contas-dev/contas/internal/datekey"
)

// FileName is the config file name inside the data directory.
const FileName = "contas.yaml"

// Storage backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config represents the contas.yaml configuration.
type Config struct {
	DataDir        string `yaml:"data_dir"`
	Backend        string `yaml:"backend"`
	DateFormat     string `yaml:"date_format"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Default returns the configuration a fresh data directory starts with:
// the JSON snapshot store and the compact ddmmyyyy input format the
// original form used.
func Default(dataDir string) *Config {
	return &Config{
		DataDir:        dataDir,
		Backend:        BackendJSON,
		DateFormat:     string(datekey.FormatCompact),
		CurrencySymbol: "R$",
	}
}

// Load reads a contas.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads dir/contas.yaml, falling back to defaults when the
// file does not exist, then applies .env and CONTAS_* overrides.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default(dir)
	} else if err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	applyEnv(cfg, dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the enum-valued fields.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if _, err := c.InputFormat(); err != nil {
		return err
	}
	return nil
}

// InputFormat returns the configured display-date format for input
// parsing.
func (c *Config) InputFormat() (datekey.Format, error) {
	return datekey.ParseFormat(c.DateFormat)
}

// applyEnv layers environment overrides on top of the file values. A
// .env beside the config file is loaded first and is optional.
func applyEnv(cfg *Config, dir string) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if v := os.Getenv("CONTAS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CONTAS_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("CONTAS_DATE_FORMAT"); v != "" {
		cfg.DateFormat = v
	}
	if v := os.Getenv("CONTAS_CURRENCY"); v != "" {
		cfg.CurrencySymbol = v
	}
}
