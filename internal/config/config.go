package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB  DBConfig  `toml:"database"`
	Log LogConfig `toml:"log"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type LogConfig struct {
	Level string `toml:"level"` // zerolog level name, diagnostics only.
}

// DefaultConfig points at the local database under ./db, which gets
// created on first use.
func DefaultConfig() Config {
	return Config{
		DB:  DBConfig{ConnectionString: "file:./db/ringlog.db?cache=shared&mode=rwc"},
		Log: LogConfig{Level: "warn"},
	}
}

// Returns the path to the config file. RINGLOG_CONFIG overrides the
// default location under ~/.config.
func GetConfigPath() (string, error) {
	if path := os.Getenv("RINGLOG_CONFIG"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ringlog")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file. A missing or broken
// config is replaced with defaults instead of failing the command.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		cfg = DefaultConfig()
		if writeErr := writeConfig(path, cfg); writeErr != nil {
			return nil, writeErr
		}
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	return &cfg, nil
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
