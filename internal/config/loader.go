package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override config files
const EnvPrefix = "TODO"

// Load loads and merges configuration from global, project and environment sources.
// Later sources win: ~/.todo/config.yaml, ./.todo/config.yaml, ./.env, then
// TODO_FILE and TODO_LOG_LEVEL from the environment.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// A broken source is skipped; later sources still apply and all errors are returned.
	var errs []error

	if home, err := os.UserHomeDir(); err == nil {
		if err := loadFile(filepath.Join(home, ".todo", "config.yaml"), cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to load global config: %w", err))
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		if err := loadFile(filepath.Join(cwd, ".todo", "config.yaml"), cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to load project config: %w", err))
		}

		// .env never overrides variables that are already set
		if err := godotenv.Load(filepath.Join(cwd, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to load .env: %w", err))
		}
	}

	applyEnv(cfg)

	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)
	return cfg, errors.Join(errs...)
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func applyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	_ = v.BindEnv("file")
	_ = v.BindEnv("log_level")

	if file := v.GetString("file"); file != "" {
		cfg.File = file
	}
	if level := v.GetString("log_level"); level != "" {
		cfg.LogLevel = level
	}
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	return filepath.Join(ProjectDir(), "config.yaml")
}

// GlobalDir returns the path to the global todo directory
func GlobalDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".todo")
}

// ProjectDir returns the path to the project todo directory
func ProjectDir() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".todo")
}
