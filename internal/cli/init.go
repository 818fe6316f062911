// Package cli provides common initialization for the command-line
// entrypoint: logging, env file, configuration and store setup.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"kanakku/internal/config"
	"kanakku/internal/i18n"
	"kanakku/internal/log"
	"kanakku/internal/repository"
	"kanakku/internal/storage"
)

// SetupLogger initializes structured logging and sets it as default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting
// the process on failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the SQLite key-value store, exiting on failure.
func OpenStore(logger *log.Logger, dbPath string) *storage.SQLiteKV {
	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		logger.Error("Failed to open store", log.FieldError, err.Error(), log.FieldPath, dbPath)
		os.Exit(1)
	}
	return kv
}

// ResolveLocale returns the stored locale when one was chosen, else
// the configured default.
func ResolveLocale(ctx context.Context, settings *repository.Settings, cfg *config.Config, logger *log.Logger) i18n.Locale {
	loc, chosen, err := settings.Locale(ctx)
	if err != nil {
		logger.Warn("Failed to read stored locale, using default", log.FieldError, err.Error())
		return i18n.ParseLocale(cfg.Locale)
	}
	if !chosen {
		return i18n.ParseLocale(cfg.Locale)
	}
	return loc
}
