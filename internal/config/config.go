package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kanakku/internal/i18n"
)

type Config struct {
	// SQLite database backing the key-value store
	DBPath string

	// Directory receiving exported report files
	ExportDir string

	// Default locale when none was ever chosen; the stored locale
	// always wins once set
	Locale string
}

func Load() *Config {
	return &Config{
		DBPath:    getEnv("KANAKKU_DB_PATH", "./data/kanakku.db"),
		ExportDir: getEnv("KANAKKU_EXPORT_DIR", "."),
		Locale:    getEnv("KANAKKU_LOCALE", string(i18n.DefaultLocale)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	} else {
		if dir := filepath.Dir(c.DBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.ExportDir == "" {
		errs = append(errs, "export directory cannot be empty")
	}

	if !i18n.Locale(c.Locale).Valid() {
		errs = append(errs, fmt.Sprintf("invalid locale '%s': must be one of [en ta]", c.Locale))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
