package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DBPath == "" || cfg.ExportDir == "" || cfg.Locale == "" {
		t.Fatalf("defaults missing: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	good := &Config{DBPath: filepath.Join(dir, "db", "kanakku.db"), ExportDir: dir, Locale: "ta"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []*Config{
		{DBPath: "", ExportDir: dir, Locale: "en"},
		{DBPath: filepath.Join(dir, "x.db"), ExportDir: "", Locale: "en"},
		{DBPath: filepath.Join(dir, "x.db"), ExportDir: dir, Locale: "fr"},
	}
	for i, cfg := range bads {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
