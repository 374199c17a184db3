package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_file = "/var/log/app/dao.log"
encoding = "shift_jis"
auto_copy = true

[db]
driver = "sqlite"
dsn = "/tmp/app.db"

[ui]
accent = "39"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.LogFile != "/var/log/app/dao.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.Encoding != "shift_jis" {
		t.Errorf("Encoding = %q", cfg.Encoding)
	}
	if !cfg.AutoCopy {
		t.Error("AutoCopy = false")
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.DSN != "/tmp/app.db" {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("UI.Accent = %q", cfg.UI.Accent)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("log_file = [not closed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestZeroConfigDefaults(t *testing.T) {
	var cfg Config
	if cfg.Encoding != "" || cfg.AutoCopy || cfg.LogFile != "" {
		t.Errorf("zero config not empty: %+v", cfg)
	}
}
