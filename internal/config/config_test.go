package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prepkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoragePath != defaultStoragePath {
		t.Errorf("StoragePath = %q, want %q", cfg.StoragePath, defaultStoragePath)
	}
	if cfg.Defaults.Company != "" || cfg.Defaults.Role != "" {
		t.Errorf("Defaults = %+v, want empty", cfg.Defaults)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
storage_path: /tmp/custom.db
defaults:
  company: Zerodha
  role: Backend Engineer
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoragePath != "/tmp/custom.db" {
		t.Errorf("StoragePath = %q, want %q", cfg.StoragePath, "/tmp/custom.db")
	}
	if cfg.Defaults.Company != "Zerodha" {
		t.Errorf("Defaults.Company = %q, want %q", cfg.Defaults.Company, "Zerodha")
	}
	if cfg.Defaults.Role != "Backend Engineer" {
		t.Errorf("Defaults.Role = %q, want %q", cfg.Defaults.Role, "Backend Engineer")
	}
}

func TestLoad_EmptyStoragePathFallsBack(t *testing.T) {
	path := writeConfig(t, "defaults:\n  company: Acme\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoragePath != defaultStoragePath {
		t.Errorf("StoragePath = %q, want %q", cfg.StoragePath, defaultStoragePath)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("PREPKIT_TEST_DIR", "/var/data")
	path := writeConfig(t, "storage_path: ${PREPKIT_TEST_DIR}/history.db\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoragePath != "/var/data/history.db" {
		t.Errorf("StoragePath = %q, want %q", cfg.StoragePath, "/var/data/history.db")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "storage_path: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}
