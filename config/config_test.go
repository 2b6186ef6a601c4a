package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scan.Modifier != "public" {
		t.Errorf("expected Modifier=public, got %s", cfg.Scan.Modifier)
	}
	if len(cfg.Scan.Includes) == 0 || cfg.Scan.Includes[0] != "**/*.cs" {
		t.Errorf("expected default include **/*.cs, got %v", cfg.Scan.Includes)
	}
	if cfg.Watch.DebounceMillis != 500 {
		t.Errorf("expected DebounceMillis=500, got %d", cfg.Watch.DebounceMillis)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "csmap.yaml")

	content := `
scan:
  modifier: internal
  includes:
    - "src/**/*.cs"
watch:
  debounce_millis: 250
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Scan.Modifier != "internal" {
		t.Errorf("expected Modifier=internal, got %s", cfg.Scan.Modifier)
	}
	if len(cfg.Scan.Includes) != 1 || cfg.Scan.Includes[0] != "src/**/*.cs" {
		t.Errorf("expected overridden includes, got %v", cfg.Scan.Includes)
	}
	if cfg.Watch.DebounceMillis != 250 {
		t.Errorf("expected DebounceMillis=250, got %d", cfg.Watch.DebounceMillis)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "csmap.yaml")

	content := `
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
}

func TestOutlineDBPath(t *testing.T) {
	path := OutlineDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".csmap", "outline.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
