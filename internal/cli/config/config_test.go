package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Test loading with no config file (should use defaults)
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	// Check defaults
	if cfg.Format != "compact" {
		t.Errorf("expected default format 'compact', got %s", cfg.Format)
	}

	if cfg.Extract.Depth != 10 {
		t.Errorf("expected default depth 10, got %d", cfg.Extract.Depth)
	}

	if cfg.Definitions != "" {
		t.Errorf("expected no default definitions path, got %s", cfg.Definitions)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	// Create temporary directory with config file
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	// Write config file
	configContent := `
definitions: schemas.json
format: interface
output:
  file: models.d.ts
extract:
  include:
    - defaults
    - virtuals
  exclude:
    - validators
  depth: 4
`
	configPath := filepath.Join(tmpDir, "schemaext.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Definitions != "schemas.json" {
		t.Errorf("expected definitions 'schemas.json', got %s", cfg.Definitions)
	}
	if cfg.Format != "interface" {
		t.Errorf("expected format 'interface', got %s", cfg.Format)
	}
	if cfg.Output.File != "models.d.ts" {
		t.Errorf("expected output file 'models.d.ts', got %s", cfg.Output.File)
	}
	if len(cfg.Extract.Include) != 2 || cfg.Extract.Include[0] != "defaults" {
		t.Errorf("expected include [defaults virtuals], got %v", cfg.Extract.Include)
	}
	if len(cfg.Extract.Exclude) != 1 || cfg.Extract.Exclude[0] != "validators" {
		t.Errorf("expected exclude [validators], got %v", cfg.Extract.Exclude)
	}
	if cfg.Extract.Depth != 4 {
		t.Errorf("expected depth 4, got %d", cfg.Extract.Depth)
	}
}

func TestLoadInvalidDepth(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	configContent := `
extract:
  depth: -2
`
	configPath := filepath.Join(tmpDir, "schemaext.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for negative depth")
	}
}
