package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.IsolateEnvWrites {
		t.Errorf("Default().IsolateEnvWrites = true, want false")
	}
	if !cfg.IsMainModule {
		t.Errorf("Default().IsMainModule = false, want true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for a missing file", err)
	}
	if cfg != Default() {
		t.Errorf("Load() on a missing file = %+v, want Default()", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefix.yaml")
	body := "isolate_env_writes: true\nverbosity: 2\nextension_paths:\n  - ./extensions\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.IsolateEnvWrites {
		t.Errorf("IsolateEnvWrites = false, want true")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if len(cfg.ExtensionPaths) != 1 || cfg.ExtensionPaths[0] != "./extensions" {
		t.Errorf("ExtensionPaths = %v, want [./extensions]", cfg.ExtensionPaths)
	}
	if !cfg.IsMainModule {
		t.Errorf("IsMainModule = false, want true (unset field keeps its Default())")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("isolate_env_writes: [this is not a bool"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load() error = nil, want a parse error")
	}
}
