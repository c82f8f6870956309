// Package config loads the interpreter's runtime policy from a YAML
// document, resolving the two explicit Open Questions of spec.md §9
// (isolate_env_writes, is_main_module) into concrete settings instead of
// hard-coded defaults.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the interpreter's runtime policy. Default() returns the
// documented default: IsolateEnvWrites false, IsMainModule true,
// Verbosity 0.
type Config struct {
	// IsolateEnvWrites, when true, keeps a typed first-assignment local
	// to its scope instead of redirecting to the outermost environment.
	IsolateEnvWrites bool `yaml:"isolate_env_writes"`
	// IsMainModule overrides whether the entry script reports itself as
	// the main module via MAIN(). Always true unless a host embeds the
	// interpreter to run a script as a subordinate module.
	IsMainModule bool `yaml:"is_main_module"`
	// Verbosity is a diagnostic-output level. It is loaded from the file
	// but nothing in the interpreter or the CLI reads it.
	Verbosity int `yaml:"verbosity"`
	// ExtensionPaths lists directories for native extension modules, in
	// order. It is loaded from the file but nothing searches it: the CLI
	// loads only the bundled locale extension.
	ExtensionPaths []string `yaml:"extension_paths"`
}

// Default returns the documented default policy.
func Default() Config {
	return Config{IsolateEnvWrites: false, IsMainModule: true, Verbosity: 0}
}

// Load reads and parses a YAML config file. A missing file is not an
// error; it yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
