package params

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a parameter file over the built-in defaults and validates the
// result. Files ending in .toml are read as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}

	cfg := Defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing parameter TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing parameter YAML: %w", err)
		}
	}

	return New(cfg)
}

// LoadOrDefault behaves like Load, except that a missing file yields the
// validated defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return New(Defaults())
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(Defaults())
	}
	return Load(path)
}

// LoadProject loads params.yaml (or params.toml) from a project directory.
func LoadProject(projectDir string) (*Config, error) {
	for _, name := range []string{"params.yaml", "params.yml", "params.toml"} {
		p := filepath.Join(projectDir, name)
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return nil, fmt.Errorf("no params.yaml or params.toml in %s", projectDir)
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
