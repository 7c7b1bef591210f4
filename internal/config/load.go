package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	return load(flag.CommandLine)
}

func load(fs *flag.FlagSet) (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	path := configPath(fs)
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlagSet(cfg, fs)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Octree.MaxDepth < 0 {
		return fmt.Errorf("octree.max_depth must be >= 0, got %d", c.Octree.MaxDepth)
	}
	if c.Voxel.Density < 1 {
		return fmt.Errorf("voxel.density must be >= 1, got %d", c.Voxel.Density)
	}
	if c.IK.Epsilon <= 0 {
		return fmt.Errorf("ik.epsilon must be > 0, got %v", c.IK.Epsilon)
	}
	if c.Path.Speed < 0 {
		return fmt.Errorf("path.speed must be >= 0, got %v", c.Path.Speed)
	}
	switch c.Path.Easing {
	case EasingLinear, EasingSmoothstep:
	default:
		return fmt.Errorf("path.easing must be %q or %q, got %q", EasingLinear, EasingSmoothstep, c.Path.Easing)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./printsim.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "PrintSim")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "PrintSim")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "printsim")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "printsim")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
