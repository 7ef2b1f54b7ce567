package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mohsinsiddi/paramgen/internal/gen"
)

const (
	defaultOutputPath = gen.DefaultOutputPath

	configFile = "config.json"
)

// Load reads config from dir (or creates defaults). dir defaults to ~/.paramgen.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".paramgen")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath
	}
	if cfg.Widths == (Widths{}) {
		cfg.Widths = Widths{From: gen.MinWidth, To: gen.MaxWidth}
	}
	if _, err := gen.WidthsBetween(cfg.Widths.From, cfg.Widths.To); err != nil {
		return nil, fmt.Errorf("invalid widths in config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the active config directory.
func (c *Config) Dir() string {
	return c.configDir
}

func defaults(dir string) *Config {
	return &Config{
		OutputPath: defaultOutputPath,
		Widths:     Widths{From: gen.MinWidth, To: gen.MaxWidth},
		configDir:  dir,
	}
}
