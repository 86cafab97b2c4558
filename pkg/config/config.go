/*
Package config manages TOML configuration for lexigram's CLI and IPC server.

InitConfig handles automatic config file creation and loading with fallback
to defaults. LoadConfig and SaveConfig provide direct fs access for runtime
changes. Update allows targeted parameter changes with persistence.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire configuration structure.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig holds the defaults the solver core falls back to when a
// request omits a field.
type SolverConfig struct {
	MinLength int `toml:"min_length"`
	MaxWords  int `toml:"max_words"`
	TopN      int `toml:"top_n"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxTopN      int `toml:"max_top_n"`
	MaxMaxWords  int `toml:"max_max_words"`
	MaxSeedChars int `toml:"max_seed_chars"`
}

// CliConfig holds interactive-CLI interface options.
type CliConfig struct {
	DefaultMinLength int  `toml:"default_min_length"`
	DefaultMaxWords  int  `toml:"default_max_words"`
	DefaultTopN      int  `toml:"default_top_n"`
	DefaultNoFilter  bool `toml:"default_no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			MinLength: 3,
			MaxWords:  3,
			TopN:      50000,
		},
		Server: ServerConfig{
			MaxTopN:      200000,
			MaxMaxWords:  10,
			MaxSeedChars: 64,
		},
		CLI: CliConfig{
			DefaultMinLength: 3,
			DefaultMaxWords:  3,
			DefaultTopN:      50000,
			DefaultNoFilter:  false,
		},
	}
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads configuration from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves configuration into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// Update changes the server's runtime-tunable values and persists them.
func (c *Config) Update(configPath string, maxTopN, maxMaxWords *int) error {
	server := &c.Server
	if maxTopN != nil {
		server.MaxTopN = *maxTopN
	}
	if maxMaxWords != nil {
		server.MaxMaxWords = *maxMaxWords
	}
	return SaveConfig(c, configPath)
}
