// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/templit/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`  // Embed logger config under [logger] table
	Convert ConvertConfig `toml:"convert"` // Conversion-specific settings
}

// ConvertConfig holds conversion-specific settings.
type ConvertConfig struct {
	// MaxPasses bounds the rescan loop: each pass converts at most one
	// concatenation chain per line, so nested chains need more passes.
	MaxPasses int `toml:"max_passes"`
	// VerifySyntax parses the converted output and rejects it when it
	// no longer parses cleanly.
	VerifySyntax bool `toml:"verify_syntax"`
	// SystemClipboard selects the OS clipboard over the in-process one
	// for -copy.
	SystemClipboard bool `toml:"system_clipboard"`
	// Preview opens the terminal UI to confirm conversions one by one.
	Preview bool `toml:"preview"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Convert: ConvertConfig{
			MaxPasses:       DefaultMaxPasses,
			VerifySyntax:    DefaultVerifySyntax,
			SystemClipboard: SystemClipboard,
			Preview:         false,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file. A
// missing file is not an error and yields a nil config.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Convert.MaxPasses <= 0 {
		c.Convert.MaxPasses = defaults.Convert.MaxPasses
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. Called once, from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		// Determine effective config file path
		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Convert.MaxPasses > 0 {
					cfg.Convert.MaxPasses = fileCfg.Convert.MaxPasses
				}
				cfg.Convert.VerifySyntax = fileCfg.Convert.VerifySyntax
				cfg.Convert.SystemClipboard = fileCfg.Convert.SystemClipboard
				cfg.Convert.Preview = fileCfg.Convert.Preview
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if
// LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
