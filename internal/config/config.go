// Package config loads the cachectl configuration file.
//
// The file is YAML. ${VAR} references are replaced with environment
// variables before parsing; unset variables expand to the empty string.
//
//	cache:
//	  path: ${HOME}/.readercache
//	  key_mode: fingerprint
//	  max_size: 67108864
//	display:
//	  screen_width: 2560
//	  screen_height: 1440
//	  font_face: Consolas
//	  font_height: 20
//	logging:
//	  enabled: true
//	  dir: /var/log/readercache
//	  level: debug
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the complete cachectl configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// CacheConfig locates and sizes the cache file.
type CacheConfig struct {
	Path    string `yaml:"path"`     // Empty means next to the executable
	KeyMode string `yaml:"key_mode"` // "fingerprint" or "path"
	MaxSize int    `yaml:"max_size"` // Bytes; 0 means the store default
}

// DisplayConfig feeds the default settings payload of a new cache.
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	FontFace     string `yaml:"font_face"`
	FontHeight   int32  `yaml:"font_height"`
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{KeyMode: "fingerprint"},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a configuration file from the given path. Fields the file
// leaves out keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
func expandEnvVars(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envRef.FindStringSubmatch(match)[1])
	})
}

// Validate returns the first invalid field it finds.
func (c *Config) Validate() error {
	switch c.Cache.KeyMode {
	case "", "fingerprint", "path":
	default:
		return fmt.Errorf("cache.key_mode must be fingerprint or path, got %q", c.Cache.KeyMode)
	}
	if c.Cache.MaxSize < 0 {
		return fmt.Errorf("cache.max_size must not be negative")
	}
	if c.Display.ScreenWidth < 0 || c.Display.ScreenHeight < 0 {
		return fmt.Errorf("display screen size must not be negative")
	}
	if c.Display.FontHeight < 0 {
		return fmt.Errorf("display.font_height must not be negative")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
