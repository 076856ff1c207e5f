// Package config provides reading and writing of pathkit configuration.
// Supports both global (~/.pathkit/config.yaml) and local (.pathkit/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/pathkit/internal/fspath"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.pathkit/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .pathkit/config.yaml
	ScopeLocal
)

// Unicode holds options for unicode handling of path input.
type Unicode struct {
	Precompose *bool `yaml:"precompose,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxPath *int `yaml:"max_path,omitempty"`
}

// Walk holds walk-up configuration options.
type Walk struct {
	Limit *int `yaml:"limit,omitempty"`
}

// Default values applied when not configured.
const (
	DefaultPlatform  = "native"
	DefaultMaxPath   = 4096
	DefaultWalkLimit = 0 // unlimited
)

// Validation bounds for configuration values.
const (
	MinMaxPath   = 1
	MaxMaxPath   = 1024 * 1024
	MinWalkLimit = 0
	MaxWalkLimit = 65536
)

// Config contains configuration for pathkit.
type Config struct {
	Platform string  `yaml:"platform,omitempty"`
	Unicode  Unicode `yaml:"unicode,omitempty"`
	Limits   Limits  `yaml:"limits,omitempty"`
	Walk     Walk    `yaml:"walk,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Platform != "" {
		if _, err := fspath.ParsePlatform(c.Platform); err != nil {
			return fmt.Errorf("%w: platform must be native, posix or windows, got %q",
				ErrInvalidValue, c.Platform)
		}
	}
	if c.Limits.MaxPath != nil {
		v := *c.Limits.MaxPath
		if v < MinMaxPath || v > MaxMaxPath {
			return fmt.Errorf("%w: max_path must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxPath, MaxMaxPath, v)
		}
	}
	if c.Walk.Limit != nil {
		v := *c.Walk.Limit
		if v < MinWalkLimit || v > MaxWalkLimit {
			return fmt.Errorf("%w: walk.limit must be between %d and %d, got %d",
				ErrInvalidValue, MinWalkLimit, MaxWalkLimit, v)
		}
	}
	return nil
}

// PlatformName returns the configured platform name (defaults to "native").
func (c *Config) PlatformName() string {
	if c.Platform == "" {
		return DefaultPlatform
	}
	return c.Platform
}

// TargetPlatform returns the path convention selected by the platform key.
// Validate has already rejected unknown names, so the error is unreachable
// for a loaded config and Native is returned in that case.
func (c *Config) TargetPlatform() fspath.Platform {
	p, err := fspath.ParsePlatform(c.Platform)
	if err != nil {
		return fspath.Native
	}
	return p
}

// Precompose returns whether decomposed unicode input is normalised to
// NFC before processing (defaults to false).
func (c *Config) Precompose() bool {
	if c.Unicode.Precompose == nil {
		return false
	}
	return *c.Unicode.Precompose
}

// MaxPath returns the maximum path length in bytes (defaults to 4096).
// It bounds both CLI input and the capacity of result buffers.
func (c *Config) MaxPath() int {
	if c.Limits.MaxPath == nil {
		return DefaultMaxPath
	}
	return *c.Limits.MaxPath
}

// WalkLimit returns the default number of directories visited by walkup.
// Zero means no limit.
func (c *Config) WalkLimit() int {
	if c.Walk.Limit == nil {
		return DefaultWalkLimit
	}
	return *c.Walk.Limit
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".pathkit", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.pathkit/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathkit", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
