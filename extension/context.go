// context.go defines the Context interface for extension access to pathkit
// internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// Extensions receive the Context during Init(), not at construction, so they
// can register commands before configuration is loaded.

package extension

import (
	"fmt"
	"sync"

	"github.com/jpl-au/pathkit/internal/config"
	"github.com/jpl-au/pathkit/internal/fspath"
)

// Context provides extensions controlled access to pathkit internals.
type Context interface {
	// Config returns the loaded user configuration.
	Config() *config.Config

	// Platform returns the path convention for this invocation. A --platform
	// flag takes precedence over the platform config key.
	Platform() fspath.Platform

	// Reload re-reads configuration from disk. Long-running servers call
	// this after a config change so later operations see the new values.
	Reload() error
}

type extContext struct {
	mu       sync.RWMutex
	cfg      *config.Config
	override string
}

// NewContext creates an extension context. override is the value of the
// --platform flag and may be empty.
func NewContext(cfg *config.Config, override string) (Context, error) {
	if override != "" {
		if _, err := fspath.ParsePlatform(override); err != nil {
			return nil, fmt.Errorf("--platform: %w", err)
		}
	}
	return &extContext{cfg: cfg, override: override}, nil
}

func (c *extContext) Config() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

func (c *extContext) Platform() fspath.Platform {
	if c.override != "" {
		p, _ := fspath.ParsePlatform(c.override)
		return p
	}
	return c.Config().TargetPlatform()
}

func (c *extContext) Reload() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
	return nil
}
