// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the CLI and MCP interfaces, where config is accessed
// by dotted keys (e.g., "limits.max_path").
//
// Pointers are used for optional fields so "not set" (nil) and "explicitly
// set to zero/false" stay distinct. Defaults apply only to unset fields.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/pathkit/internal/fspath"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"platform",
		"unicode.precompose",
		"limits.max_path",
		"walk.limit",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "platform":
		return c.PlatformName(), nil
	case "unicode.precompose":
		return strconv.FormatBool(c.Precompose()), nil
	case "limits.max_path":
		return strconv.Itoa(c.MaxPath()), nil
	case "walk.limit":
		return strconv.Itoa(c.WalkLimit()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "platform":
		v := strings.ToLower(value)
		if _, err := fspath.ParsePlatform(v); err != nil {
			return fmt.Errorf("%w: platform must be native, posix or windows", ErrInvalidValue)
		}
		c.Platform = v
	case "unicode.precompose":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: unicode.precompose must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Unicode.Precompose = &b
	case "limits.max_path":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxPath || n > MaxMaxPath {
			return fmt.Errorf("%w: limits.max_path must be an integer between %d and %d",
				ErrInvalidValue, MinMaxPath, MaxMaxPath)
		}
		c.Limits.MaxPath = &n
	case "walk.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinWalkLimit || n > MaxWalkLimit {
			return fmt.Errorf("%w: walk.limit must be an integer between %d and %d",
				ErrInvalidValue, MinWalkLimit, MaxWalkLimit)
		}
		c.Walk.Limit = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"platform":           c.PlatformName(),
		"unicode.precompose": strconv.FormatBool(c.Precompose()),
		"limits.max_path":    strconv.Itoa(c.MaxPath()),
		"walk.limit":         strconv.Itoa(c.WalkLimit()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "platform":
		return c.Platform != ""
	case "unicode.precompose":
		return c.Unicode.Precompose != nil
	case "limits.max_path":
		return c.Limits.MaxPath != nil
	case "walk.limit":
		return c.Walk.Limit != nil
	default:
		return false
	}
}
