package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// reservedGroupKeys are handled by the categorizer itself and cannot name a group.
const reservedGroupKeys = "`"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSort(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateSort() error {
	if len(c.Sort.Groups) == 0 {
		return errors.New("sort.groups must define at least one group")
	}
	seen := make(map[string]struct{}, len(c.Sort.Groups))
	for i, g := range c.Sort.Groups {
		if utf8.RuneCountInString(g.Key) != 1 {
			return fmt.Errorf("sort.groups[%d].key must be a single character, got %q", i, g.Key)
		}
		if g.Key == reservedGroupKeys {
			return fmt.Errorf("sort.groups[%d].key %q is reserved for creating groups", i, g.Key)
		}
		if g.Name == "" {
			return fmt.Errorf("sort.groups[%d].name must be set", i)
		}
		if _, dup := seen[g.Key]; dup {
			return fmt.Errorf("sort.groups[%d].key %q is bound more than once", i, g.Key)
		}
		seen[g.Key] = struct{}{}
	}
	return nil
}
