package config

import "strings"

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Level == "warning" {
		c.Log.Level = "warn"
	}
}

// ApplyLogOverrides replaces the log settings with any non-empty value and
// normalizes them the same way as values read from a file.
func (c *Config) ApplyLogOverrides(level, format string) {
	if level != "" {
		c.Log.Level = level
	}
	if format != "" {
		c.Log.Format = format
	}
	c.normalize()
}
