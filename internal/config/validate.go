package config

import (
	"errors"
	"fmt"
)

// Validate reports every invalid setting in one error.
func (c *Config) Validate() error {
	var errs []error

	if c.Decode.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("decode.sample_rate must be >= 0, got %d", c.Decode.SampleRate))
	}
	switch c.Decode.BitDepth {
	case 16, 24, 32:
	default:
		errs = append(errs, fmt.Errorf("decode.bit_depth must be 16, 24 or 32, got %d", c.Decode.BitDepth))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unsupported value %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unsupported value %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
