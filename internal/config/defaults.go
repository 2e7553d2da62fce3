package config

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Decode: Decode{
			SampleRate: 0,
			Mono:       true,
			BitDepth:   16,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}
