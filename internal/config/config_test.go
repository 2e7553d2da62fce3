package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", *cfg)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "muda.toml")
	content := `
[decode]
sample_rate = 22050

[log]
level = " WARNING "
format = "JSON"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Decode.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", cfg.Decode.SampleRate)
	}
	if !cfg.Decode.Mono {
		t.Error("Mono should keep its default when the key is absent")
	}
	if cfg.Decode.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", cfg.Decode.BitDepth)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want warn/json", cfg.Log)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load() error = %v, want not found", err)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	cfg := Default()
	err := Parse([]byte("[decode]\nsamplerate = 8000\n"), &cfg)
	if err == nil || !strings.Contains(err.Error(), "unknown config keys") {
		t.Errorf("Parse() error = %v, want unknown keys", err)
	}
}

func TestApplyLogOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyLogOverrides(" WARNING ", "")

	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Log.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	cfg.ApplyLogOverrides("", "JSON")
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want warn/json", cfg.Log)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative rate", func(c *Config) { c.Decode.SampleRate = -1 }, "sample_rate"},
		{"bad bit depth", func(c *Config) { c.Decode.BitDepth = 8 }, "bit_depth"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Decode.SampleRate = 44100

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var back Config
	if err := Parse(data, &back); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}
