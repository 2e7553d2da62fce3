package muda_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/zaidbabid/muda"
)

// recordingHandler keeps every record logged through it.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) warnings() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Record
	for _, r := range h.records {
		if r.Level == slog.LevelWarn {
			out = append(out, r)
		}
	}
	return out
}

// captureLogs routes the package logger into a recordingHandler for the
// duration of the test.
func captureLogs(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	muda.SetLogger(slog.New(h))
	t.Cleanup(func() { muda.SetLogger(nil) })
	return h
}

// writeWAV writes interleaved 16-bit frames to dir/name.
func writeWAV(t *testing.T, dir, name string, rate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	if err := enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav: %v", err)
	}
	return path
}

// stereoRamp returns n interleaved stereo frames where the left channel
// counts up and the right channel runs at half its level.
func stereoRamp(n int) []int {
	data := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		v := (i % 256) * 64
		data = append(data, v, v/2)
	}
	return data
}

func writeJAMS(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimalJAMS = `{
  "annotations": [{"namespace": "beat", "data": [{"time": 0.1, "duration": 0, "value": 1, "confidence": null}]}],
  "file_metadata": {"title": "Ramp", "duration": 1.0, "jams_version": "0.3.4"},
  "sandbox": {}
}`
