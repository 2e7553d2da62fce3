package muda_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/zaidbabid/muda"
	"github.com/zaidbabid/muda/jams"
)

func TestLoadJamAudio_FromPath(t *testing.T) {
	dir := t.TempDir()
	jamPath := writeJAMS(t, dir, "ramp.jams", minimalJAMS)
	audioPath := writeWAV(t, dir, "ramp.wav", 8000, 2, stereoRamp(4000))
	opts := []muda.Option{muda.WithSampleRate(16000), muda.WithMono(false)}

	jam, err := muda.LoadJamAudio(jamPath, audioPath, opts...)
	if err != nil {
		t.Fatalf("LoadJamAudio() error = %v", err)
	}
	if jam.FileMetadata.Title != "Ramp" {
		t.Errorf("Title = %q, want Ramp", jam.FileMetadata.Title)
	}
	if len(jam.Search("beat")) != 1 {
		t.Error("annotations not loaded")
	}

	want, err := muda.LoadAudio(audioPath, opts...)
	if err != nil {
		t.Fatal(err)
	}

	sb, ok := muda.SandboxOf(jam)
	if !ok {
		t.Fatal("no muda sandbox after LoadJamAudio")
	}
	if sb.Rate != want.Rate {
		t.Errorf("sr = %d, want %d", sb.Rate, want.Rate)
	}
	if !reflect.DeepEqual(sb.Signal, want.Samples) {
		t.Error("y differs from standalone LoadAudio output")
	}
	if !sb.Has("history") || !sb.Has("state") {
		t.Error("sandbox should carry history and state")
	}
}

func TestLoadJamAudio_FromObject(t *testing.T) {
	dir := t.TempDir()
	audioPath := writeWAV(t, dir, "ramp.wav", 8000, 1, []int{0, 100, 200, 300})

	in := jams.New()
	out, err := muda.LoadJamAudio(in, audioPath)
	if err != nil {
		t.Fatalf("LoadJamAudio() error = %v", err)
	}
	if out != in {
		t.Error("LoadJamAudio() should return the jam it was given")
	}

	popped, err := muda.JamPop(out, "y", "sr")
	if err != nil {
		t.Fatalf("JamPop() error = %v", err)
	}
	if popped["sr"] != 8000 {
		t.Errorf("sr = %v, want 8000", popped["sr"])
	}
	if y, _ := popped["y"].([][]float32); len(y) != 1 || len(y[0]) != 4 {
		t.Errorf("y = %v, want one channel of 4 samples", popped["y"])
	}
}

func TestLoadJamAudio_InvalidInputType(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 42, "int"},
		{"jams value", jams.JAMS{}, "jams.JAMS"},
		{"nil", nil, "<nil>"},
		{"nil jam pointer", (*jams.JAMS)(nil), "nil *jams.JAMS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The audio path does not exist: the type check must come first.
			_, err := muda.LoadJamAudio(tt.in, "/nonexistent/audio.wav")

			var typeErr *muda.InvalidInputTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("LoadJamAudio() error = %v, want *InvalidInputTypeError", err)
			}
			if !strings.Contains(typeErr.Error(), tt.want) {
				t.Errorf("error %q should name type %q", typeErr.Error(), tt.want)
			}
		})
	}
}

func TestLoadJamAudio_MissingJam(t *testing.T) {
	dir := t.TempDir()
	audioPath := writeWAV(t, dir, "ramp.wav", 8000, 1, []int{0, 1})

	_, err := muda.LoadJamAudio(filepath.Join(dir, "missing.jams"), audioPath)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadJamAudio() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadJamAudio_AudioErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	jamPath := writeJAMS(t, dir, "ramp.jams", minimalJAMS)
	audioPath := writeJAMS(t, dir, "fake.wav", "RIFF\x04\x00\x00\x00WAVE")

	_, err := muda.LoadJamAudio(jamPath, audioPath)
	var corrupted *muda.CorruptedFileError
	if !errors.As(err, &corrupted) {
		t.Errorf("LoadJamAudio() error = %v, want *CorruptedFileError", err)
	}
}

func TestLoadJamAudioContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := muda.LoadJamAudioContext(ctx, jams.New(), "/nonexistent/audio.wav")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LoadJamAudioContext() error = %v, want context.Canceled", err)
	}
}

func TestLoadJamAudioContext_Runs(t *testing.T) {
	dir := t.TempDir()
	audioPath := writeWAV(t, dir, "ramp.wav", 8000, 1, []int{0, 1, 2})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	jam, err := muda.LoadJamAudioContext(ctx, jams.New(), audioPath)
	if err != nil {
		t.Fatalf("LoadJamAudioContext() error = %v", err)
	}
	if sb, ok := muda.SandboxOf(jam); !ok || sb.Rate != 8000 {
		t.Errorf("sandbox = %v", sb)
	}
}
