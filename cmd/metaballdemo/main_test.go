package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/metaball/internal/config"
)

func TestWriteFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Items = 3
	cfg.Frames = 4
	cfg.Workers = 2
	cfg.Out = filepath.Join(t.TempDir(), "frames")

	if err := writeFrames(context.Background(), cfg, 0, 2); err != nil {
		t.Fatalf("writeFrames() error = %v", err)
	}

	entries, err := os.ReadDir(cfg.Out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("wrote %d files, want 4", len(entries))
	}
	if _, err := os.Stat(filepath.Join(cfg.Out, "frame_003.png")); err != nil {
		t.Errorf("last frame missing: %v", err)
	}

	if err := writeFrames(context.Background(), cfg, 0, 9); err == nil {
		t.Error("writeFrames() to a missing item succeeded")
	}
}

func TestDemoConfigLoads(t *testing.T) {
	cfg, err := config.Load("demo.toml")
	if err != nil {
		t.Fatalf("Load(demo.toml) error = %v", err)
	}
	if cfg.Items != 4 || cfg.Frames != 30 {
		t.Errorf("demo.toml = %+v", cfg)
	}
}

func TestOverrides_SurviveReload(t *testing.T) {
	flags := overrides{items: 6, workers: 0}

	// A reloaded file with its own item count and worker setting.
	reloaded, err := config.Parse([]byte("items = 2\nworkers = 3\nframes = 9\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := flags.resolve(reloaded)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Items != 6 || cfg.Workers != 0 {
		t.Errorf("items=%d workers=%d, want flag values 6 and 0", cfg.Items, cfg.Workers)
	}
	if cfg.Frames != 9 {
		t.Errorf("frames = %d, want the file's 9", cfg.Frames)
	}

	// Unset flags leave the file alone.
	cfg, err = overrides{workers: -1}.resolve(reloaded)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Items != 2 || cfg.Workers != 3 {
		t.Errorf("items=%d workers=%d, want file values 2 and 3", cfg.Items, cfg.Workers)
	}

	bad := config.Default()
	bad.Metaball = "white"
	if _, err := flags.resolve(bad); err == nil {
		t.Error("resolve() accepted an invalid color")
	}
}

func TestWriteFrames_BadColorWritesNothing(t *testing.T) {
	cfg := config.Default()
	cfg.Background = "purple"
	cfg.Out = filepath.Join(t.TempDir(), "frames")

	if err := writeFrames(context.Background(), cfg, 0, 1); err == nil {
		t.Fatal("writeFrames() with a bad color succeeded")
	}
	if _, err := os.Stat(cfg.Out); !os.IsNotExist(err) {
		t.Errorf("output directory created: %v", err)
	}
}
