package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Tube.SamplesPerSegment != 8 {
		t.Errorf("expected 8 samples per segment, got %d", cfg.Tube.SamplesPerSegment)
	}
	if cfg.Tube.RingSegments != 16 {
		t.Errorf("expected 16 ring segments, got %d", cfg.Tube.RingSegments)
	}
	if cfg.Tube.MaxRadius != 0.5 {
		t.Errorf("expected max radius 0.5, got %f", cfg.Tube.MaxRadius)
	}
	if cfg.Tube.HeadRoundness >= cfg.Tube.TailSharpness {
		t.Error("expected head roundness below tail sharpness for a teardrop")
	}

	if cfg.Motion.PointCount != 10 {
		t.Errorf("expected 10 control points, got %d", cfg.Motion.PointCount)
	}
	if cfg.Motion.Spacing <= 0 {
		t.Errorf("expected positive spacing, got %f", cfg.Motion.Spacing)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pond.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

tube:
  samples_per_segment: 12
  ring_segments: 24
  max_radius: 0.8
  head_roundness: 0.5
  tail_sharpness: 3.0
  belly_amount: 0.25
  belly_frequency: 2.0
  attachment_step: 8

motion:
  point_count: 16
  spacing: 0.35
  speed: 2.5
  turn_rate: 1.5
  wander_strength: 0.4
  bounds: 10.0

logging:
  level: "debug"
  log_file: "pond.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Tube.SamplesPerSegment != 12 {
		t.Errorf("expected 12 samples per segment, got %d", cfg.Tube.SamplesPerSegment)
	}
	if cfg.Tube.RingSegments != 24 {
		t.Errorf("expected 24 ring segments, got %d", cfg.Tube.RingSegments)
	}
	if cfg.Tube.TailSharpness != 3.0 {
		t.Errorf("expected tail sharpness 3.0, got %f", cfg.Tube.TailSharpness)
	}
	if cfg.Tube.AttachmentStep != 8 {
		t.Errorf("expected attachment step 8, got %d", cfg.Tube.AttachmentStep)
	}

	if cfg.Motion.PointCount != 16 {
		t.Errorf("expected 16 control points, got %d", cfg.Motion.PointCount)
	}
	if cfg.Motion.Spacing != 0.35 {
		t.Errorf("expected spacing 0.35, got %f", cfg.Motion.Spacing)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "pond.log" {
		t.Errorf("expected log file 'pond.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error loading a missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "pond.yaml")

	cfg := Default()
	cfg.Tube.RingSegments = 32
	cfg.Motion.Speed = 3.25

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Tube.RingSegments != 32 {
		t.Errorf("round trip lost ring segments: got %d", loaded.Tube.RingSegments)
	}
	if loaded.Motion.Speed != 3.25 {
		t.Errorf("round trip lost speed: got %f", loaded.Motion.Speed)
	}
}
