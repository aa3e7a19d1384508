package main

import (
	"errors"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := Config{
		Scene: sceneSpace, Width: 800, Height: 600, Frames: 60, ZoomFrames: 20, OutDir: "frames",
		Seed: 1, Planets: modeBoundary, Rocket: modeScanline, Labels: true,
	}
	if *cfg != want {
		t.Errorf("defaults = %+v, want %+v", *cfg, want)
	}
}

func TestLoadConfigEnvironmentAndFlags(t *testing.T) {
	t.Setenv("SPACESCENE_FRAMES", "12")
	t.Setenv("SPACESCENE_OUT_DIR", "/tmp/env-frames")
	t.Setenv("SPACESCENE_PLANETS", "scanline")
	t.Setenv("SPACESCENE_WIDTH", "320")

	cfg, err := loadConfig([]string{"-width", "640", "-rocket", "boundary", "-parallel", "-scene", "landscape"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Frames != 12 || cfg.OutDir != "/tmp/env-frames" || cfg.Planets != modeScanline {
		t.Errorf("environment not applied: %+v", *cfg)
	}
	if cfg.Width != 640 {
		t.Errorf("Width = %d, want flag value 640 over environment", cfg.Width)
	}
	if cfg.Rocket != modeBoundary || !cfg.Parallel || cfg.Scene != sceneLandscape {
		t.Errorf("flags not applied: %+v", *cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero width", []string{"-width", "0"}, errInvalidSize},
		{"negative height", []string{"-height", "-5"}, errInvalidSize},
		{"no frames", []string{"-frames", "0", "-zoom-frames", "0"}, errInvalidFrames},
		{"negative frames", []string{"-frames", "-1"}, errInvalidFrames},
		{"bad planet mode", []string{"-planets", "flood"}, errInvalidMode},
		{"bad rocket mode", []string{"-rocket", ""}, errInvalidMode},
		{"unknown scene", []string{"-scene", "ocean"}, errInvalidScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("loadConfig(%v) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestLoadConfigBadEnvironment(t *testing.T) {
	t.Setenv("SPACESCENE_FRAMES", "many")
	if _, err := loadConfig(nil); err == nil {
		t.Error("non-numeric SPACESCENE_FRAMES accepted")
	}
}
