package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var stdout, stderr bytes.Buffer

	args := []string{"-out", dir, "-frames", "3", "-zoom-frames", "1", "-width", "80", "-height", "60"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.HasPrefix(stdout.String(), "rendered 4 frames to "+dir) {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected log output without -v:\n%s", stderr.String())
	}

	for i := range 4 {
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if cfg.Width != 80 || cfg.Height != 60 {
			t.Errorf("frame %d is %dx%d, want 80x60", i, cfg.Width, cfg.Height)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "frame-0004.png")); !os.IsNotExist(err) {
		t.Errorf("unexpected fifth frame: %v", err)
	}
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-out", t.TempDir(), "-frames", "1", "-zoom-frames", "0",
		"-width", "40", "-height", "30", "-planets", "boundary", "-rocket", "boundary", "-v"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	logs := stderr.String()
	for _, want := range []string{"frame written", "rasterkit: boundary fill"} {
		if !strings.Contains(logs, want) {
			t.Errorf("debug log missing %q", want)
		}
	}
}

func TestRunLandscape(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	args := []string{"-scene", "landscape", "-out", dir, "-frames", "2", "-zoom-frames", "1",
		"-width", "40", "-height", "30", "-v"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.HasPrefix(stdout.String(), "rendered 3 frames to "+dir) {
		t.Errorf("stdout = %q", stdout.String())
	}
	logs := stderr.String()
	for _, want := range []string{"sun zoom=1.00", "rasterkit: scanline fill"} {
		if !strings.Contains(logs, want) {
			t.Errorf("debug log missing %q", want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "frame-0002.png")); err != nil {
		t.Errorf("last frame: %v", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-out", t.TempDir(), "-planets", "spray"}, &stdout, &stderr)
	if !errors.Is(err, errInvalidMode) {
		t.Errorf("run error = %v, want %v", err, errInvalidMode)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
}

func TestRunOutputDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-out", file, "-frames", "1"}, &stdout, &stderr); err == nil {
		t.Error("run succeeded with a regular file as output directory")
	}
}

func TestFrameLabel(t *testing.T) {
	tests := []struct {
		i, n int
		f    Frame
		want string
	}{
		{0, 10, Frame{T: 0.5, Angle: -90}, "frame 1/10  t=0.50  angle=-90"},
		{9, 10, Frame{T: 1, Zoom: 1}, "frame 10/10  zoom=1.00"},
	}
	for _, tt := range tests {
		if got := frameLabel(tt.i, tt.n, tt.f); got != tt.want {
			t.Errorf("frameLabel(%d, %d) = %q, want %q", tt.i, tt.n, got, tt.want)
		}
	}
}
