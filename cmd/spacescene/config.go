package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

var (
	errInvalidSize   = errors.New("output size must be positive")
	errInvalidFrames = errors.New("frame counts must be non-negative and at least one frame rendered")
	errInvalidMode   = errors.New("unknown fill mode")
	errInvalidScene  = errors.New("unknown scene")
)

// Scenes.
const (
	sceneSpace     = "space"
	sceneLandscape = "landscape"
)

// Fill modes for planets and rocket parts.
const (
	modeBoundary = "boundary"
	modeScanline = "scanline"
)

// Config controls a rendering run. Defaults come from the struct tags,
// SPACESCENE_* environment variables override them, and flags override both.
type Config struct {
	Scene      string `envconfig:"SCENE" default:"space"`
	Width      int    `envconfig:"WIDTH" default:"800"`
	Height     int    `envconfig:"HEIGHT" default:"600"`
	Frames     int    `envconfig:"FRAMES" default:"60"`
	ZoomFrames int    `envconfig:"ZOOM_FRAMES" default:"20"`
	OutDir     string `envconfig:"OUT_DIR" default:"frames"`
	Seed       uint64 `envconfig:"SEED" default:"1"`
	Planets    string `envconfig:"PLANETS" default:"boundary"`
	Rocket     string `envconfig:"ROCKET" default:"scanline"`
	Parallel   bool   `envconfig:"PARALLEL" default:"false"`
	Workers    int    `envconfig:"WORKERS" default:"0"`
	Labels     bool   `envconfig:"LABELS" default:"true"`
	Verbose    bool   `envconfig:"VERBOSE" default:"false"`
}

// loadConfig reads the environment and then parses args on top of it.
func loadConfig(args []string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("spacescene", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	fs := flag.NewFlagSet("spacescene", flag.ContinueOnError)
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene to render: space or landscape")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "output image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "output image height")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "number of flight frames")
	fs.IntVar(&cfg.ZoomFrames, "zoom-frames", cfg.ZoomFrames, "number of frames zooming in after landing")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory for PNG frames")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for stars and flames")
	fs.StringVar(&cfg.Planets, "planets", cfg.Planets, "planet fill: boundary or scanline")
	fs.StringVar(&cfg.Rocket, "rocket", cfg.Rocket, "rocket fill: scanline or boundary")
	fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "fill rocket parts on a worker pool (scanline mode)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker count for -parallel, 0 for GOMAXPROCS")
	fs.BoolVar(&cfg.Labels, "labels", cfg.Labels, "draw frame labels")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the ranges and enumerations of cfg.
func (c *Config) validate() error {
	if c.Scene != sceneSpace && c.Scene != sceneLandscape {
		return fmt.Errorf("%w: %q", errInvalidScene, c.Scene)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", errInvalidSize, c.Width, c.Height)
	}
	if c.Frames < 0 || c.ZoomFrames < 0 || c.Frames+c.ZoomFrames == 0 {
		return fmt.Errorf("%w: %d+%d", errInvalidFrames, c.Frames, c.ZoomFrames)
	}
	for _, m := range []string{c.Planets, c.Rocket} {
		if m != modeBoundary && m != modeScanline {
			return fmt.Errorf("%w: %q", errInvalidMode, m)
		}
	}
	return nil
}
