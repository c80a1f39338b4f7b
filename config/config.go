// Package config loads window options from YAML. A missing config file is
// not an error; it yields the defaults.
package config

import (
	"time"

	"github.com/1broseidon/sill/window"
)

// Config is the effective, validated configuration.
type Config struct {
	Title  string
	Width  int
	Height int

	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int

	Resizable   bool
	Decorations bool
	AlwaysOnTop bool
	Background  window.Color

	// DispatchTimeout bounds cross-thread window calls. Zero disables
	// the bound.
	DispatchTimeout time.Duration
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Title:       "sill",
		Width:       800,
		Height:      600,
		Resizable:   true,
		Decorations: true,
		Background:  window.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// WindowOptions converts the configuration into creation options.
func (c Config) WindowOptions() window.Options {
	opts := window.Options{
		Title:           c.Title,
		Width:           c.Width,
		Height:          c.Height,
		Resizable:       boolPtr(c.Resizable),
		Decorations:     boolPtr(c.Decorations),
		AlwaysOnTop:     c.AlwaysOnTop,
		Background:      &c.Background,
		DispatchTimeout: c.DispatchTimeout,
	}

	if c.MinWidth > 0 || c.MinHeight > 0 {
		opts.MinSize = &window.Size{Width: c.MinWidth, Height: c.MinHeight}
	}
	if c.MaxWidth > 0 || c.MaxHeight > 0 {
		opts.MaxSize = &window.Size{Width: c.MaxWidth, Height: c.MaxHeight}
	}
	return opts
}

func boolPtr(b bool) *bool {
	return &b
}
