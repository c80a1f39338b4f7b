package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/sill/window"
)

// rawConfig mirrors the YAML file. Pointer fields distinguish "absent" from
// a zero value so unset keys fall through to the defaults.
type rawConfig struct {
	Window rawWindow `yaml:"window"`
}

type rawWindow struct {
	Title  *string `yaml:"title"`
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`

	MinWidth  *int `yaml:"min_width"`
	MinHeight *int `yaml:"min_height"`
	MaxWidth  *int `yaml:"max_width"`
	MaxHeight *int `yaml:"max_height"`

	Resizable   *bool   `yaml:"resizable"`
	Decorations *bool   `yaml:"decorations"`
	AlwaysOnTop *bool   `yaml:"always_on_top"`
	Background  *string `yaml:"background"`

	DispatchTimeoutMS *int `yaml:"dispatch_timeout_ms"`
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "sill", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Config, error) {
	cfg := Default()

	exists, err := pathExists(path)
	if err != nil {
		return Config{}, err
	}
	if !exists {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	var raw rawConfig
	if err := decodeStrictYAML(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse yaml: %w", path, err)
	}

	if err := applyRaw(&cfg, raw.Window); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyRaw(cfg *Config, w rawWindow) error {
	if w.Title != nil {
		cfg.Title = *w.Title
	}
	if w.Width != nil {
		cfg.Width = *w.Width
	}
	if w.Height != nil {
		cfg.Height = *w.Height
	}
	if w.MinWidth != nil {
		cfg.MinWidth = *w.MinWidth
	}
	if w.MinHeight != nil {
		cfg.MinHeight = *w.MinHeight
	}
	if w.MaxWidth != nil {
		cfg.MaxWidth = *w.MaxWidth
	}
	if w.MaxHeight != nil {
		cfg.MaxHeight = *w.MaxHeight
	}
	if w.Resizable != nil {
		cfg.Resizable = *w.Resizable
	}
	if w.Decorations != nil {
		cfg.Decorations = *w.Decorations
	}
	if w.AlwaysOnTop != nil {
		cfg.AlwaysOnTop = *w.AlwaysOnTop
	}
	if w.Background != nil {
		c, err := window.ParseColor(*w.Background)
		if err != nil {
			return fmt.Errorf("window.background: %w", err)
		}
		cfg.Background = c
	}
	if w.DispatchTimeoutMS != nil {
		if *w.DispatchTimeoutMS < 0 {
			return fmt.Errorf("window.dispatch_timeout_ms: must not be negative, got %d", *w.DispatchTimeoutMS)
		}
		cfg.DispatchTimeout = time.Duration(*w.DispatchTimeoutMS) * time.Millisecond
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("window.width: must be positive, got %d", cfg.Width)
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("window.height: must be positive, got %d", cfg.Height)
	}
	if cfg.MinWidth < 0 || cfg.MinHeight < 0 || cfg.MaxWidth < 0 || cfg.MaxHeight < 0 {
		return fmt.Errorf("window size bounds must not be negative")
	}
	if cfg.MaxWidth > 0 && cfg.MinWidth > cfg.MaxWidth {
		return fmt.Errorf("window.min_width %d exceeds max_width %d", cfg.MinWidth, cfg.MaxWidth)
	}
	if cfg.MaxHeight > 0 && cfg.MinHeight > cfg.MaxHeight {
		return fmt.Errorf("window.min_height %d exceeds max_height %d", cfg.MinHeight, cfg.MaxHeight)
	}
	return nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
