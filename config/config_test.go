package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/sill/window"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
window:
  title: editor
  width: 1024
  height: 768
  min_width: 320
  min_height: 240
  max_width: 1920
  max_height: 1080
  resizable: false
  decorations: false
  always_on_top: true
  background: "#336699cc"
  dispatch_timeout_ms: 250
`)
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Title != "editor" || cfg.Width != 1024 || cfg.Height != 768 {
		t.Fatalf("unexpected geometry: %+v", cfg)
	}
	if cfg.MinWidth != 320 || cfg.MinHeight != 240 || cfg.MaxWidth != 1920 || cfg.MaxHeight != 1080 {
		t.Fatalf("unexpected size bounds: %+v", cfg)
	}
	if cfg.Resizable || cfg.Decorations || !cfg.AlwaysOnTop {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
	want := window.Color{R: 0x33, G: 0x66, B: 0x99, A: 0xcc}
	if cfg.Background != want {
		t.Fatalf("background = %+v, want %+v", cfg.Background, want)
	}
	if cfg.DispatchTimeout != 250*time.Millisecond {
		t.Fatalf("dispatch timeout = %v", cfg.DispatchTimeout)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: partial
  width: 640
`)
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	def := Default()
	if cfg.Title != "partial" || cfg.Width != 640 {
		t.Fatalf("override not applied: %+v", cfg)
	}
	if cfg.Height != def.Height || !cfg.Resizable || !cfg.Decorations {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Background != def.Background {
		t.Fatalf("background default lost: %+v", cfg.Background)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad color",
			content: "window:\n  background: \"not-a-color\"\n",
			wantErr: "window.background",
		},
		{
			name:    "zero width",
			content: "window:\n  width: 0\n",
			wantErr: "window.width",
		},
		{
			name:    "min exceeds max",
			content: "window:\n  min_width: 900\n  max_width: 400\n",
			wantErr: "min_width",
		},
		{
			name:    "negative timeout",
			content: "window:\n  dispatch_timeout_ms: -5\n",
			wantErr: "dispatch_timeout_ms",
		},
		{
			name:    "unknown key",
			content: "window:\n  widht: 800\n",
			wantErr: "widht",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := LoadFromPath(path)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestWindowOptions(t *testing.T) {
	cfg := Default()
	cfg.Title = "opts"
	cfg.MinWidth = 100
	cfg.MinHeight = 80
	cfg.Resizable = false
	cfg.DispatchTimeout = time.Second

	opts := cfg.WindowOptions()
	if opts.Title != "opts" || opts.Width != cfg.Width || opts.Height != cfg.Height {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.MinSize == nil || opts.MinSize.Width != 100 || opts.MinSize.Height != 80 {
		t.Fatalf("min size not carried: %+v", opts.MinSize)
	}
	if opts.MaxSize != nil {
		t.Fatalf("max size should be unset, got %+v", opts.MaxSize)
	}
	if opts.Resizable == nil || *opts.Resizable {
		t.Fatalf("resizable not carried: %+v", opts.Resizable)
	}
	if opts.Background == nil || *opts.Background != cfg.Background {
		t.Fatalf("background not carried")
	}
	if opts.DispatchTimeout != time.Second {
		t.Fatalf("dispatch timeout not carried: %v", opts.DispatchTimeout)
	}
}
