package mcp

import (
	"context"
	"log/slog"
	"runtime"
	"testing"

	"github.com/1broseidon/sill/platform"
	"github.com/1broseidon/sill/window"
)

// newTestServer creates an MCP server over a stub-backed window whose pump
// runs on its own locked OS thread. Handlers are then exercised from the
// test goroutine, which crosses the dispatch boundary like a real transport.
func newTestServer(t *testing.T) (*Server, *platform.StubBackend) {
	t.Helper()

	backend := platform.NewStubBackend()
	ready := make(chan *window.Window, 1)
	errc := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		win, err := window.New(backend, window.Options{Title: "mcp-test", Width: 400, Height: 300})
		if err != nil {
			errc <- err
			return
		}
		ready <- win
		errc <- win.Run()
	}()

	var win *window.Window
	select {
	case win = <-ready:
	case err := <-errc:
		t.Fatalf("create window: %v", err)
	}
	t.Cleanup(func() {
		_ = win.Close()
		<-errc
	})

	return NewServer(win, slog.Default()), backend
}

func TestWindowStateReportsWindow(t *testing.T) {
	s, _ := newTestServer(t)

	_, out, err := s.handleWindowState(context.Background(), nil, WindowStateInput{})
	if err != nil {
		t.Fatalf("window_state: %v", err)
	}
	if out.Title != "mcp-test" {
		t.Fatalf("title = %q", out.Title)
	}
	if out.Width != 400 || out.Height != 300 {
		t.Fatalf("size = %dx%d", out.Width, out.Height)
	}
	if !out.Resizable || !out.Decorations || out.AlwaysOnTop {
		t.Fatalf("unexpected flags: %+v", out)
	}
}

func TestSetTitle(t *testing.T) {
	s, _ := newTestServer(t)

	_, out, err := s.handleSetTitle(context.Background(), nil, SetTitleInput{Title: "renamed"})
	if err != nil {
		t.Fatalf("set_title: %v", err)
	}
	if out.Title != "renamed" {
		t.Fatalf("output title = %q", out.Title)
	}
	title, err := s.win.Title()
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "renamed" {
		t.Fatalf("window title = %q", title)
	}
}

func TestSetSizeAndBounds(t *testing.T) {
	s, backend := newTestServer(t)

	minW, minH := 200, 150
	_, out, err := s.handleSetSize(context.Background(), nil, SetSizeInput{
		Width:     800,
		Height:    600,
		MinWidth:  &minW,
		MinHeight: &minH,
	})
	if err != nil {
		t.Fatalf("set_size: %v", err)
	}
	if out.Width != 800 || out.Height != 600 {
		t.Fatalf("output size = %dx%d", out.Width, out.Height)
	}
	min, _ := backend.SizeHints(s.win.ID())
	if min.Width != 200 || min.Height != 150 {
		t.Fatalf("published min hint = %+v", min)
	}
}

func TestSetSizePartialKeepsOtherDimension(t *testing.T) {
	s, _ := newTestServer(t)

	_, out, err := s.handleSetSize(context.Background(), nil, SetSizeInput{Width: 1000})
	if err != nil {
		t.Fatalf("set_size: %v", err)
	}
	if out.Width != 1000 || out.Height != 300 {
		t.Fatalf("size = %dx%d, want 1000x300", out.Width, out.Height)
	}
}

func TestSetVisibility(t *testing.T) {
	s, backend := newTestServer(t)

	if _, _, err := s.handleSetVisibility(context.Background(), nil, SetVisibilityInput{Action: "hide"}); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if backend.Visible(s.win.ID()) {
		t.Fatalf("window still visible after hide")
	}
	if _, _, err := s.handleSetVisibility(context.Background(), nil, SetVisibilityInput{Action: "show"}); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !backend.Visible(s.win.ID()) {
		t.Fatalf("window not visible after show")
	}
	if _, _, err := s.handleSetVisibility(context.Background(), nil, SetVisibilityInput{Action: "vanish"}); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestSetFlag(t *testing.T) {
	s, _ := newTestServer(t)

	cases := []struct {
		flag  string
		check func() (bool, error)
	}{
		{"resizable", s.win.Resizable},
		{"decorations", s.win.Decorations},
		{"always_on_top", s.win.AlwaysOnTop},
		{"minimized", s.win.Minimized},
		{"maximized", s.win.Maximized},
	}
	for _, tc := range cases {
		want := tc.flag == "resizable" || tc.flag == "decorations"
		_, out, err := s.handleSetFlag(context.Background(), nil, SetFlagInput{Flag: tc.flag, Enabled: !want})
		if err != nil {
			t.Fatalf("set_flag %s: %v", tc.flag, err)
		}
		if out.Flag != tc.flag || out.Enabled == want {
			t.Fatalf("set_flag %s output = %+v", tc.flag, out)
		}
		got, err := tc.check()
		if err != nil {
			t.Fatalf("read %s: %v", tc.flag, err)
		}
		if got == want {
			t.Fatalf("%s unchanged after set_flag", tc.flag)
		}
	}

	if _, _, err := s.handleSetFlag(context.Background(), nil, SetFlagInput{Flag: "translucent", Enabled: true}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestStartResize(t *testing.T) {
	s, backend := newTestServer(t)

	_, out, err := s.handleStartResize(context.Background(), nil, StartResizeInput{Edge: "bottom-right"})
	if err != nil {
		t.Fatalf("start_resize: %v", err)
	}
	if out.Move || out.Edge != "bottom-right" {
		t.Fatalf("output = %+v", out)
	}
	drags := backend.ResizeDrags(s.win.ID())
	if len(drags) != 1 || drags[0] != platform.SizeBottomRight {
		t.Fatalf("resize drags = %v", drags)
	}

	_, out, err = s.handleStartResize(context.Background(), nil, StartResizeInput{})
	if err != nil {
		t.Fatalf("start move: %v", err)
	}
	if !out.Move {
		t.Fatalf("expected move output, got %+v", out)
	}
	if backend.MoveDrags(s.win.ID()) != 1 {
		t.Fatalf("move drag not recorded")
	}

	if _, _, err := s.handleStartResize(context.Background(), nil, StartResizeInput{Edge: "diagonal"}); err == nil {
		t.Fatalf("expected error for bad edge")
	}
}
