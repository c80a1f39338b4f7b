// Package window exposes a native top-level window behind a thread-affine
// façade. The goroutine that creates a Window is locked to its OS thread
// and becomes the owning thread: it alone touches native state, and it
// must drive the message pump (Run or RunOnce). Every other goroutine may
// still call any operation; the call is marshalled onto the owning thread
// and the caller blocks until it has run there.
package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/1broseidon/sill/internal/dispatch"
	"github.com/1broseidon/sill/platform"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Position is a screen coordinate pair.
type Position struct {
	X int
	Y int
}

// resizableBits are the style bits that together govern resizability.
// Reading back true requires every one of them; setting toggles them as a
// unit.
const resizableBits = platform.StyleThickFrame | platform.StyleMinimizeBox |
	platform.StyleMaximizeBox

// decorationBits are the style bits that together govern decorations.
const decorationBits = platform.StyleCaption | platform.StyleMinimizeBox |
	platform.StyleMaximizeBox | platform.StyleSysMenu

// liveWindows counts windows whose native handle is alive, process-wide.
// External subsystems (a shared render surface, for instance) key their
// lazy setup and teardown off this.
var liveWindows atomic.Int64

// LiveCount reports the number of live windows in the process.
func LiveCount() int {
	return int(liveWindows.Load())
}

// ErrNotOwner is returned when the pump is driven from a thread other than
// the window's owning thread.
var ErrNotOwner = errors.New("window: pump must run on the window's owning thread")

type windowState int

const (
	stateRestored windowState = iota
	stateMinimized
	stateMaximized
)

// Window is the externally visible handle for one native top-level window.
type Window struct {
	backend platform.Backend
	id      platform.WindowID
	disp    *dispatch.Dispatcher
	log     *slog.Logger

	events registry

	// mu guards the cached fields that may be read without marshalling.
	mu      sync.Mutex
	bg      Color
	minSize *Size
	maxSize *Size

	// Owning-thread state. Only the pump and marshalled closures touch
	// these.
	destroyed  bool
	quit       bool
	lastState  windowState
	lastBounds platform.Rect
}

// Options configures window creation. Nil pointer fields keep the platform
// default.
type Options struct {
	Title  string
	Width  int
	Height int

	MinSize *Size
	MaxSize *Size

	Resizable   *bool // default true
	Decorations *bool // default true
	AlwaysOnTop bool
	Background  *Color

	// DispatchTimeout bounds cross-thread calls. Zero means block until
	// the pump runs them, however long that takes.
	DispatchTimeout time.Duration

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "sill"
	}
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// New creates a native window owned by the calling goroutine's OS thread.
// The goroutine is locked to that thread and must drive the pump; a
// construction failure leaves no window behind.
func New(backend platform.Backend, opts Options) (*Window, error) {
	opts = opts.withDefaults()

	// The creating thread owns the native handle for the window's entire
	// lifetime.
	runtime.LockOSThread()

	id, err := backend.Create(platform.CreateOptions{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
	})
	if err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("create native window: %w", err)
	}

	w := &Window{
		backend: backend,
		id:      id,
		disp:    dispatch.New(opts.DispatchTimeout),
		log:     opts.Logger,
		lastBounds: platform.Rect{
			Width:  opts.Width,
			Height: opts.Height,
		},
	}

	if err := w.applyOptions(opts); err != nil {
		_ = backend.Destroy(id)
		runtime.UnlockOSThread()
		return nil, err
	}

	liveWindows.Add(1)
	w.log.Debug("window created", "id", id, "live", LiveCount())
	return w, nil
}

// applyOptions runs at creation time, on the owning thread; the dispatch
// helpers all execute inline here.
func (w *Window) applyOptions(opts Options) error {
	if opts.Resizable != nil && !*opts.Resizable {
		if err := w.SetResizable(false); err != nil {
			return fmt.Errorf("apply resizable option: %w", err)
		}
	}
	if opts.Decorations != nil && !*opts.Decorations {
		if err := w.SetDecorations(false); err != nil {
			return fmt.Errorf("apply decorations option: %w", err)
		}
	}
	if opts.AlwaysOnTop {
		if err := w.SetAlwaysOnTop(true); err != nil {
			return fmt.Errorf("apply always-on-top option: %w", err)
		}
	}
	if opts.Background != nil {
		if err := w.SetBackground(*opts.Background); err != nil {
			return fmt.Errorf("apply background option: %w", err)
		}
	}
	if opts.MinSize != nil {
		if err := w.SetMinSize(opts.MinSize.Width, opts.MinSize.Height); err != nil {
			return fmt.Errorf("apply min size option: %w", err)
		}
	}
	if opts.MaxSize != nil {
		if err := w.SetMaxSize(opts.MaxSize.Width, opts.MaxSize.Height); err != nil {
			return fmt.Errorf("apply max size option: %w", err)
		}
	}
	return nil
}

// ID returns the native window identifier.
func (w *Window) ID() platform.WindowID {
	return w.id
}

// Focused reports whether the window has input focus.
func (w *Window) Focused() (bool, error) {
	return dispatch.Do(w.disp, func() (bool, error) {
		return w.backend.Focused(w.id)
	})
}

// Minimized reports whether the window is iconified.
func (w *Window) Minimized() (bool, error) {
	return dispatch.Do(w.disp, func() (bool, error) {
		return w.backend.Minimized(w.id)
	})
}

// Maximized reports whether the window is maximized.
func (w *Window) Maximized() (bool, error) {
	return dispatch.Do(w.disp, func() (bool, error) {
		return w.backend.Maximized(w.id)
	})
}

// Resizable reports whether every resizable-governing style bit is set.
func (w *Window) Resizable() (bool, error) {
	return w.styleAll(resizableBits)
}

// Decorations reports whether every decoration-governing style bit is set.
func (w *Window) Decorations() (bool, error) {
	return w.styleAll(decorationBits)
}

// AlwaysOnTop reports whether the window stays above normal windows.
func (w *Window) AlwaysOnTop() (bool, error) {
	return dispatch.Do(w.disp, func() (bool, error) {
		return w.backend.AlwaysOnTop(w.id)
	})
}

// Background returns the cached background color. The cache is
// authoritative, so no thread hop is needed.
func (w *Window) Background() Color {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bg
}

// Title returns the window title.
func (w *Window) Title() (string, error) {
	return dispatch.Do(w.disp, func() (string, error) {
		return w.backend.Title(w.id)
	})
}

// Size returns the client area dimensions.
func (w *Window) Size() (Size, error) {
	return dispatch.Do(w.disp, func() (Size, error) {
		s, err := w.backend.ClientSize(w.id)
		if err != nil {
			return Size{}, err
		}
		return Size{Width: s.Width, Height: s.Height}, nil
	})
}

// MinSize returns the explicit minimum-size override if one was set, else
// the platform default bound.
func (w *Window) MinSize() (Size, error) {
	return dispatch.Do(w.disp, func() (Size, error) {
		w.mu.Lock()
		override := w.minSize
		w.mu.Unlock()
		if override != nil {
			return *override, nil
		}
		d := w.backend.DefaultMinSize()
		return Size{Width: d.Width, Height: d.Height}, nil
	})
}

// MaxSize returns the explicit maximum-size override if one was set, else
// the platform default bound.
func (w *Window) MaxSize() (Size, error) {
	return dispatch.Do(w.disp, func() (Size, error) {
		w.mu.Lock()
		override := w.maxSize
		w.mu.Unlock()
		if override != nil {
			return *override, nil
		}
		d := w.backend.DefaultMaxSize()
		return Size{Width: d.Width, Height: d.Height}, nil
	})
}

// Hide unmaps the window.
func (w *Window) Hide() error {
	return w.disp.Sync(func() error { return w.backend.Hide(w.id) })
}

// Show maps the window.
func (w *Window) Show() error {
	return w.disp.Sync(func() error { return w.backend.Show(w.id) })
}

// Focus requests input focus.
func (w *Window) Focus() error {
	return w.disp.Sync(func() error { return w.backend.Focus(w.id) })
}

// Close tears the window down: close subscribers may veto, otherwise the
// native handle is released, Closed fires, and the pump stops. Close is
// terminal; no operation may be issued afterwards.
func (w *Window) Close() error {
	return w.disp.Sync(func() error {
		w.requestClose()
		return nil
	})
}

// SetMinimized iconifies or restores the window.
func (w *Window) SetMinimized(enabled bool) error {
	return w.disp.Sync(func() error { return w.backend.SetMinimized(w.id, enabled) })
}

// SetMaximized maximizes or restores the window.
func (w *Window) SetMaximized(enabled bool) error {
	return w.disp.Sync(func() error { return w.backend.SetMaximized(w.id, enabled) })
}

// SetResizable sets or clears every resizable-governing style bit as a
// unit.
func (w *Window) SetResizable(enabled bool) error {
	return w.setStyleMask(resizableBits, enabled)
}

// SetDecorations sets or clears every decoration-governing style bit as a
// unit.
func (w *Window) SetDecorations(enabled bool) error {
	return w.setStyleMask(decorationBits, enabled)
}

// SetAlwaysOnTop keeps the window above normal windows, or stops doing so.
func (w *Window) SetAlwaysOnTop(enabled bool) error {
	return w.disp.Sync(func() error { return w.backend.SetAlwaysOnTop(w.id, enabled) })
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) error {
	return w.disp.Sync(func() error { return w.backend.SetTitle(w.id, title) })
}

// SetBackground updates the cached background color and asks the native
// surface to repaint with it. The cache is updated first, so Background
// observes the new value even before the repaint lands.
func (w *Window) SetBackground(c Color) error {
	w.mu.Lock()
	w.bg = c
	w.mu.Unlock()

	return w.disp.Sync(func() error {
		return w.backend.SetBackground(w.id, c.R, c.G, c.B, c.A)
	})
}

// SetSize resizes the client area.
func (w *Window) SetSize(width, height int) error {
	return w.disp.Sync(func() error {
		return w.backend.SetClientSize(w.id, platform.Size{Width: width, Height: height})
	})
}

// SetMinSize sets an explicit minimum-size override and republishes the
// native size bounds.
func (w *Window) SetMinSize(width, height int) error {
	return w.disp.Sync(func() error {
		w.mu.Lock()
		w.minSize = &Size{Width: width, Height: height}
		w.mu.Unlock()
		return w.publishSizeHints()
	})
}

// SetMaxSize sets an explicit maximum-size override and republishes the
// native size bounds.
func (w *Window) SetMaxSize(width, height int) error {
	return w.disp.Sync(func() error {
		w.mu.Lock()
		w.maxSize = &Size{Width: width, Height: height}
		w.mu.Unlock()
		return w.publishSizeHints()
	})
}

// publishSizeHints pushes the current overrides to the native window.
// Unset overrides publish as zero, leaving that bound platform-governed.
func (w *Window) publishSizeHints() error {
	w.mu.Lock()
	var min, max platform.Size
	if w.minSize != nil {
		min = platform.Size{Width: w.minSize.Width, Height: w.minSize.Height}
	}
	if w.maxSize != nil {
		max = platform.Size{Width: w.maxSize.Width, Height: w.maxSize.Height}
	}
	w.mu.Unlock()

	return w.backend.SetSizeHints(w.id, min, max)
}

// StartDrag tells the platform the user began moving the window via its
// title bar. Fire-and-forget; completion is not modeled.
func (w *Window) StartDrag() error {
	return w.disp.Sync(func() error { return w.backend.BeginMoveDrag(w.id) })
}

// StartResize tells the platform the user began resizing the window from
// the given edge or corner. Combinations without a native translation
// (opposite pairs) are a no-op.
func (w *Window) StartResize(edge Edge) error {
	dir, ok := edge.direction()
	if !ok {
		return nil
	}
	return w.disp.Sync(func() error { return w.backend.BeginResizeDrag(w.id, dir) })
}

func (w *Window) styleAll(mask platform.StyleBits) (bool, error) {
	return dispatch.Do(w.disp, func() (bool, error) {
		style, err := w.backend.Style(w.id)
		if err != nil {
			return false, err
		}
		return style&mask == mask, nil
	})
}

func (w *Window) setStyleMask(mask platform.StyleBits, enabled bool) error {
	return w.disp.Sync(func() error {
		style, err := w.backend.Style(w.id)
		if err != nil {
			return err
		}
		if enabled {
			style |= mask
		} else {
			style &^= mask
		}
		if err := w.backend.SetStyle(w.id, style); err != nil {
			return err
		}
		// Regaining the sizing border unpins any geometry lock the backend
		// applied while it was gone; restore the caller's own bounds.
		if enabled && mask&platform.StyleThickFrame != 0 {
			return w.publishSizeHints()
		}
		return nil
	})
}

// requestClose runs on the owning thread: consult close subscribers, then
// tear down unless vetoed.
func (w *Window) requestClose() {
	if w.destroyed {
		return
	}
	if w.events.close.Emit() {
		w.log.Debug("close vetoed", "id", w.id)
		return
	}
	w.teardown(true)
}

// teardown releases the native handle (when it still exists), fires
// Closed, and stops the pump. It runs on the owning thread and is
// idempotent.
func (w *Window) teardown(destroyNative bool) {
	if w.destroyed {
		return
	}
	w.destroyed = true

	if destroyNative {
		if err := w.backend.Destroy(w.id); err != nil {
			w.log.Warn("destroy native window", "id", w.id, "error", err)
		}
	}

	w.events.closed.Emit(struct{}{})

	live := liveWindows.Add(-1)
	w.log.Debug("window closed", "id", w.id, "live", live)

	w.quit = true
	w.disp.Close()
}
