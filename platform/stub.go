package platform

import (
	"fmt"
	"sync"
)

// StubBackend is an in-memory Backend for headless operation and tests. It
// records every mutation, lets tests flip individual style bits the way an
// external actor would, and delivers injected events through the same
// channel a native backend uses.
type StubBackend struct {
	mu      sync.Mutex
	nextID  WindowID
	windows map[WindowID]*stubWindow
	events  chan Event

	// DefaultMin and DefaultMax stand in for platform-queried bounds.
	DefaultMin Size
	DefaultMax Size

	// CreateErr, when set, makes Create fail. Used to exercise the
	// construction-failure path.
	CreateErr error
}

type stubWindow struct {
	title     string
	size      Size
	minHint   Size
	maxHint   Size
	visible   bool
	focused   bool
	minimized bool
	maximized bool
	onTop     bool
	style     StyleBits
	bg        [4]uint8

	moveDrags   int
	resizeDrags []Direction
}

var _ Backend = (*StubBackend)(nil)

// NewStubBackend returns a stub with conventional default bounds.
func NewStubBackend() *StubBackend {
	return &StubBackend{
		windows:    make(map[WindowID]*stubWindow),
		events:     make(chan Event, 64),
		DefaultMin: Size{Width: 120, Height: 40},
		DefaultMax: Size{Width: 3840, Height: 2160},
	}
}

func (b *StubBackend) get(id WindowID) (*stubWindow, error) {
	w, ok := b.windows[id]
	if !ok {
		return nil, fmt.Errorf("unknown window %d", id)
	}
	return w, nil
}

func (b *StubBackend) Create(opts CreateOptions) (WindowID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.CreateErr != nil {
		return 0, b.CreateErr
	}

	b.nextID++
	b.windows[b.nextID] = &stubWindow{
		title: opts.Title,
		size:  Size{Width: opts.Width, Height: opts.Height},
		style: StyleDefault,
	}
	return b.nextID, nil
}

func (b *StubBackend) Destroy(id WindowID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.get(id); err != nil {
		return err
	}
	delete(b.windows, id)
	return nil
}

func (b *StubBackend) Title(id WindowID) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return "", err
	}
	return w.title, nil
}

func (b *StubBackend) SetTitle(id WindowID, title string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return err
	}
	w.title = title
	return nil
}

func (b *StubBackend) ClientSize(id WindowID) (Size, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return Size{}, err
	}
	return w.size, nil
}

func (b *StubBackend) SetClientSize(id WindowID, size Size) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return err
	}
	w.size = size
	return nil
}

func (b *StubBackend) Show(id WindowID) error {
	return b.setBool(id, func(w *stubWindow) { w.visible = true })
}

func (b *StubBackend) Hide(id WindowID) error {
	return b.setBool(id, func(w *stubWindow) { w.visible = false })
}

func (b *StubBackend) Focus(id WindowID) error {
	return b.setBool(id, func(w *stubWindow) { w.focused = true })
}

func (b *StubBackend) setBool(id WindowID, apply func(*stubWindow)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return err
	}
	apply(w)
	return nil
}

func (b *StubBackend) Focused(id WindowID) (bool, error) {
	return b.getBool(id, func(w *stubWindow) bool { return w.focused })
}

func (b *StubBackend) Minimized(id WindowID) (bool, error) {
	return b.getBool(id, func(w *stubWindow) bool { return w.minimized })
}

func (b *StubBackend) Maximized(id WindowID) (bool, error) {
	return b.getBool(id, func(w *stubWindow) bool { return w.maximized })
}

func (b *StubBackend) AlwaysOnTop(id WindowID) (bool, error) {
	return b.getBool(id, func(w *stubWindow) bool { return w.onTop })
}

func (b *StubBackend) getBool(id WindowID, read func(*stubWindow) bool) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return false, err
	}
	return read(w), nil
}

func (b *StubBackend) SetMinimized(id WindowID, enabled bool) error {
	return b.setBool(id, func(w *stubWindow) { w.minimized = enabled })
}

func (b *StubBackend) SetMaximized(id WindowID, enabled bool) error {
	return b.setBool(id, func(w *stubWindow) { w.maximized = enabled })
}

func (b *StubBackend) SetAlwaysOnTop(id WindowID, enabled bool) error {
	return b.setBool(id, func(w *stubWindow) { w.onTop = enabled })
}

func (b *StubBackend) Style(id WindowID) (StyleBits, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return 0, err
	}
	return w.style, nil
}

func (b *StubBackend) SetStyle(id WindowID, style StyleBits) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return err
	}
	w.style = style
	return nil
}

func (b *StubBackend) SetBackground(id WindowID, r, g, bl, a uint8) error {
	return b.setBool(id, func(w *stubWindow) { w.bg = [4]uint8{r, g, bl, a} })
}

func (b *StubBackend) SetSizeHints(id WindowID, min, max Size) error {
	return b.setBool(id, func(w *stubWindow) {
		w.minHint = min
		w.maxHint = max
	})
}

func (b *StubBackend) DefaultMinSize() Size { return b.DefaultMin }
func (b *StubBackend) DefaultMaxSize() Size { return b.DefaultMax }

func (b *StubBackend) BeginMoveDrag(id WindowID) error {
	return b.setBool(id, func(w *stubWindow) { w.moveDrags++ })
}

func (b *StubBackend) BeginResizeDrag(id WindowID, dir Direction) error {
	return b.setBool(id, func(w *stubWindow) { w.resizeDrags = append(w.resizeDrags, dir) })
}

func (b *StubBackend) Events() <-chan Event {
	return b.events
}

func (b *StubBackend) Shutdown() error {
	return nil
}

// Deliver injects a native-style event, as if the window system had sent
// it.
func (b *StubBackend) Deliver(ev Event) {
	b.events <- ev
}

// FlipStyleBits mutates a subset of the window's style bits directly,
// bypassing SetStyle, the way an external actor could on a real platform.
func (b *StubBackend) FlipStyleBits(id WindowID, clear, set StyleBits) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.get(id)
	if err != nil {
		return err
	}
	w.style = (w.style &^ clear) | set
	return nil
}

// MoveDrags reports how many interactive moves were started.
func (b *StubBackend) MoveDrags(id WindowID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, err := b.get(id); err == nil {
		return w.moveDrags
	}
	return 0
}

// ResizeDrags reports the directions of started interactive resizes.
func (b *StubBackend) ResizeDrags(id WindowID) []Direction {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, err := b.get(id); err == nil {
		out := make([]Direction, len(w.resizeDrags))
		copy(out, w.resizeDrags)
		return out
	}
	return nil
}

// Visible reports the mapped state.
func (b *StubBackend) Visible(id WindowID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, err := b.get(id); err == nil {
		return w.visible
	}
	return false
}

// Background reports the last background color applied natively.
func (b *StubBackend) Background(id WindowID) [4]uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, err := b.get(id); err == nil {
		return w.bg
	}
	return [4]uint8{}
}

// SizeHints reports the last published min/max hints.
func (b *StubBackend) SizeHints(id WindowID) (min, max Size) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, err := b.get(id); err == nil {
		return w.minHint, w.maxHint
	}
	return Size{}, Size{}
}

// Exists reports whether the native handle is still alive.
func (b *StubBackend) Exists(id WindowID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.windows[id]
	return ok
}
