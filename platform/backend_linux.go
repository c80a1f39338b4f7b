//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/sill/internal/x11"
)

// X11Backend implements Backend on top of an X11 connection.
type X11Backend struct {
	conn   *x11.Connection
	events chan Event

	// styles caches the last style word applied per window. X11 has no
	// readable style register; the cache is only touched from the owning
	// thread, like every other mutating call.
	styles map[WindowID]StyleBits
}

var _ Backend = (*X11Backend)(nil)

// NewX11Backend opens a fresh connection to the X server.
func NewX11Backend() (*X11Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	b := &X11Backend{
		conn:   conn,
		events: make(chan Event, 64),
		styles: make(map[WindowID]StyleBits),
	}
	go b.forwardEvents()
	return b, nil
}

// NewNativeBackend returns the platform's native backend.
func NewNativeBackend() (Backend, error) {
	return NewX11Backend()
}

func (b *X11Backend) forwardEvents() {
	defer close(b.events)

	for ev := range b.conn.Events() {
		out := Event{Window: WindowID(ev.Window)}

		switch ev.Kind {
		case x11.EventConfigure:
			out.Kind = EventConfigure
			out.Bounds = Rect{X: ev.X, Y: ev.Y, Width: ev.Width, Height: ev.Height}
		case x11.EventFocus:
			out.Kind = EventFocus
			out.Focused = ev.Focused
		case x11.EventState:
			out.Kind = EventState
			out.Minimized = ev.Minimized
			out.Maximized = ev.Maximized
		case x11.EventDecorations:
			out.Kind = EventDecorations
			out.Decorated = ev.Decorated
		case x11.EventCloseRequest:
			out.Kind = EventCloseRequest
		case x11.EventDestroyed:
			out.Kind = EventDestroyed
		default:
			continue
		}

		b.events <- out
	}
}

func (b *X11Backend) Create(opts CreateOptions) (WindowID, error) {
	id, err := b.conn.CreateWindow(opts.Title, opts.Width, opts.Height)
	if err != nil {
		return 0, err
	}
	b.styles[WindowID(id)] = StyleDefault
	return WindowID(id), nil
}

func (b *X11Backend) Destroy(id WindowID) error {
	delete(b.styles, id)
	return b.conn.DestroyWindow(xproto.Window(id))
}

func (b *X11Backend) Title(id WindowID) (string, error) {
	return b.conn.Title(xproto.Window(id))
}

func (b *X11Backend) SetTitle(id WindowID, title string) error {
	return b.conn.SetTitle(xproto.Window(id), title)
}

func (b *X11Backend) ClientSize(id WindowID) (Size, error) {
	w, h, err := b.conn.ClientSize(xproto.Window(id))
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

func (b *X11Backend) SetClientSize(id WindowID, size Size) error {
	return b.conn.SetClientSize(xproto.Window(id), size.Width, size.Height)
}

func (b *X11Backend) Show(id WindowID) error {
	return b.conn.Show(xproto.Window(id))
}

func (b *X11Backend) Hide(id WindowID) error {
	return b.conn.Hide(xproto.Window(id))
}

func (b *X11Backend) Focus(id WindowID) error {
	return b.conn.Focus(xproto.Window(id))
}

func (b *X11Backend) Focused(id WindowID) (bool, error) {
	return b.conn.IsFocused(xproto.Window(id))
}

func (b *X11Backend) Minimized(id WindowID) (bool, error) {
	return b.conn.IsMinimized(xproto.Window(id))
}

func (b *X11Backend) Maximized(id WindowID) (bool, error) {
	return b.conn.IsMaximized(xproto.Window(id))
}

func (b *X11Backend) SetMinimized(id WindowID, enabled bool) error {
	return b.conn.SetMinimized(xproto.Window(id), enabled)
}

func (b *X11Backend) SetMaximized(id WindowID, enabled bool) error {
	return b.conn.SetMaximized(xproto.Window(id), enabled)
}

func (b *X11Backend) AlwaysOnTop(id WindowID) (bool, error) {
	return b.conn.IsAlwaysOnTop(xproto.Window(id))
}

func (b *X11Backend) SetAlwaysOnTop(id WindowID, enabled bool) error {
	return b.conn.SetAlwaysOnTop(xproto.Window(id), enabled)
}

func (b *X11Backend) Style(id WindowID) (StyleBits, error) {
	style, ok := b.styles[id]
	if !ok {
		return 0, fmt.Errorf("unknown window %d", id)
	}
	return style, nil
}

func (b *X11Backend) SetStyle(id WindowID, style StyleBits) error {
	dec := x11.Decorations{
		Title:    style&StyleCaption != 0,
		Menu:     style&StyleSysMenu != 0,
		Minimize: style&StyleMinimizeBox != 0,
		Maximize: style&StyleMaximizeBox != 0,
		Resize:   style&StyleThickFrame != 0,
	}
	dec.Border = dec.Title || dec.Menu || dec.Minimize || dec.Maximize || dec.Resize

	if err := b.conn.ApplyDecorations(xproto.Window(id), dec); err != nil {
		return err
	}

	// Motif hints only change the frame drawing; losing the sizing border
	// must also pin the geometry or the WM keeps resizing the window. The
	// caller republishes its own bounds when the border comes back.
	old := b.styles[id]
	if old&StyleThickFrame != 0 && style&StyleThickFrame == 0 {
		if err := b.conn.LockSize(xproto.Window(id)); err != nil {
			return err
		}
	}
	b.styles[id] = style
	return nil
}

func (b *X11Backend) SetBackground(id WindowID, r, g, b8, a uint8) error {
	pixel := uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b8)
	return b.conn.SetBackground(xproto.Window(id), pixel)
}

func (b *X11Backend) SetSizeHints(id WindowID, min, max Size) error {
	return b.conn.SetSizeHints(xproto.Window(id), min.Width, min.Height, max.Width, max.Height)
}

func (b *X11Backend) DefaultMinSize() Size {
	return Size{Width: 1, Height: 1}
}

func (b *X11Backend) DefaultMaxSize() Size {
	w, h := b.conn.ScreenSize()
	return Size{Width: w, Height: h}
}

func (b *X11Backend) BeginMoveDrag(id WindowID) error {
	return b.conn.BeginMoveDrag(xproto.Window(id))
}

func (b *X11Backend) BeginResizeDrag(id WindowID, dir Direction) error {
	return b.conn.BeginResizeDrag(xproto.Window(id), int(dir))
}

func (b *X11Backend) Events() <-chan Event {
	return b.events
}

func (b *X11Backend) Shutdown() error {
	b.conn.Close()
	return nil
}
