// Package x11 implements the native window layer on top of the X protocol.
// It owns the X connection, the per-window event translation, and the
// EWMH/ICCCM/Motif plumbing behind geometry, state and decoration changes.
package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	atoms  atoms
	events chan Event

	// tracked is the back-reference from native window ids to the wrapper
	// state used during event translation. Entries are removed before the
	// native window is destroyed so stale notifications cannot resolve to
	// a dead window.
	mu      sync.Mutex
	tracked map[xproto.Window]struct{}
}

// atoms holds the interned atoms the connection needs. Interning happens
// exactly once, at connection setup.
type atoms struct {
	wmProtocols     xproto.Atom
	wmDeleteWindow  xproto.Atom
	wmChangeState   xproto.Atom
	netWmState      xproto.Atom
	netWmMoveresize xproto.Atom
	motifWmHints    xproto.Atom
}

// NewConnection establishes a connection to the X11 server and interns the
// atoms used by the window layer.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	c := &Connection{
		XUtil:   xu,
		Root:    xu.RootWin(),
		events:  make(chan Event, 64),
		tracked: make(map[xproto.Window]struct{}),
	}

	if err := c.internAtoms(); err != nil {
		xu.Conn().Close()
		return nil, err
	}

	go c.readEvents()
	return c, nil
}

func (c *Connection) internAtoms() error {
	intern := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, fmt.Errorf("intern atom %s: %w", name, err)
		}
		return reply.Atom, nil
	}

	var err error
	if c.atoms.wmProtocols, err = intern("WM_PROTOCOLS"); err != nil {
		return err
	}
	if c.atoms.wmDeleteWindow, err = intern("WM_DELETE_WINDOW"); err != nil {
		return err
	}
	if c.atoms.wmChangeState, err = intern("WM_CHANGE_STATE"); err != nil {
		return err
	}
	if c.atoms.netWmState, err = intern("_NET_WM_STATE"); err != nil {
		return err
	}
	if c.atoms.netWmMoveresize, err = intern("_NET_WM_MOVERESIZE"); err != nil {
		return err
	}
	if c.atoms.motifWmHints, err = intern("_MOTIF_WM_HINTS"); err != nil {
		return err
	}
	return nil
}

// Events delivers translated notifications for tracked windows. The channel
// is closed when the connection shuts down.
func (c *Connection) Events() <-chan Event {
	return c.events
}

// ScreenSize returns the root screen dimensions in pixels.
func (c *Connection) ScreenSize() (int, int) {
	screen := c.XUtil.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// Close disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

func (c *Connection) track(id xproto.Window) {
	c.mu.Lock()
	c.tracked[id] = struct{}{}
	c.mu.Unlock()
}

func (c *Connection) untrack(id xproto.Window) {
	c.mu.Lock()
	delete(c.tracked, id)
	c.mu.Unlock()
}

func (c *Connection) isTracked(id xproto.Window) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tracked[id]
	return ok
}

// sendToRoot delivers a client message to the root window the way window
// managers expect state-change requests.
func (c *Connection) sendToRoot(ev xproto.ClientMessageEvent) error {
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// conn is shorthand for the raw xgb connection.
func (c *Connection) conn() *xgb.Conn {
	return c.XUtil.Conn()
}
