package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// CreateWindow creates an unmapped top-level window and registers it for
// event translation.
func (c *Connection) CreateWindow(title string, width, height int) (xproto.Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("allocate window id: %w", err)
	}

	mask := uint32(xproto.EventMaskStructureNotify |
		xproto.EventMaskFocusChange |
		xproto.EventMaskPropertyChange |
		xproto.EventMaskExposure)

	err = win.CreateChecked(c.Root, 0, 0, width, height, xproto.CwEventMask, mask)
	if err != nil {
		return 0, fmt.Errorf("create window: %w", err)
	}

	if err := c.setProtocols(win.Id); err != nil {
		xproto.DestroyWindow(c.conn(), win.Id)
		return 0, err
	}

	if title != "" {
		if err := c.SetTitle(win.Id, title); err != nil {
			xproto.DestroyWindow(c.conn(), win.Id)
			return 0, err
		}
	}

	c.track(win.Id)
	return win.Id, nil
}

// setProtocols opts the window into WM_DELETE_WINDOW so closes arrive as
// client messages instead of the server killing the connection.
func (c *Connection) setProtocols(id xproto.Window) error {
	data := make([]byte, 4)
	xgb.Put32(data, uint32(c.atoms.wmDeleteWindow))

	return xproto.ChangePropertyChecked(
		c.conn(),
		xproto.PropModeReplace,
		id,
		c.atoms.wmProtocols,
		xproto.AtomAtom,
		32,
		1,
		data,
	).Check()
}

// DestroyWindow clears the event-translation back-reference and releases
// the native window.
func (c *Connection) DestroyWindow(id xproto.Window) error {
	c.untrack(id)
	return xproto.DestroyWindowChecked(c.conn(), id).Check()
}

// Title returns the window title, preferring the EWMH name over the ICCCM
// fallback.
func (c *Connection) Title(id xproto.Window) (string, error) {
	title, err := ewmh.WmNameGet(c.XUtil, id)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title, nil
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, id)
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(title), nil
}

// SetTitle sets both the EWMH and ICCCM window names.
func (c *Connection) SetTitle(id xproto.Window, title string) error {
	if err := ewmh.WmNameSet(c.XUtil, id, title); err != nil {
		return fmt.Errorf("set window title: %w", err)
	}
	// Older window managers only read the ICCCM property.
	if err := icccm.WmNameSet(c.XUtil, id, title); err != nil {
		return fmt.Errorf("set icccm window title: %w", err)
	}
	return nil
}

// ClientSize returns the window's client area dimensions.
func (c *Connection) ClientSize(id xproto.Window) (int, int, error) {
	geom, err := xproto.GetGeometry(c.conn(), xproto.Drawable(id)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("get geometry: %w", err)
	}
	return int(geom.Width), int(geom.Height), nil
}

// SetClientSize resizes the window's client area.
func (c *Connection) SetClientSize(id xproto.Window, width, height int) error {
	win := xwindow.New(c.XUtil, id)
	win.Resize(width, height)
	return nil
}

// Show maps the window.
func (c *Connection) Show(id xproto.Window) error {
	return xproto.MapWindowChecked(c.conn(), id).Check()
}

// Hide unmaps the window.
func (c *Connection) Hide(id xproto.Window) error {
	return xproto.UnmapWindowChecked(c.conn(), id).Check()
}

// Focus asks the window manager to activate the window.
func (c *Connection) Focus(id xproto.Window) error {
	return ewmh.ActiveWindowReq(c.XUtil, id)
}

// IsFocused reports whether the window is the active window.
func (c *Connection) IsFocused(id xproto.Window) (bool, error) {
	active, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return false, err
	}
	return active == id, nil
}

// SetBackground sets the window background pixel and forces a repaint.
func (c *Connection) SetBackground(id xproto.Window, pixel uint32) error {
	err := xproto.ChangeWindowAttributesChecked(
		c.conn(),
		id,
		xproto.CwBackPixel,
		[]uint32{pixel},
	).Check()
	if err != nil {
		return fmt.Errorf("set background pixel: %w", err)
	}

	// Width/height of zero clear to the window's full extent.
	return xproto.ClearAreaChecked(c.conn(), true, id, 0, 0, 0, 0).Check()
}
