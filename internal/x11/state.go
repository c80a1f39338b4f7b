package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

const (
	stateHidden        = "_NET_WM_STATE_HIDDEN"
	stateAbove         = "_NET_WM_STATE_ABOVE"
	stateMaximizedHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaximizedVert = "_NET_WM_STATE_MAXIMIZED_VERT"
)

// hasStates reports which of the named _NET_WM_STATE atoms are present.
func (c *Connection) hasStates(id xproto.Window, names ...string) (map[string]bool, error) {
	states, err := ewmh.WmStateGet(c.XUtil, id)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(names))
	for _, state := range states {
		for _, name := range names {
			if state == name {
				found[name] = true
			}
		}
	}
	return found, nil
}

// IsMinimized reports whether the window is iconified.
func (c *Connection) IsMinimized(id xproto.Window) (bool, error) {
	found, err := c.hasStates(id, stateHidden)
	if err != nil {
		return false, err
	}
	return found[stateHidden], nil
}

// IsMaximized reports whether the window is maximized both horizontally
// and vertically.
func (c *Connection) IsMaximized(id xproto.Window) (bool, error) {
	found, err := c.hasStates(id, stateMaximizedHorz, stateMaximizedVert)
	if err != nil {
		return false, err
	}
	return found[stateMaximizedHorz] && found[stateMaximizedVert], nil
}

// IsAlwaysOnTop reports whether the window carries the above state.
func (c *Connection) IsAlwaysOnTop(id xproto.Window) (bool, error) {
	found, err := c.hasStates(id, stateAbove)
	if err != nil {
		return false, err
	}
	return found[stateAbove], nil
}

// SetMinimized iconifies the window via WM_CHANGE_STATE, or restores it by
// remapping and re-activating.
func (c *Connection) SetMinimized(id xproto.Window, enabled bool) error {
	if !enabled {
		if err := c.Show(id); err != nil {
			return err
		}
		return c.Focus(id)
	}

	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: id,
		Type:   c.atoms.wmChangeState,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}
	return c.sendToRoot(ev)
}

// SetMaximized adds or removes both maximized states.
func (c *Connection) SetMaximized(id xproto.Window, enabled bool) error {
	action := 0 // _NET_WM_STATE_REMOVE
	if enabled {
		action = 1 // _NET_WM_STATE_ADD
	}

	if err := ewmh.WmStateReq(c.XUtil, id, action, stateMaximizedHorz); err != nil {
		return err
	}
	return ewmh.WmStateReq(c.XUtil, id, action, stateMaximizedVert)
}

// SetAlwaysOnTop toggles the above state.
func (c *Connection) SetAlwaysOnTop(id xproto.Window, enabled bool) error {
	action := 0
	if enabled {
		action = 1
	}
	return ewmh.WmStateReq(c.XUtil, id, action, stateAbove)
}
