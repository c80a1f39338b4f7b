package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// EventKind discriminates translated notifications.
type EventKind int

const (
	EventConfigure EventKind = iota
	EventFocus
	EventState
	EventDecorations
	EventCloseRequest
	EventDestroyed
)

// Event is one native notification translated for a tracked window.
type Event struct {
	Window xproto.Window
	Kind   EventKind

	X, Y          int
	Width, Height int
	Focused       bool
	Minimized     bool
	Maximized     bool
	Decorated     bool
}

// readEvents drains the X connection and forwards translated events for
// tracked windows. It exits, closing the event channel, when the
// connection goes away.
func (c *Connection) readEvents() {
	defer close(c.events)

	for {
		ev, xerr := c.conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			// Request errors surface on the calls that made them;
			// nothing to translate here.
			continue
		}

		if out, ok := c.translate(ev); ok {
			c.events <- out
		}
	}
}

func (c *Connection) translate(ev xgb.Event) (Event, bool) {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if !c.isTracked(e.Window) {
			return Event{}, false
		}
		return Event{
			Window: e.Window,
			Kind:   EventConfigure,
			X:      int(e.X),
			Y:      int(e.Y),
			Width:  int(e.Width),
			Height: int(e.Height),
		}, true

	case xproto.FocusInEvent:
		if !c.isTracked(e.Event) {
			return Event{}, false
		}
		return Event{Window: e.Event, Kind: EventFocus, Focused: true}, true

	case xproto.FocusOutEvent:
		if !c.isTracked(e.Event) {
			return Event{}, false
		}
		return Event{Window: e.Event, Kind: EventFocus, Focused: false}, true

	case xproto.PropertyNotifyEvent:
		if !c.isTracked(e.Window) {
			return Event{}, false
		}
		switch e.Atom {
		case c.atoms.netWmState:
			found, err := c.hasStates(e.Window, stateHidden, stateMaximizedHorz, stateMaximizedVert)
			if err != nil {
				return Event{}, false
			}
			return Event{
				Window:    e.Window,
				Kind:      EventState,
				Minimized: found[stateHidden],
				Maximized: found[stateMaximizedHorz] && found[stateMaximizedVert],
			}, true
		case c.atoms.motifWmHints:
			return Event{
				Window:    e.Window,
				Kind:      EventDecorations,
				Decorated: c.IsDecorated(e.Window),
			}, true
		}
		return Event{}, false

	case xproto.ClientMessageEvent:
		if e.Type != c.atoms.wmProtocols || !c.isTracked(e.Window) {
			return Event{}, false
		}
		data := e.Data.Data32
		if len(data) == 0 || xproto.Atom(data[0]) != c.atoms.wmDeleteWindow {
			return Event{}, false
		}
		return Event{Window: e.Window, Kind: EventCloseRequest}, true

	case xproto.DestroyNotifyEvent:
		if !c.isTracked(e.Window) {
			return Event{}, false
		}
		c.untrack(e.Window)
		return Event{Window: e.Window, Kind: EventDestroyed}, true
	}

	return Event{}, false
}
