package window

import (
	"github.com/1broseidon/sill/platform"
)

// Run drives the owning thread's message loop until the window is
// destroyed. Marshalled cross-thread calls and native notifications arrive
// through the same loop and are processed in arrival order. Run must be
// called on the owning thread.
func (w *Window) Run() error {
	if !w.disp.OnOwner() {
		return ErrNotOwner
	}

	for !w.quit {
		select {
		case c := <-w.disp.Calls():
			c.Execute()
		case ev, ok := <-w.backend.Events():
			if !ok {
				// The native connection is gone; nothing further can
				// reach this window.
				w.teardown(false)
				return nil
			}
			w.deliver(ev)
		}
	}
	return nil
}

// RunOnce processes at most one pending item, returning immediately when
// the queue is empty. It reports whether the window is still alive, so a
// host frame loop can call it as:
//
//	for alive, _ := win.RunOnce(); alive; alive, _ = win.RunOnce() { ... }
func (w *Window) RunOnce() (bool, error) {
	if !w.disp.OnOwner() {
		return false, ErrNotOwner
	}
	if w.quit {
		return false, nil
	}

	select {
	case c := <-w.disp.Calls():
		c.Execute()
	case ev, ok := <-w.backend.Events():
		if !ok {
			w.teardown(false)
			return false, nil
		}
		w.deliver(ev)
	default:
	}

	return !w.quit, nil
}

// deliver translates one native notification into registry dispatches. It
// runs on the owning thread, so subscriber callbacks always fire there.
func (w *Window) deliver(ev platform.Event) {
	if ev.Window != w.id || w.destroyed {
		return
	}

	switch ev.Kind {
	case platform.EventConfigure:
		moved := ev.Bounds.X != w.lastBounds.X || ev.Bounds.Y != w.lastBounds.Y
		resized := ev.Bounds.Width != w.lastBounds.Width ||
			ev.Bounds.Height != w.lastBounds.Height
		w.lastBounds = ev.Bounds

		if resized {
			w.events.resize.Emit(Size{Width: ev.Bounds.Width, Height: ev.Bounds.Height})
		}
		if moved {
			w.events.move.Emit(Position{X: ev.Bounds.X, Y: ev.Bounds.Y})
		}

	case platform.EventFocus:
		w.events.focus.Emit(ev.Focused)

	case platform.EventState:
		w.deliverState(ev)

	case platform.EventDecorations:
		w.events.decorate.Emit(ev.Decorated)

	case platform.EventCloseRequest:
		w.requestClose()

	case platform.EventDestroyed:
		w.teardown(false)
	}
}

// deliverState turns raw minimized/maximized snapshots into transition
// events. A restore fires false on whichever channel matches the previous
// state.
func (w *Window) deliverState(ev platform.Event) {
	switch {
	case ev.Minimized:
		if w.lastState != stateMinimized {
			w.lastState = stateMinimized
			w.events.minimize.Emit(true)
		}

	case ev.Maximized:
		if w.lastState != stateMaximized {
			w.lastState = stateMaximized
			w.events.maximize.Emit(true)
		}

	default:
		switch w.lastState {
		case stateMinimized:
			w.events.minimize.Emit(false)
		case stateMaximized:
			w.events.maximize.Emit(false)
		}
		w.lastState = stateRestored
	}
}
