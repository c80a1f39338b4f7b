package window

import "github.com/1broseidon/sill/event"

// Kind identifies one window event channel.
type Kind int

const (
	// KindResize fires with the new client size.
	KindResize Kind = iota
	// KindMove fires with the new position.
	KindMove
	// KindFocus fires with the new focus state.
	KindFocus
	// KindMinimize fires when the window is iconified or restored.
	KindMinimize
	// KindMaximize fires when the window is maximized or restored.
	KindMaximize
	// KindDecorations fires when the window gains or loses its frame.
	KindDecorations
	// KindClose fires before teardown; subscribers may veto.
	KindClose
	// KindClosed fires after the native handle is gone.
	KindClosed
)

// registry groups the per-kind subscriber channels. Dispatch always runs
// on the owning thread; registration is internally synchronized and safe
// from any goroutine.
type registry struct {
	resize   event.Channel[Size]
	move     event.Channel[Position]
	focus    event.Channel[bool]
	minimize event.Channel[bool]
	maximize event.Channel[bool]
	decorate event.Channel[bool]
	close    event.VetoChannel
	closed   event.Channel[struct{}]
}

func (r *registry) remove(kind Kind, id uint64) {
	switch kind {
	case KindResize:
		r.resize.Remove(id)
	case KindMove:
		r.move.Remove(id)
	case KindFocus:
		r.focus.Remove(id)
	case KindMinimize:
		r.minimize.Remove(id)
	case KindMaximize:
		r.maximize.Remove(id)
	case KindDecorations:
		r.decorate.Remove(id)
	case KindClose:
		r.close.Remove(id)
	case KindClosed:
		r.closed.Remove(id)
	}
}

func (r *registry) clear(kind Kind) {
	switch kind {
	case KindResize:
		r.resize.Clear()
	case KindMove:
		r.move.Clear()
	case KindFocus:
		r.focus.Clear()
	case KindMinimize:
		r.minimize.Clear()
	case KindMaximize:
		r.maximize.Clear()
	case KindDecorations:
		r.decorate.Clear()
	case KindClose:
		r.close.Clear()
	case KindClosed:
		r.closed.Clear()
	}
}

// OnResize registers fn for client-size changes and returns its id.
func (w *Window) OnResize(fn func(Size)) uint64 { return w.events.resize.Add(fn) }

// OnceResize registers fn for the next client-size change only.
func (w *Window) OnceResize(fn func(Size)) { w.events.resize.Once(fn) }

// OnMove registers fn for position changes and returns its id.
func (w *Window) OnMove(fn func(Position)) uint64 { return w.events.move.Add(fn) }

// OnceMove registers fn for the next position change only.
func (w *Window) OnceMove(fn func(Position)) { w.events.move.Once(fn) }

// OnFocus registers fn for focus changes and returns its id.
func (w *Window) OnFocus(fn func(bool)) uint64 { return w.events.focus.Add(fn) }

// OnceFocus registers fn for the next focus change only.
func (w *Window) OnceFocus(fn func(bool)) { w.events.focus.Once(fn) }

// OnMinimize registers fn for iconify/restore transitions and returns its
// id.
func (w *Window) OnMinimize(fn func(bool)) uint64 { return w.events.minimize.Add(fn) }

// OnceMinimize registers fn for the next iconify/restore transition only.
func (w *Window) OnceMinimize(fn func(bool)) { w.events.minimize.Once(fn) }

// OnMaximize registers fn for maximize/restore transitions and returns its
// id.
func (w *Window) OnMaximize(fn func(bool)) uint64 { return w.events.maximize.Add(fn) }

// OnceMaximize registers fn for the next maximize/restore transition only.
func (w *Window) OnceMaximize(fn func(bool)) { w.events.maximize.Once(fn) }

// OnDecorations registers fn for frame gained/lost transitions and returns
// its id.
func (w *Window) OnDecorations(fn func(bool)) uint64 { return w.events.decorate.Add(fn) }

// OnceDecorations registers fn for the next frame transition only.
func (w *Window) OnceDecorations(fn func(bool)) { w.events.decorate.Once(fn) }

// OnClose registers fn to run before the window tears down. Returning true
// vetoes the close.
func (w *Window) OnClose(fn func() bool) uint64 { return w.events.close.Add(fn) }

// OnceClose registers a one-shot close subscriber.
func (w *Window) OnceClose(fn func() bool) { w.events.close.Once(fn) }

// OnClosed registers fn to run after the native handle is released.
func (w *Window) OnClosed(fn func()) uint64 {
	return w.events.closed.Add(func(struct{}) { fn() })
}

// OnceClosed registers a one-shot closed subscriber.
func (w *Window) OnceClosed(fn func()) {
	w.events.closed.Once(func(struct{}) { fn() })
}

// Remove drops one subscription of the given kind. Unknown ids are
// ignored.
func (w *Window) Remove(kind Kind, id uint64) {
	w.events.remove(kind, id)
}

// ClearHandlers drops every subscription of the given kind.
func (w *Window) ClearHandlers(kind Kind) {
	w.events.clear(kind)
}
