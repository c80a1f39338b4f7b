// Package platform abstracts the native window system. A Backend owns the
// translation from neutral window operations to platform calls; the window
// package layers thread-affine dispatch and the event surface on top.
package platform

// WindowID is a platform-neutral native window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// StyleBits is a set of native decoration/style flags. "Resizable" and
// "decorated" at the window level are masks over several of these bits;
// external actors may toggle individual bits underneath.
type StyleBits uint32

const (
	// StyleThickFrame enables the sizing border.
	StyleThickFrame StyleBits = 1 << iota
	// StyleMinimizeBox enables the minimize control.
	StyleMinimizeBox
	// StyleMaximizeBox enables the maximize control.
	StyleMaximizeBox
	// StyleCaption enables the title bar.
	StyleCaption
	// StyleSysMenu enables the window menu / close control.
	StyleSysMenu
)

// StyleDefault is the style a freshly created top-level window carries.
const StyleDefault = StyleThickFrame | StyleMinimizeBox | StyleMaximizeBox |
	StyleCaption | StyleSysMenu

// Direction identifies which edge or corner a native resize drag grabs.
// Values follow the wire numbering of _NET_WM_MOVERESIZE.
type Direction int

const (
	SizeTopLeft Direction = iota
	SizeTop
	SizeTopRight
	SizeRight
	SizeBottomRight
	SizeBottom
	SizeBottomLeft
	SizeLeft
	Move
)

// EventKind discriminates translated native notifications.
type EventKind int

const (
	// EventConfigure reports a geometry change. Bounds carries the new
	// position and client size.
	EventConfigure EventKind = iota
	// EventFocus reports focus gained or lost.
	EventFocus
	// EventState reports a minimized/maximized state change.
	EventState
	// EventDecorations reports that the window gained or lost its frame.
	EventDecorations
	// EventCloseRequest reports that the user asked to close the window.
	EventCloseRequest
	// EventDestroyed reports that the native handle is gone.
	EventDestroyed
)

// Event is one translated native notification.
type Event struct {
	Window WindowID
	Kind   EventKind

	Bounds    Rect // EventConfigure
	Focused   bool // EventFocus
	Minimized bool // EventState
	Maximized bool // EventState
	Decorated bool // EventDecorations
}

// CreateOptions carries the attributes a backend needs at creation time.
type CreateOptions struct {
	Title  string
	Width  int
	Height int
}

// Backend abstracts window-system operations. Apart from Events and
// Shutdown, methods must be invoked on the thread that drives the window's
// message loop; the window package enforces that.
type Backend interface {
	Create(opts CreateOptions) (WindowID, error)
	Destroy(id WindowID) error

	Title(id WindowID) (string, error)
	SetTitle(id WindowID, title string) error

	ClientSize(id WindowID) (Size, error)
	SetClientSize(id WindowID, size Size) error

	Show(id WindowID) error
	Hide(id WindowID) error
	Focus(id WindowID) error

	Focused(id WindowID) (bool, error)
	Minimized(id WindowID) (bool, error)
	Maximized(id WindowID) (bool, error)
	SetMinimized(id WindowID, enabled bool) error
	SetMaximized(id WindowID, enabled bool) error
	AlwaysOnTop(id WindowID) (bool, error)
	SetAlwaysOnTop(id WindowID, enabled bool) error

	Style(id WindowID) (StyleBits, error)
	SetStyle(id WindowID, style StyleBits) error

	SetBackground(id WindowID, r, g, b, a uint8) error
	SetSizeHints(id WindowID, min, max Size) error

	// DefaultMinSize and DefaultMaxSize report the platform bounds used
	// when no explicit override is set on the window.
	DefaultMinSize() Size
	DefaultMaxSize() Size

	BeginMoveDrag(id WindowID) error
	BeginResizeDrag(id WindowID, dir Direction) error

	// Events delivers translated native notifications. The channel is
	// closed when the backend shuts down. It is a single stream shared by
	// every window on this backend, consumed by exactly one pump: a pump
	// drops events addressed to other windows, so a process that needs
	// several windows must give each its own backend connection.
	Events() <-chan Event

	// Shutdown releases the connection to the window system.
	Shutdown() error
}
