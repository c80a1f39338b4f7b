package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// _NET_WM_MOVERESIZE directions.
const (
	MoveResizeSizeTopLeft     = 0
	MoveResizeSizeTop         = 1
	MoveResizeSizeTopRight    = 2
	MoveResizeSizeRight       = 3
	MoveResizeSizeBottomRight = 4
	MoveResizeSizeBottom      = 5
	MoveResizeSizeBottomLeft  = 6
	MoveResizeSizeLeft        = 7
	MoveResizeMove            = 8
)

// BeginMoveDrag hands the window to the window manager for an interactive
// title-bar style move.
func (c *Connection) BeginMoveDrag(id xproto.Window) error {
	return c.beginMoveResize(id, MoveResizeMove)
}

// BeginResizeDrag hands the window to the window manager for an interactive
// resize from the given direction.
func (c *Connection) BeginResizeDrag(id xproto.Window, direction int) error {
	return c.beginMoveResize(id, direction)
}

func (c *Connection) beginMoveResize(id xproto.Window, direction int) error {
	pointer, err := xproto.QueryPointer(c.conn(), c.Root).Reply()
	if err != nil {
		return fmt.Errorf("query pointer: %w", err)
	}

	// The window manager takes over the grab for the duration of the
	// gesture; any grab we hold would block it.
	xproto.UngrabPointer(c.conn(), xproto.TimeCurrentTime)

	const (
		button            = 1
		sourceApplication = 1
	)

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: id,
		Type:   c.atoms.netWmMoveresize,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(pointer.RootX),
			uint32(pointer.RootY),
			uint32(direction),
			button,
			sourceApplication,
		}),
	}
	return c.sendToRoot(ev)
}
