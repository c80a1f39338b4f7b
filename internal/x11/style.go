package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
)

// Decorations describes which frame elements the window manager should
// draw. The window layer collapses these from its style bits.
type Decorations struct {
	Border   bool
	Title    bool
	Menu     bool
	Minimize bool
	Maximize bool
	Resize   bool
}

// ApplyDecorations publishes the requested frame elements via Motif WM
// hints, the mechanism window managers honor for per-window decorations.
func (c *Connection) ApplyDecorations(id xproto.Window, dec Decorations) error {
	hints := motif.Hints{Flags: motif.HintDecorations}

	if dec.Border {
		hints.Decoration |= motif.DecorationBorder
	}
	if dec.Title {
		hints.Decoration |= motif.DecorationTitle
	}
	if dec.Menu {
		hints.Decoration |= motif.DecorationMenu
	}
	if dec.Minimize {
		hints.Decoration |= motif.DecorationMinimize
	}
	if dec.Maximize {
		hints.Decoration |= motif.DecorationMaximize
	}
	if dec.Resize {
		hints.Decoration |= motif.DecorationResizeH
	}

	if err := motif.WmHintsSet(c.XUtil, id, &hints); err != nil {
		return fmt.Errorf("set motif hints: %w", err)
	}
	return nil
}

// IsDecorated reports whether the window still asks for a frame. Absent
// hints mean the window manager default, which is decorated.
func (c *Connection) IsDecorated(id xproto.Window) bool {
	hints, err := motif.WmHintsGet(c.XUtil, id)
	if err != nil {
		return true
	}
	return motif.Decor(hints)
}

// SetSizeHints publishes WM_NORMAL_HINTS min/max track sizes. Zero values
// leave the corresponding bound unconstrained.
func (c *Connection) SetSizeHints(id xproto.Window, minW, minH, maxW, maxH int) error {
	hints := icccm.NormalHints{}

	if minW > 0 || minH > 0 {
		hints.Flags |= icccm.SizeHintPMinSize
		hints.MinWidth = uint(minW)
		hints.MinHeight = uint(minH)
	}
	if maxW > 0 || maxH > 0 {
		hints.Flags |= icccm.SizeHintPMaxSize
		hints.MaxWidth = uint(maxW)
		hints.MaxHeight = uint(maxH)
	}

	if err := icccm.WmNormalHintsSet(c.XUtil, id, &hints); err != nil {
		return fmt.Errorf("set normal hints: %w", err)
	}
	return nil
}

// LockSize pins the window to its current size by setting min == max, the
// X11 rendition of a non-resizable frame. Unlock by republishing the real
// bounds through SetSizeHints.
func (c *Connection) LockSize(id xproto.Window) error {
	width, height, err := c.ClientSize(id)
	if err != nil {
		return err
	}
	return c.SetSizeHints(id, width, height, width, height)
}
