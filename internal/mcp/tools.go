package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/sill/window"
)

func (s *Server) handleWindowState(_ context.Context, _ *mcpsdk.CallToolRequest, _ WindowStateInput) (*mcpsdk.CallToolResult, WindowStateOutput, error) {
	var out WindowStateOutput

	title, err := s.win.Title()
	if err != nil {
		return nil, out, fmt.Errorf("read title: %w", err)
	}
	size, err := s.win.Size()
	if err != nil {
		return nil, out, fmt.Errorf("read size: %w", err)
	}
	minSize, err := s.win.MinSize()
	if err != nil {
		return nil, out, fmt.Errorf("read min size: %w", err)
	}
	maxSize, err := s.win.MaxSize()
	if err != nil {
		return nil, out, fmt.Errorf("read max size: %w", err)
	}
	focused, err := s.win.Focused()
	if err != nil {
		return nil, out, fmt.Errorf("read focus: %w", err)
	}
	minimized, err := s.win.Minimized()
	if err != nil {
		return nil, out, fmt.Errorf("read minimized: %w", err)
	}
	maximized, err := s.win.Maximized()
	if err != nil {
		return nil, out, fmt.Errorf("read maximized: %w", err)
	}
	resizable, err := s.win.Resizable()
	if err != nil {
		return nil, out, fmt.Errorf("read resizable: %w", err)
	}
	decorations, err := s.win.Decorations()
	if err != nil {
		return nil, out, fmt.Errorf("read decorations: %w", err)
	}
	onTop, err := s.win.AlwaysOnTop()
	if err != nil {
		return nil, out, fmt.Errorf("read always-on-top: %w", err)
	}

	out = WindowStateOutput{
		Title:       title,
		Width:       size.Width,
		Height:      size.Height,
		MinWidth:    minSize.Width,
		MinHeight:   minSize.Height,
		MaxWidth:    maxSize.Width,
		MaxHeight:   maxSize.Height,
		Focused:     focused,
		Minimized:   minimized,
		Maximized:   maximized,
		Resizable:   resizable,
		Decorations: decorations,
		AlwaysOnTop: onTop,
		Background:  s.win.Background().Hex(),
	}
	s.log.Debug("mcp window_state", "title", out.Title, "width", out.Width, "height", out.Height)
	return nil, out, nil
}

func (s *Server) handleSetTitle(_ context.Context, _ *mcpsdk.CallToolRequest, args SetTitleInput) (*mcpsdk.CallToolResult, SetTitleOutput, error) {
	if err := s.win.SetTitle(args.Title); err != nil {
		return nil, SetTitleOutput{}, fmt.Errorf("set title: %w", err)
	}
	s.log.Info("mcp set_title", "title", args.Title)
	return nil, SetTitleOutput{Title: args.Title}, nil
}

func (s *Server) handleSetSize(_ context.Context, _ *mcpsdk.CallToolRequest, args SetSizeInput) (*mcpsdk.CallToolResult, SetSizeOutput, error) {
	if args.MinWidth != nil || args.MinHeight != nil {
		cur, err := s.win.MinSize()
		if err != nil {
			return nil, SetSizeOutput{}, fmt.Errorf("read min size: %w", err)
		}
		w, h := cur.Width, cur.Height
		if args.MinWidth != nil {
			w = *args.MinWidth
		}
		if args.MinHeight != nil {
			h = *args.MinHeight
		}
		if err := s.win.SetMinSize(w, h); err != nil {
			return nil, SetSizeOutput{}, fmt.Errorf("set min size: %w", err)
		}
	}
	if args.MaxWidth != nil || args.MaxHeight != nil {
		cur, err := s.win.MaxSize()
		if err != nil {
			return nil, SetSizeOutput{}, fmt.Errorf("read max size: %w", err)
		}
		w, h := cur.Width, cur.Height
		if args.MaxWidth != nil {
			w = *args.MaxWidth
		}
		if args.MaxHeight != nil {
			h = *args.MaxHeight
		}
		if err := s.win.SetMaxSize(w, h); err != nil {
			return nil, SetSizeOutput{}, fmt.Errorf("set max size: %w", err)
		}
	}

	if args.Width > 0 || args.Height > 0 {
		cur, err := s.win.Size()
		if err != nil {
			return nil, SetSizeOutput{}, fmt.Errorf("read size: %w", err)
		}
		w, h := cur.Width, cur.Height
		if args.Width > 0 {
			w = args.Width
		}
		if args.Height > 0 {
			h = args.Height
		}
		if err := s.win.SetSize(w, h); err != nil {
			return nil, SetSizeOutput{}, fmt.Errorf("set size: %w", err)
		}
	}

	size, err := s.win.Size()
	if err != nil {
		return nil, SetSizeOutput{}, fmt.Errorf("read size: %w", err)
	}
	s.log.Info("mcp set_size", "width", size.Width, "height", size.Height)
	return nil, SetSizeOutput{Width: size.Width, Height: size.Height}, nil
}

func (s *Server) handleSetVisibility(_ context.Context, _ *mcpsdk.CallToolRequest, args SetVisibilityInput) (*mcpsdk.CallToolResult, SetVisibilityOutput, error) {
	var err error
	switch args.Action {
	case "show":
		err = s.win.Show()
	case "hide":
		err = s.win.Hide()
	case "focus":
		err = s.win.Focus()
	default:
		return nil, SetVisibilityOutput{}, fmt.Errorf("unknown action %q; expected show, hide, or focus", args.Action)
	}
	if err != nil {
		return nil, SetVisibilityOutput{}, fmt.Errorf("%s window: %w", args.Action, err)
	}
	s.log.Info("mcp set_visibility", "action", args.Action)
	return nil, SetVisibilityOutput{Action: args.Action}, nil
}

func (s *Server) handleSetFlag(_ context.Context, _ *mcpsdk.CallToolRequest, args SetFlagInput) (*mcpsdk.CallToolResult, SetFlagOutput, error) {
	var err error
	switch args.Flag {
	case "resizable":
		err = s.win.SetResizable(args.Enabled)
	case "decorations":
		err = s.win.SetDecorations(args.Enabled)
	case "always_on_top":
		err = s.win.SetAlwaysOnTop(args.Enabled)
	case "minimized":
		err = s.win.SetMinimized(args.Enabled)
	case "maximized":
		err = s.win.SetMaximized(args.Enabled)
	default:
		return nil, SetFlagOutput{}, fmt.Errorf("unknown flag %q; expected resizable, decorations, always_on_top, minimized, or maximized", args.Flag)
	}
	if err != nil {
		return nil, SetFlagOutput{}, fmt.Errorf("set %s: %w", args.Flag, err)
	}
	s.log.Info("mcp set_flag", "flag", args.Flag, "enabled", args.Enabled)
	return nil, SetFlagOutput{Flag: args.Flag, Enabled: args.Enabled}, nil
}

func (s *Server) handleStartResize(_ context.Context, _ *mcpsdk.CallToolRequest, args StartResizeInput) (*mcpsdk.CallToolResult, StartResizeOutput, error) {
	if args.Edge == "" {
		if err := s.win.StartDrag(); err != nil {
			return nil, StartResizeOutput{}, fmt.Errorf("start move: %w", err)
		}
		s.log.Info("mcp start_resize", "move", true)
		return nil, StartResizeOutput{Move: true}, nil
	}

	edge, err := window.ParseEdge(args.Edge)
	if err != nil {
		return nil, StartResizeOutput{}, err
	}
	if err := s.win.StartResize(edge); err != nil {
		return nil, StartResizeOutput{}, fmt.Errorf("start resize: %w", err)
	}
	s.log.Info("mcp start_resize", "edge", edge.String())
	return nil, StartResizeOutput{Edge: edge.String()}, nil
}
