package mcp

// WindowStateInput is the input for the window_state tool.
type WindowStateInput struct{}

// WindowStateOutput is the output for the window_state tool.
type WindowStateOutput struct {
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MinWidth    int    `json:"min_width"`
	MinHeight   int    `json:"min_height"`
	MaxWidth    int    `json:"max_width"`
	MaxHeight   int    `json:"max_height"`
	Focused     bool   `json:"focused"`
	Minimized   bool   `json:"minimized"`
	Maximized   bool   `json:"maximized"`
	Resizable   bool   `json:"resizable"`
	Decorations bool   `json:"decorations"`
	AlwaysOnTop bool   `json:"always_on_top"`
	Background  string `json:"background"`
}

// SetTitleInput is the input for the set_title tool.
type SetTitleInput struct {
	Title string `json:"title" jsonschema:"required,The new window title"`
}

// SetTitleOutput is the output for the set_title tool.
type SetTitleOutput struct {
	Title string `json:"title"`
}

// SetSizeInput is the input for the set_size tool.
type SetSizeInput struct {
	Width     int  `json:"width,omitempty" jsonschema:"Client width in pixels. Omit to keep the current width."`
	Height    int  `json:"height,omitempty" jsonschema:"Client height in pixels. Omit to keep the current height."`
	MinWidth  *int `json:"min_width,omitempty" jsonschema:"Minimum client width. 0 restores the platform default."`
	MinHeight *int `json:"min_height,omitempty" jsonschema:"Minimum client height. 0 restores the platform default."`
	MaxWidth  *int `json:"max_width,omitempty" jsonschema:"Maximum client width. 0 restores the platform default."`
	MaxHeight *int `json:"max_height,omitempty" jsonschema:"Maximum client height. 0 restores the platform default."`
}

// SetSizeOutput is the output for the set_size tool.
type SetSizeOutput struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SetVisibilityInput is the input for the set_visibility tool.
type SetVisibilityInput struct {
	Action string `json:"action" jsonschema:"required,One of: show, hide, focus"`
}

// SetVisibilityOutput is the output for the set_visibility tool.
type SetVisibilityOutput struct {
	Action string `json:"action"`
}

// SetFlagInput is the input for the set_flag tool.
type SetFlagInput struct {
	Flag    string `json:"flag" jsonschema:"required,One of: resizable, decorations, always_on_top, minimized, maximized"`
	Enabled bool   `json:"enabled" jsonschema:"required,The new value for the flag"`
}

// SetFlagOutput is the output for the set_flag tool.
type SetFlagOutput struct {
	Flag    string `json:"flag"`
	Enabled bool   `json:"enabled"`
}

// StartResizeInput is the input for the start_resize tool.
type StartResizeInput struct {
	Edge string `json:"edge,omitempty" jsonschema:"Edge or corner to resize from: top, bottom, left, right, top-left, top-right, bottom-left, bottom-right. Omit for an interactive move."`
}

// StartResizeOutput is the output for the start_resize tool.
type StartResizeOutput struct {
	Edge string `json:"edge,omitempty"`
	Move bool   `json:"move"`
}
