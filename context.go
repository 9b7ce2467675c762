package glint

import "time"

// RenderContext is the frame-level state handed to attribute and uniform
// callbacks. It is refreshed at the start of every DrawFrame and is read-only
// to callbacks.
type RenderContext struct {
	width   int
	height  int
	elapsed time.Duration
	frame   uint64
	sheets  *sheetRegistry
}

// NewRenderContext builds a context for evaluating bindings outside a
// Renderer, typically in tests and tools.
func NewRenderContext(width, height int, elapsed time.Duration, sheets ...*SpriteSheet) *RenderContext {
	reg := newSheetRegistry()
	for _, s := range sheets {
		reg.add(s)
	}
	return &RenderContext{width: width, height: height, elapsed: elapsed, sheets: reg}
}

// WindowSize returns the framebuffer size in pixels.
func (c *RenderContext) WindowSize() (width, height int) {
	return c.width, c.height
}

// AspectRatio returns width/height, or 1 for a degenerate window.
func (c *RenderContext) AspectRatio() float32 {
	if c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// Elapsed returns the time since the renderer was created.
func (c *RenderContext) Elapsed() time.Duration { return c.elapsed }

// ElapsedSeconds returns Elapsed as float32 seconds.
func (c *RenderContext) ElapsedSeconds() float32 {
	return float32(c.elapsed.Seconds())
}

// Frame returns the number of frames drawn before the current one.
func (c *RenderContext) Frame() uint64 { return c.frame }

// UV returns the texture rectangle of cell index in sheet.
func (c *RenderContext) UV(sheet SpriteSheetID, index int) (UVRect, bool) {
	s, ok := c.sheets.get(sheet)
	if !ok {
		return UVRect{}, false
	}
	return s.UV(index)
}

// Texture returns the device texture handle of sheet.
func (c *RenderContext) Texture(sheet SpriteSheetID) (uint32, bool) {
	s, ok := c.sheets.get(sheet)
	if !ok {
		return 0, false
	}
	return s.texture, true
}

// Sheet returns the registered sprite sheet.
func (c *RenderContext) Sheet(id SpriteSheetID) (*SpriteSheet, bool) {
	return c.sheets.get(id)
}
