package glint

// Sprite is a positioned, textured rectangle. X and Y address the bottom-left
// corner in window pixels with the origin at the bottom-left of the window.
//
// Attribute and uniform callbacks receive a Sprite by value and cannot mutate
// the registry copy. Use Renderer.Sprite to obtain a pointer for editing.
type Sprite struct {
	id       SpriteID
	sheet    SpriteSheetID
	index    int
	x, y     int32
	width    uint32
	height   uint32
	layer    int32
	rotation float32
	flip     Flip
	shader   ShaderID
}

// NewSprite returns a detached sprite. Sprites drawn by a Renderer are created
// through Renderer.AddSprite; NewSprite is useful for evaluating attributes
// outside a frame.
func NewSprite(sheet SpriteSheetID, index int, x, y, layer int32, width, height uint32, shader ShaderID) Sprite {
	return Sprite{
		sheet:  sheet,
		index:  index,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		layer:  layer,
		shader: shader,
	}
}

// ID returns the registry id, or 0 for a detached sprite.
func (s Sprite) ID() SpriteID { return s.id }

// Sheet returns the sprite sheet the sprite samples from.
func (s Sprite) Sheet() SpriteSheetID { return s.sheet }

// Index returns the cell index within the sprite sheet.
func (s Sprite) Index() int { return s.index }

// Position returns the bottom-left corner in pixels.
func (s Sprite) Position() (x, y int32) { return s.x, s.y }

func (s Sprite) X() int32 { return s.x }
func (s Sprite) Y() int32 { return s.y }

// Size returns the width and height in pixels.
func (s Sprite) Size() (width, height uint32) { return s.width, s.height }

func (s Sprite) Width() uint32  { return s.width }
func (s Sprite) Height() uint32 { return s.height }

// Layer returns the draw layer. Lower layers draw first.
func (s Sprite) Layer() int32 { return s.layer }

// Rotation returns the rotation in radians, counter-clockwise about the centre.
func (s Sprite) Rotation() float32 { return s.rotation }

func (s Sprite) Flip() Flip { return s.flip }

// Shader returns the program the sprite is drawn with.
func (s Sprite) Shader() ShaderID { return s.shader }

// SetPosition moves the bottom-left corner to (x, y).
func (s *Sprite) SetPosition(x, y int32) {
	s.x, s.y = x, y
}

// Translate moves the sprite by (dx, dy) pixels.
func (s *Sprite) Translate(dx, dy int32) {
	s.x += dx
	s.y += dy
}

func (s *Sprite) SetSize(width, height uint32) {
	s.width, s.height = width, height
}

func (s *Sprite) SetWidth(width uint32)   { s.width = width }
func (s *Sprite) SetHeight(height uint32) { s.height = height }

// Scale multiplies width and height by factor, rounding to the nearest pixel.
// Negative factors are treated as zero.
func (s *Sprite) Scale(factor float32) {
	if factor < 0 {
		factor = 0
	}
	s.width = uint32(float32(s.width)*factor + 0.5)
	s.height = uint32(float32(s.height)*factor + 0.5)
}

func (s *Sprite) SetLayer(layer int32) { s.layer = layer }

// SetRotation sets the rotation in radians.
func (s *Sprite) SetRotation(radians float32) { s.rotation = radians }

// Rotate adds radians to the current rotation.
func (s *Sprite) Rotate(radians float32) { s.rotation += radians }

func (s *Sprite) SetFlip(f Flip) { s.flip = f }

// SetShader switches the program the sprite is drawn with.
func (s *Sprite) SetShader(id ShaderID) { s.shader = id }

// SetTexture points the sprite at a different sheet cell.
func (s *Sprite) SetTexture(sheet SpriteSheetID, index int) {
	s.sheet = sheet
	s.index = index
}
