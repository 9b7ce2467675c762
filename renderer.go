package glint

import (
	"errors"
	"fmt"
	"io"
	"time"
)

const defaultSpriteCap = 1024

// Renderer owns the sprite, sprite sheet and shader registries, the GPU
// buffers behind them, and the frame loop that batches sprites into draw
// calls. A Renderer is not safe for concurrent use; drive it from the thread
// that owns the graphics context.
type Renderer struct {
	dev Device
	win Window
	cfg Config

	ctx     RenderContext
	sheets  *sheetRegistry
	shaders *shaderRegistry
	sprites *spriteRegistry
	solids  map[Color]SpriteSheetID

	defaultShader ShaderID

	state  drawState
	pacer  framePacer
	tweens []*TweenGroup
	warned map[SpriteID]struct{}

	start  time.Time
	clock  func() time.Time
	closed bool
}

// NewRenderer creates a renderer drawing through dev into win and builds the
// default shader program. Devices implementing DefaultShaderProvider supply
// its sources; all others get DefaultVertexShader and DefaultFragmentShader.
func NewRenderer(dev Device, win Window, cfg Config) (*Renderer, error) {
	if dev == nil || win == nil {
		return nil, errors.New("glint: renderer needs a device and a window")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sheets := newSheetRegistry()
	r := &Renderer{
		dev:     dev,
		win:     win,
		cfg:     cfg,
		ctx:     RenderContext{sheets: sheets},
		sheets:  sheets,
		shaders: newShaderRegistry(),
		sprites: newSpriteRegistry(),
		solids:  make(map[Color]SpriteSheetID),
		pacer:   newFramePacer(cfg.TargetFPS, cfg.ShowFPS),
		warned:  make(map[SpriteID]struct{}),
		clock:   time.Now,
		state: drawState{
			sprites: make([]Sprite, 0, defaultSpriteCap),
			sortBuf: make([]Sprite, 0, defaultSpriteCap),
		},
	}
	r.start = r.clock()
	r.ctx.width, r.ctx.height = win.FramebufferSize()

	vs, fs := DefaultVertexShader, DefaultFragmentShader
	if p, ok := dev.(DefaultShaderProvider); ok {
		vs, fs = p.DefaultShaderSources()
	}
	id, err := r.AddShaderProgram(vs, fs, DefaultAttributes(), DefaultUniforms())
	if err != nil {
		return nil, fmt.Errorf("glint: default shader: %w", err)
	}
	r.defaultShader = id
	return r, nil
}

// Config returns the validated configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Context returns the render context as of the last frame.
func (r *Renderer) Context() *RenderContext { return &r.ctx }

// --- Sprite sheets ---

func (r *Renderer) upload(img Image) (uint32, error) {
	tex, err := r.dev.CreateTexture(img.Width, img.Height, img.Pix, r.cfg.TextureFilter)
	if err != nil {
		var tce *TextureCreationError
		if errors.As(err, &tce) {
			return 0, tce
		}
		return 0, &TextureCreationError{Reason: err.Error()}
	}
	return tex, nil
}

// AddSpriteSheet uploads img and cuts it into cellWidth×cellHeight cells,
// numbered row by row from the top-left. The image size must be a whole
// multiple of the cell size.
func (r *Renderer) AddSpriteSheet(img Image, cellWidth, cellHeight int) (SpriteSheetID, error) {
	uvs, err := gridUVs(img.Width, img.Height, cellWidth, cellHeight)
	if err != nil {
		return 0, err
	}
	if err := checkPixels(img); err != nil {
		return 0, err
	}
	tex, err := r.upload(img)
	if err != nil {
		return 0, err
	}
	return r.sheets.add(&SpriteSheet{texture: tex, width: img.Width, height: img.Height, uvs: uvs}), nil
}

// LoadSpriteSheet decodes data with the configured decoder and adds the
// result as a grid sprite sheet.
func (r *Renderer) LoadSpriteSheet(data []byte, cellWidth, cellHeight int) (SpriteSheetID, error) {
	img, err := r.decode(data)
	if err != nil {
		return 0, err
	}
	return r.AddSpriteSheet(img, cellWidth, cellHeight)
}

func (r *Renderer) decode(data []byte) (Image, error) {
	if r.cfg.Decoder == nil {
		return Image{}, errors.New("glint: no image decoder configured")
	}
	w, h, pix, err := r.cfg.Decoder(data)
	if err != nil {
		return Image{}, fmt.Errorf("glint: decode sprite sheet: %w", err)
	}
	return Image{Width: w, Height: h, Pix: pix}, nil
}

// AddPackedSpriteSheet uploads img and cuts it along the frames of a
// TexturePacker JSON atlas.
func (r *Renderer) AddPackedSpriteSheet(img Image, atlasJSON []byte) (SpriteSheetID, error) {
	frames, err := parseAtlas(atlasJSON)
	if err != nil {
		return 0, err
	}
	if err := checkPixels(img); err != nil {
		return 0, err
	}
	sheet, err := packedSheet(0, img.Width, img.Height, frames)
	if err != nil {
		return 0, err
	}
	tex, err := r.upload(img)
	if err != nil {
		return 0, err
	}
	sheet.texture = tex
	return r.sheets.add(sheet), nil
}

// LoadPackedSpriteSheet decodes data with the configured decoder and adds it
// as a packed sprite sheet.
func (r *Renderer) LoadPackedSpriteSheet(data, atlasJSON []byte) (SpriteSheetID, error) {
	img, err := r.decode(data)
	if err != nil {
		return 0, err
	}
	return r.AddPackedSpriteSheet(img, atlasJSON)
}

// AddSolidSpriteSheet creates a 1×1 sheet of colour c with a single cell.
func (r *Renderer) AddSolidSpriteSheet(c Color) (SpriteSheetID, error) {
	tex, err := r.upload(Image{Width: 1, Height: 1, Pix: c.Pix()})
	if err != nil {
		return 0, err
	}
	return r.sheets.add(solidSheet(tex)), nil
}

// solidSheetFor returns the cached solid sheet for c, creating it if needed.
func (r *Renderer) solidSheetFor(c Color) (SpriteSheetID, error) {
	if id, ok := r.solids[c]; ok {
		if _, live := r.sheets.get(id); live {
			return id, nil
		}
	}
	id, err := r.AddSolidSpriteSheet(c)
	if err != nil {
		return 0, err
	}
	r.solids[c] = id
	return id, nil
}

// SpriteSheet returns a registered sheet.
func (r *Renderer) SpriteSheet(id SpriteSheetID) (*SpriteSheet, bool) {
	return r.sheets.get(id)
}

// RemoveSpriteSheet deletes the sheet and its texture. Sprites still
// referencing it are skipped when drawn.
func (r *Renderer) RemoveSpriteSheet(id SpriteSheetID) bool {
	sheet, ok := r.sheets.remove(id)
	if !ok {
		return false
	}
	r.dev.DeleteTexture(sheet.texture)
	for c, sid := range r.solids {
		if sid == id {
			delete(r.solids, c)
		}
	}
	return true
}

// --- Shader programs ---

// AddShaderProgram compiles, links and registers a program. Attributes are
// laid out in the order given.
func (r *Renderer) AddShaderProgram(vertexSrc, fragmentSrc string, attributes []Attribute, uniforms []Uniform) (ShaderID, error) {
	p, err := NewShaderProgram(r.dev, vertexSrc, fragmentSrc, attributes, uniforms, r.cfg.BatchCapacity)
	if err != nil {
		return 0, err
	}
	return r.shaders.add(p), nil
}

// ShaderProgram returns a registered program.
func (r *Renderer) ShaderProgram(id ShaderID) (*ShaderProgram, bool) {
	return r.shaders.get(id)
}

// RemoveShaderProgram releases the program and its buffers. Sprites still
// using it are skipped when drawn.
func (r *Renderer) RemoveShaderProgram(id ShaderID) bool {
	p, ok := r.shaders.remove(id)
	if !ok {
		return false
	}
	p.release()
	return true
}

// DefaultShader returns the id of the built-in program.
func (r *Renderer) DefaultShader() ShaderID { return r.defaultShader }

// --- Sprites ---

// AddSprite registers a sprite and returns its id. References to sheets and
// shaders are checked at draw time, not here.
func (r *Renderer) AddSprite(sheet SpriteSheetID, index int, x, y, layer int32, width, height uint32, shader ShaderID) SpriteID {
	return r.sprites.add(NewSprite(sheet, index, x, y, layer, width, height, shader))
}

// AddQuad registers a solid-colour sprite. Sheets are shared between quads of
// the same colour.
func (r *Renderer) AddQuad(c Color, x, y, layer int32, width, height uint32, shader ShaderID) (SpriteID, error) {
	sheet, err := r.solidSheetFor(c)
	if err != nil {
		return 0, err
	}
	return r.AddSprite(sheet, 0, x, y, layer, width, height, shader), nil
}

// Sprite returns the registry copy of a sprite for editing.
func (r *Renderer) Sprite(id SpriteID) (*Sprite, bool) {
	return r.sprites.get(id)
}

// RemoveSprite deletes a sprite. Removing an unknown id is a no-op.
func (r *Renderer) RemoveSprite(id SpriteID) bool {
	delete(r.warned, id)
	return r.sprites.remove(id)
}

// SpriteIDs returns the live sprite ids in ascending order.
func (r *Renderer) SpriteIDs() []SpriteID { return r.sprites.ids() }

// SpriteCount returns the number of live sprites.
func (r *Renderer) SpriteCount() int { return r.sprites.len() }

// --- Frame rate ---

// SetTargetFPS caps the frame rate. Zero disables pacing.
func (r *Renderer) SetTargetFPS(fps int) {
	if fps < 0 {
		fps = 0
	}
	r.cfg.TargetFPS = fps
	r.pacer.setTarget(fps)
}

// SetShowFPS toggles the periodic frame-rate log line.
func (r *Renderer) SetShowFPS(show bool) {
	r.cfg.ShowFPS = show
	r.pacer.show = show
}

// FPS returns the frame rate measured over the last half second.
func (r *Renderer) FPS() float64 { return r.pacer.fps }

// Stats returns the statistics of the most recent frame.
func (r *Renderer) Stats() FrameStats { return r.state.stats }

// --- Lifecycle ---

// Close releases every program, buffer, vertex array and texture, then closes
// the window if it implements io.Closer. The renderer must not be used
// afterwards.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	for _, id := range r.shaders.ids() {
		p, _ := r.shaders.remove(id)
		p.release()
	}
	for _, id := range r.sheets.ids() {
		sheet, _ := r.sheets.remove(id)
		r.dev.DeleteTexture(sheet.texture)
	}
	clear(r.solids)
	if c, ok := r.win.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
