// Package ebitenhost runs a glint Renderer inside an Ebitengine game. Fragment
// programs are written in Kage; the vertex stage is fixed and reads attribute
// locations by convention:
//
//	0  position in normalized device coordinates (vec2)
//	1  texture coordinates in [0, 1] (vec2)
//	2  vertex color (vec4), white when absent
//	3  up to four floats passed to Kage as custom vertex data
//
// Uniform names are exported to Kage by upper-casing their first letter, so a
// glint uniform "tint" feeds a Kage variable "Tint".
package ebitenhost

import (
	"errors"
	"image/color"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/glint"
)

// Attribute locations with a fixed meaning.
const (
	LocPosition uint32 = iota
	LocTexCoords
	LocColor
	LocCustom
)

// DefaultFragmentShader samples the sprite sheet bound to unit 0.
const DefaultFragmentShader = `//kage:unit pixels
package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos) * color
}
`

type program struct {
	shader   *ebiten.Shader
	names    []string
	uniforms map[string]any
}

type attrib struct {
	kind           glint.DataKind
	stride, offset int
}

type vertexArray struct {
	vbo, ibo uint32
	attribs  map[uint32]attrib
}

// Device implements glint.Device on top of Ebitengine. Draws go to the image
// set with SetTarget; Host points it at the screen each frame.
type Device struct {
	next uint32

	stages   map[uint32]*ebiten.Shader // nil for the vertex stage
	programs map[uint32]*program
	arrays   map[uint32]*vertexArray
	buffers  map[uint32][]byte
	textures map[uint32]*ebiten.Image

	current *program
	bound   *vertexArray
	units   [4]*ebiten.Image
	target  *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint32
}

var (
	_ glint.Device                = (*Device)(nil)
	_ glint.DefaultShaderProvider = (*Device)(nil)
)

// NewDevice returns a device with no draw target.
func NewDevice() *Device {
	return &Device{
		stages:   make(map[uint32]*ebiten.Shader),
		programs: make(map[uint32]*program),
		arrays:   make(map[uint32]*vertexArray),
		buffers:  make(map[uint32][]byte),
		textures: make(map[uint32]*ebiten.Image),
	}
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

// SetTarget sets the image subsequent Clear and DrawIndexed calls draw into.
func (d *Device) SetTarget(img *ebiten.Image) { d.target = img }

// DefaultShaderSources implements glint.DefaultShaderProvider. The vertex
// source is ignored by this device.
func (d *Device) DefaultShaderSources() (vertex, fragment string) {
	return "", DefaultFragmentShader
}

// KageName returns the Kage variable a glint uniform called name binds to.
func KageName(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[n:]
}

// CompileShader compiles a Kage fragment program. Vertex sources are accepted
// as-is.
func (d *Device) CompileShader(stage glint.ShaderStage, source string) (uint32, error) {
	if stage == glint.StageVertex {
		h := d.handle()
		d.stages[h] = nil
		return h, nil
	}
	s, err := ebiten.NewShader([]byte(source))
	if err != nil {
		return 0, err
	}
	h := d.handle()
	d.stages[h] = s
	return h, nil
}

func (d *Device) DeleteShader(shader uint32) {
	delete(d.stages, shader)
}

// LinkProgram keeps the fragment stage. Ebitengine owns the shader object, so
// deleting the stage afterwards leaves the program intact.
func (d *Device) LinkProgram(shaders ...uint32) (uint32, error) {
	var frag *ebiten.Shader
	for _, h := range shaders {
		s, ok := d.stages[h]
		if !ok {
			return 0, errors.New("ebitenhost: link: unknown shader")
		}
		if s != nil {
			frag = s
		}
	}
	if frag == nil {
		return 0, errors.New("ebitenhost: link: no fragment stage")
	}
	h := d.handle()
	d.programs[h] = &program{shader: frag, uniforms: make(map[string]any)}
	return h, nil
}

func (d *Device) DeleteProgram(prog uint32) {
	p, ok := d.programs[prog]
	if !ok {
		return
	}
	if d.current == p {
		d.current = nil
	}
	p.shader.Deallocate()
	delete(d.programs, prog)
}

// UseProgram also unbinds every texture unit; the program rebinds its
// samplers before drawing.
func (d *Device) UseProgram(prog uint32) {
	d.current = d.programs[prog]
	d.units = [4]*ebiten.Image{}
}

// UniformLocation assigns a location per name. Kage does not report which
// uniforms a program declares, so every name resolves.
func (d *Device) UniformLocation(prog uint32, name string) int32 {
	p, ok := d.programs[prog]
	if !ok {
		return -1
	}
	kage := KageName(name)
	for i, n := range p.names {
		if n == kage {
			return int32(i)
		}
	}
	p.names = append(p.names, kage)
	return int32(len(p.names) - 1)
}

// Uniform stores a value for the next draw. Sampler units are implied by the
// order of Images and are not passed to Kage.
func (d *Device) Uniform(location int32, kind glint.DataKind, data []byte) {
	p := d.current
	if p == nil || location < 0 || int(location) >= len(p.names) || kind == glint.KindSampler2D {
		return
	}
	p.uniforms[p.names[location]] = uniformValue(kind, data)
}

func uniformValue(kind glint.DataKind, data []byte) any {
	n := kind.Components()
	switch kind.Scalar() {
	case glint.ScalarFloat:
		v := glint.DecodeFloat32s(data, n)
		if n == 1 {
			return v[0]
		}
		return v
	case glint.ScalarUInt:
		u := glint.DecodeUint32s(data, n)
		v := make([]int32, n)
		for i := range u {
			v[i] = int32(u[i])
		}
		if n == 1 {
			return v[0]
		}
		return v
	case glint.ScalarBool:
		v := glint.DecodeBools(data, n)
		if n == 1 {
			return v[0]
		}
		return v
	default:
		v := glint.DecodeInt32s(data, n)
		if n == 1 {
			return v[0]
		}
		return v
	}
}

func (d *Device) BindTexture(unit int, texture uint32) {
	if unit < 0 || unit >= len(d.units) {
		return
	}
	d.units[unit] = d.textures[texture]
}

func (d *Device) CreateVertexArray() uint32 {
	h := d.handle()
	d.arrays[h] = &vertexArray{attribs: make(map[uint32]attrib)}
	return h
}

func (d *Device) BindVertexArray(vao uint32) {
	d.bound = d.arrays[vao]
}

func (d *Device) DeleteVertexArray(vao uint32) {
	if d.bound == d.arrays[vao] {
		d.bound = nil
	}
	delete(d.arrays, vao)
}

// CreateBuffer allocates size bytes in memory and attaches them to the bound
// vertex array.
func (d *Device) CreateBuffer(kind glint.BufferKind, size int) uint32 {
	h := d.handle()
	d.buffers[h] = make([]byte, size)
	if d.bound != nil {
		if kind == glint.IndexBuffer {
			d.bound.ibo = h
		} else {
			d.bound.vbo = h
		}
	}
	return h
}

func (d *Device) BufferSubData(kind glint.BufferKind, buffer uint32, offset int, data []byte) {
	buf, ok := d.buffers[buffer]
	if !ok || offset < 0 || offset+len(data) > len(buf) {
		return
	}
	copy(buf[offset:], data)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	delete(d.buffers, buffer)
}

func (d *Device) VertexAttribPointer(location uint32, kind glint.DataKind, stride, offset int) {
	if d.bound == nil {
		return
	}
	d.bound.attribs[location] = attrib{kind: kind, stride: stride, offset: offset}
}

// CreateTexture uploads straight-alpha RGBA pixels. Ebitengine images hold
// premultiplied alpha, so the pixels are converted on the way in. The filter
// is applied per draw by Ebitengine and is ignored here.
func (d *Device) CreateTexture(width, height int, pixels []byte, _ glint.TextureFilter) (uint32, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return 0, &glint.TextureCreationError{Reason: "pixel buffer does not match texture size"}
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(premultiply(pixels))
	h := d.handle()
	d.textures[h] = img
	return h, nil
}

func premultiply(pix []byte) []byte {
	out := make([]byte, len(pix))
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint16(pix[i+3])
		out[i] = byte(uint16(pix[i]) * a / 255)
		out[i+1] = byte(uint16(pix[i+1]) * a / 255)
		out[i+2] = byte(uint16(pix[i+2]) * a / 255)
		out[i+3] = pix[i+3]
	}
	return out
}

func (d *Device) DeleteTexture(texture uint32) {
	img, ok := d.textures[texture]
	if !ok {
		return
	}
	for i, u := range d.units {
		if u == img {
			d.units[i] = nil
		}
	}
	img.Deallocate()
	delete(d.textures, texture)
}

func (d *Device) Clear(c glint.Color) {
	if d.target == nil {
		return
	}
	d.target.Fill(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// DrawIndexed converts the bound vertex array into Ebitengine vertices and
// draws them with the current program.
func (d *Device) DrawIndexed(count int) {
	if d.target == nil || d.current == nil || d.bound == nil {
		return
	}
	vbuf, ibuf := d.buffers[d.bound.vbo], d.buffers[d.bound.ibo]
	if count > len(ibuf)/4 {
		count = len(ibuf) / 4
	}
	d.inds = append(d.inds[:0], glint.DecodeUint32s(ibuf, count)...)
	var maxIndex uint32
	for _, i := range d.inds {
		maxIndex = max(maxIndex, i)
	}
	if count == 0 {
		return
	}

	b := d.target.Bounds()
	src := d.units[0]
	var texW, texH float32 = 1, 1
	if src != nil {
		sb := src.Bounds()
		texW, texH = float32(sb.Dx()), float32(sb.Dy())
	}
	d.verts = decodeVertices(d.verts[:0], vbuf, d.bound.attribs, int(maxIndex)+1,
		float32(b.Dx()), float32(b.Dy()), texW, texH)

	var op ebiten.DrawTrianglesShaderOptions
	op.Uniforms = d.current.uniforms
	op.Images = sameSize(d.units)
	d.target.DrawTrianglesShader32(d.verts, d.inds, d.current.shader, &op)
}

// sameSize drops images whose size differs from unit 0. Ebitengine requires
// every source image of a draw to have the same size.
func sameSize(units [4]*ebiten.Image) [4]*ebiten.Image {
	if units[0] == nil {
		return units
	}
	size := units[0].Bounds().Size()
	for i := 1; i < len(units); i++ {
		if units[i] != nil && units[i].Bounds().Size() != size {
			units[i] = nil
		}
	}
	return units
}

// decodeVertices reads n interleaved records. Positions are mapped from
// normalized device coordinates to target pixels, texture coordinates to
// source pixels.
func decodeVertices(dst []ebiten.Vertex, vbuf []byte, attribs map[uint32]attrib, n int, dstW, dstH, texW, texH float32) []ebiten.Vertex {
	read := func(a attrib, i int) []float32 {
		start := i*a.stride + a.offset
		size := a.kind.Size()
		if start+size > len(vbuf) {
			return make([]float32, a.kind.Components())
		}
		return floats(a.kind, vbuf[start:start+size])
	}
	for i := 0; i < n; i++ {
		v := ebiten.Vertex{ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
		if a, ok := attribs[LocPosition]; ok {
			p := read(a, i)
			v.DstX = (p[0] + 1) / 2 * dstW
			if len(p) > 1 {
				v.DstY = (1 - p[1]) / 2 * dstH
			}
		}
		if a, ok := attribs[LocTexCoords]; ok {
			uv := read(a, i)
			v.SrcX = uv[0] * texW
			if len(uv) > 1 {
				v.SrcY = uv[1] * texH
			}
		}
		if a, ok := attribs[LocColor]; ok {
			c := append(read(a, i), 1, 1, 1, 1)
			v.ColorR, v.ColorG, v.ColorB, v.ColorA = c[0], c[1], c[2], c[3]
		}
		if a, ok := attribs[LocCustom]; ok {
			c := append(read(a, i), 0, 0, 0, 0)
			v.Custom0, v.Custom1, v.Custom2, v.Custom3 = c[0], c[1], c[2], c[3]
		}
		dst = append(dst, v)
	}
	return dst
}

// floats widens any attribute kind to float32 components.
func floats(kind glint.DataKind, data []byte) []float32 {
	n := kind.Components()
	switch kind.Scalar() {
	case glint.ScalarInt:
		out := make([]float32, n)
		for i, v := range glint.DecodeInt32s(data, n) {
			out[i] = float32(v)
		}
		return out
	case glint.ScalarUInt:
		out := make([]float32, n)
		for i, v := range glint.DecodeUint32s(data, n) {
			out[i] = float32(v)
		}
		return out
	case glint.ScalarBool:
		out := make([]float32, n)
		for i, v := range glint.DecodeBools(data, n) {
			out[i] = float32(v)
		}
		return out
	default:
		return glint.DecodeFloat32s(data, n)
	}
}
