package glint

import "fmt"

// DefaultBatchCapacity is the number of sprites a program's buffers hold
// unless Config.BatchCapacity says otherwise.
const DefaultBatchCapacity = 10000

// DefaultVertexShader is the GLSL source of the default program's vertex
// stage. It expects a vec2 position at location 0 and a vec2 texture
// coordinate at location 1.
const DefaultVertexShader = `#version 330 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec2 tex_coords;

out vec2 frag_tex_coords;

void main() {
    gl_Position = vec4(position, 0.0, 1.0);
    frag_tex_coords = tex_coords;
}
`

// DefaultFragmentShader samples the sprite sheet bound to tex_sample.
const DefaultFragmentShader = `#version 330 core

in vec2 frag_tex_coords;

uniform sampler2D tex_sample;

out vec4 frag_color;

void main() {
    frag_color = texture(tex_sample, frag_tex_coords);
}
`

// DefaultAttributes returns the bindings of the default program.
func DefaultAttributes() []Attribute {
	return []Attribute{
		RotatedPositionAttribute("position", 0),
		FlippedTextureUVAttribute("tex_coords", 1),
	}
}

// DefaultUniforms returns the uniforms of the default program.
func DefaultUniforms() []Uniform {
	return []Uniform{SpriteSheetTextureUniform("tex_sample")}
}

const (
	verticesPerSprite = 4
	indicesPerSprite  = 6
	indexSize         = 4
)

// ShaderProgram is a linked program with its attribute layout, uniform
// bindings and the vertex array, vertex buffer and index buffer it draws
// from. The buffers hold Capacity sprites and are never written beyond.
type ShaderProgram struct {
	dev        Device
	program    uint32
	attributes []Attribute
	uniforms   []Uniform

	offsets        []int   // byte offset of each attribute in a vertex record
	bytesPerVertex int
	locations      []int32 // uniform locations, -1 if unused by the program
	units          []int   // texture unit of each sampler uniform, -1 otherwise

	vao, vbo, ibo uint32
	capacity      int
	indices       []byte // index pattern for capacity sprites

	released bool
}

// vertexLayout returns each attribute's offset within a vertex record and the
// record size.
func vertexLayout(attrs []Attribute) (offsets []int, stride int) {
	offsets = make([]int, len(attrs))
	for i, a := range attrs {
		offsets[i] = stride
		stride += a.Size()
	}
	return offsets, stride
}

// NewShaderProgram compiles and links the given sources, then allocates a
// vertex array with buffers for capacity sprites. A capacity of zero or less
// selects DefaultBatchCapacity. Compile and link failures return a
// *ShaderError and leave no device objects behind.
func NewShaderProgram(dev Device, vertexSrc, fragmentSrc string, attributes []Attribute, uniforms []Uniform, capacity int) (*ShaderProgram, error) {
	for _, a := range attributes {
		if a.Data == nil {
			return nil, fmt.Errorf("glint: attribute %q has no data", a.Name)
		}
	}
	for _, u := range uniforms {
		if u.Data == nil {
			return nil, fmt.Errorf("glint: uniform %q has no data", u.Name)
		}
	}
	if capacity <= 0 {
		capacity = DefaultBatchCapacity
	}

	program, err := buildProgram(dev, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &ShaderProgram{
		dev:        dev,
		program:    program,
		attributes: append([]Attribute(nil), attributes...),
		uniforms:   append([]Uniform(nil), uniforms...),
	}
	p.offsets, p.bytesPerVertex = vertexLayout(p.attributes)

	p.locations = make([]int32, len(p.uniforms))
	p.units = make([]int, len(p.uniforms))
	unit := 0
	for i, u := range p.uniforms {
		p.locations[i] = dev.UniformLocation(program, u.Name)
		p.units[i] = -1
		if u.Kind() == KindSampler2D {
			p.units[i] = unit
			unit++
		}
	}

	p.vao = dev.CreateVertexArray()
	dev.BindVertexArray(p.vao)
	p.allocate(capacity)
	dev.BindVertexArray(0)
	return p, nil
}

func buildProgram(dev Device, vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := dev.CompileShader(StageVertex, vertexSrc)
	if err != nil {
		return 0, &ShaderError{Kind: CompilationError, Stage: StageVertex, Log: err.Error()}
	}
	fs, err := dev.CompileShader(StageFragment, fragmentSrc)
	if err != nil {
		dev.DeleteShader(vs)
		return 0, &ShaderError{Kind: CompilationError, Stage: StageFragment, Log: err.Error()}
	}
	program, err := dev.LinkProgram(vs, fs)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)
	if err != nil {
		return 0, &ShaderError{Kind: LinkingError, Log: err.Error()}
	}
	return program, nil
}

// allocate creates buffers for capacity sprites on the bound vertex array and
// points every attribute into the vertex buffer.
func (p *ShaderProgram) allocate(capacity int) {
	p.capacity = capacity
	p.vbo = p.dev.CreateBuffer(VertexBuffer, capacity*verticesPerSprite*p.bytesPerVertex)
	p.ibo = p.dev.CreateBuffer(IndexBuffer, capacity*indicesPerSprite*indexSize)
	for i, a := range p.attributes {
		p.dev.VertexAttribPointer(a.Location, a.Kind(), p.bytesPerVertex, p.offsets[i])
	}
	p.indices = make([]byte, 0, capacity*indicesPerSprite*indexSize)
	for i := 0; i < capacity; i++ {
		p.indices = appendIndices(p.indices, i)
	}
}

// Resize reallocates the buffers for capacity sprites.
func (p *ShaderProgram) Resize(capacity int) {
	if capacity <= 0 {
		capacity = DefaultBatchCapacity
	}
	if p.released || capacity == p.capacity {
		return
	}
	p.dev.DeleteBuffer(p.vbo)
	p.dev.DeleteBuffer(p.ibo)
	p.dev.BindVertexArray(p.vao)
	p.allocate(capacity)
	p.dev.BindVertexArray(0)
}

// ID returns the program's device handle.
func (p *ShaderProgram) ID() ShaderID { return ShaderID(p.program) }

// Attributes returns the attribute bindings in layout order.
func (p *ShaderProgram) Attributes() []Attribute { return p.attributes }

func (p *ShaderProgram) Uniforms() []Uniform { return p.uniforms }

// Offsets returns each attribute's byte offset within a vertex record.
func (p *ShaderProgram) Offsets() []int { return p.offsets }

// BytesPerVertex returns the size of one interleaved vertex record.
func (p *ShaderProgram) BytesPerVertex() int { return p.bytesPerVertex }

// Capacity returns the number of sprites one draw call can hold.
func (p *ShaderProgram) Capacity() int { return p.capacity }

// applyUniforms evaluates every uniform against s and uploads it. Samplers
// bind their texture to the uniform's unit and upload the unit number.
func (p *ShaderProgram) applyUniforms(ctx *RenderContext, s Sprite) {
	for i, u := range p.uniforms {
		loc := p.locations[i]
		data := u.Evaluate(ctx, s)
		if unit := p.units[i]; unit >= 0 {
			p.dev.BindTexture(unit, DecodeUint32s(data, 1)[0])
			if loc >= 0 {
				p.dev.Uniform(loc, KindSampler2D, uints(KindSampler2D, uint32(unit)))
			}
			continue
		}
		if loc < 0 {
			continue
		}
		p.dev.Uniform(loc, u.Kind(), data)
	}
}

// fill writes the interleaved vertex records of sprites into dst.
func (p *ShaderProgram) fill(dst []byte, ctx *RenderContext, sprites []Sprite) {
	spriteBytes := verticesPerSprite * p.bytesPerVertex
	for i := range sprites {
		rec := dst[i*spriteBytes:]
		for j := range p.attributes {
			p.attributes[j].Data.put(rec[p.offsets[j]:], p.bytesPerVertex, ctx, sprites[i])
		}
	}
}

// draw submits sprites in as many draw calls as capacity requires, growing
// scratch as needed, and returns the number of draw calls issued.
func (p *ShaderProgram) draw(ctx *RenderContext, sprites []Sprite, scratch *[]byte) int {
	if p.released || len(sprites) == 0 {
		return 0
	}
	p.dev.UseProgram(p.program)
	p.dev.BindVertexArray(p.vao)
	spriteBytes := verticesPerSprite * p.bytesPerVertex
	calls := 0
	for start := 0; start < len(sprites); start += p.capacity {
		end := min(start+p.capacity, len(sprites))
		chunk := sprites[start:end]
		n := len(chunk)

		p.applyUniforms(ctx, chunk[0])

		need := n * spriteBytes
		if cap(*scratch) < need {
			*scratch = make([]byte, need)
		}
		verts := (*scratch)[:need]
		p.fill(verts, ctx, chunk)

		p.dev.BufferSubData(VertexBuffer, p.vbo, 0, verts)
		p.dev.BufferSubData(IndexBuffer, p.ibo, 0, p.indices[:n*indicesPerSprite*indexSize])
		p.dev.DrawIndexed(n * indicesPerSprite)
		calls++
	}
	p.dev.BindVertexArray(0)
	return calls
}

// release deletes the program, buffers and vertex array. It is safe to call
// more than once.
func (p *ShaderProgram) release() {
	if p.released {
		return
	}
	p.released = true
	p.dev.DeleteBuffer(p.vbo)
	p.dev.DeleteBuffer(p.ibo)
	p.dev.DeleteVertexArray(p.vao)
	p.dev.DeleteProgram(p.program)
}
