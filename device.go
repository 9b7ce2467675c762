package glint

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	if s == StageFragment {
		return "fragment"
	}
	return "vertex"
}

// BufferKind selects the binding target of a device buffer.
type BufferKind uint8

const (
	VertexBuffer BufferKind = iota // per-vertex records
	IndexBuffer                    // uint32 triangle indices
)

// Device is the GPU API the renderer drives. Handles are device object names;
// zero is never a valid handle. Implementations are not safe for concurrent use
// and must be called from the thread that owns the graphics context.
//
// glbackend implements Device over OpenGL 3.3 core and ebitenhost over
// Ebitengine.
type Device interface {
	// CompileShader compiles one stage. On failure the returned error text is
	// the driver's diagnostic log and no shader object remains allocated.
	CompileShader(stage ShaderStage, source string) (uint32, error)
	DeleteShader(shader uint32)
	// LinkProgram links compiled stages into a program. On failure the error
	// text is the link log and no program object remains allocated.
	LinkProgram(shaders ...uint32) (uint32, error)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	// UniformLocation returns -1 for names the program does not use.
	UniformLocation(program uint32, name string) int32
	// Uniform uploads data, encoded as kind, to the current program.
	Uniform(location int32, kind DataKind, data []byte)
	BindTexture(unit int, texture uint32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	// CreateBuffer allocates size bytes of dynamic storage and binds it to the
	// current vertex array under kind.
	CreateBuffer(kind BufferKind, size int) uint32
	// BufferSubData writes data at offset. Callers never write past the size
	// given to CreateBuffer.
	BufferSubData(kind BufferKind, buffer uint32, offset int, data []byte)
	DeleteBuffer(buffer uint32)
	// VertexAttribPointer enables location on the current vertex array and
	// points it at offset within records of stride bytes.
	VertexAttribPointer(location uint32, kind DataKind, stride, offset int)

	// CreateTexture uploads RGBA pixels with clamp-to-edge wrapping.
	CreateTexture(width, height int, pixels []byte, filter TextureFilter) (uint32, error)
	DeleteTexture(texture uint32)

	Clear(c Color)
	// DrawIndexed draws count uint32 indices from the current vertex array as
	// triangles.
	DrawIndexed(count int)
}

// Window is the presentation surface.
type Window interface {
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	// SwapBuffers presents the finished frame.
	SwapBuffers()
}

// DefaultShaderProvider is implemented by devices whose shading language is
// not GLSL 330. The renderer builds its default program from these sources.
type DefaultShaderProvider interface {
	DefaultShaderSources() (vertex, fragment string)
}

// ImageDecoder turns encoded image bytes into an RGBA buffer.
type ImageDecoder func(data []byte) (width, height int, pix []byte, err error)
