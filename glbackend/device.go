// Package glbackend implements glint's Device on OpenGL 3.3 core and its
// Window on GLFW.
package glbackend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/phanxgames/glint"
)

// Device issues glint draw commands to the current OpenGL context. Create it
// with NewWindow, which makes the context current and loads the GL functions.
type Device struct{}

var _ glint.Device = (*Device)(nil)

func shaderType(stage glint.ShaderStage) uint32 {
	if stage == glint.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func bufferTarget(kind glint.BufferKind) uint32 {
	if kind == glint.IndexBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// CompileShader compiles source. The error text is the driver's info log.
func (d *Device) CompileShader(stage glint.ShaderStage, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType(stage))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// LinkProgram links shaders. The error text is the driver's info log.
func (d *Device) LinkProgram(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, nil
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform uploads data to the current program. Bools are widened to ints and
// samplers carry their texture unit.
func (d *Device) Uniform(location int32, kind glint.DataKind, data []byte) {
	n := kind.Components()
	switch kind.Scalar() {
	case glint.ScalarFloat:
		v := glint.DecodeFloat32s(data, n)
		floatUniform(location, kind, v)
	case glint.ScalarInt:
		intUniform(location, n, glint.DecodeInt32s(data, n))
	case glint.ScalarBool:
		intUniform(location, n, glint.DecodeBools(data, n))
	case glint.ScalarUInt:
		v := glint.DecodeUint32s(data, n)
		if kind == glint.KindSampler2D {
			gl.Uniform1i(location, int32(v[0]))
			return
		}
		switch n {
		case 1:
			gl.Uniform1uiv(location, 1, &v[0])
		case 2:
			gl.Uniform2uiv(location, 1, &v[0])
		case 3:
			gl.Uniform3uiv(location, 1, &v[0])
		case 4:
			gl.Uniform4uiv(location, 1, &v[0])
		}
	}
}

func floatUniform(location int32, kind glint.DataKind, v []float32) {
	switch kind {
	case glint.KindFloat:
		gl.Uniform1fv(location, 1, &v[0])
	case glint.KindFloatVec2:
		gl.Uniform2fv(location, 1, &v[0])
	case glint.KindFloatVec3:
		gl.Uniform3fv(location, 1, &v[0])
	case glint.KindFloatVec4:
		gl.Uniform4fv(location, 1, &v[0])
	case glint.KindFloatMat2:
		gl.UniformMatrix2fv(location, 1, false, &v[0])
	case glint.KindFloatMat3:
		gl.UniformMatrix3fv(location, 1, false, &v[0])
	case glint.KindFloatMat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	case glint.KindFloatMat2x3:
		gl.UniformMatrix2x3fv(location, 1, false, &v[0])
	case glint.KindFloatMat2x4:
		gl.UniformMatrix2x4fv(location, 1, false, &v[0])
	case glint.KindFloatMat3x2:
		gl.UniformMatrix3x2fv(location, 1, false, &v[0])
	case glint.KindFloatMat3x4:
		gl.UniformMatrix3x4fv(location, 1, false, &v[0])
	case glint.KindFloatMat4x2:
		gl.UniformMatrix4x2fv(location, 1, false, &v[0])
	case glint.KindFloatMat4x3:
		gl.UniformMatrix4x3fv(location, 1, false, &v[0])
	}
}

func intUniform(location int32, n int, v []int32) {
	switch n {
	case 1:
		gl.Uniform1iv(location, 1, &v[0])
	case 2:
		gl.Uniform2iv(location, 1, &v[0])
	case 3:
		gl.Uniform3iv(location, 1, &v[0])
	case 4:
		gl.Uniform4iv(location, 1, &v[0])
	}
}

func (d *Device) BindTexture(unit int, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// CreateBuffer allocates size bytes of DYNAMIC_DRAW storage.
func (d *Device) CreateBuffer(kind glint.BufferKind, size int) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	target := bufferTarget(kind)
	gl.BindBuffer(target, buf)
	gl.BufferData(target, size, nil, gl.DYNAMIC_DRAW)
	return buf
}

func (d *Device) BufferSubData(kind glint.BufferKind, buffer uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	target := bufferTarget(kind)
	gl.BindBuffer(target, buffer)
	gl.BufferSubData(target, offset, len(data), gl.Ptr(data))
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// attribType returns the GL component type of kind and whether it must be
// bound as an integer attribute. Bools travel as unsigned bytes and are
// read as uint inputs in the shader.
func attribType(kind glint.DataKind) (xtype uint32, integer bool) {
	switch kind.Scalar() {
	case glint.ScalarInt:
		return gl.INT, true
	case glint.ScalarUInt:
		return gl.UNSIGNED_INT, true
	case glint.ScalarBool:
		return gl.UNSIGNED_BYTE, true
	default:
		return gl.FLOAT, false
	}
}

func (d *Device) VertexAttribPointer(location uint32, kind glint.DataKind, stride, offset int) {
	gl.EnableVertexAttribArray(location)
	xtype, integer := attribType(kind)
	size := int32(kind.Components())
	if integer {
		gl.VertexAttribIPointer(location, size, xtype, int32(stride), gl.PtrOffset(offset))
		return
	}
	gl.VertexAttribPointer(location, size, xtype, false, int32(stride), gl.PtrOffset(offset))
}

func glFilter(f glint.TextureFilter) int32 {
	if f == glint.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

// CreateTexture uploads RGBA pixels with clamp-to-edge wrapping.
func (d *Device) CreateTexture(width, height int, pixels []byte, filter glint.TextureFilter) (uint32, error) {
	for gl.GetError() != gl.NO_ERROR {
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, &glint.TextureCreationError{Reason: errorString(code)}
	}
	return tex, nil
}

func (d *Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (d *Device) Clear(c glint.Color) {
	r, g, b, a := c.RGBA()
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawIndexed(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("GL error 0x%04x", code)
	}
}
