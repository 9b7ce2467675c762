package glint

import "github.com/go-gl/mathgl/mgl32"

// UniformData produces one value per draw call. It is evaluated against the
// first sprite of each batch.
//
// Matrix variants follow shading-language naming (columns x rows) and return
// the mgl32 type with the same column-major layout, so UniformFloatMat2x3
// returns an mgl32.Mat3x2.
type UniformData interface {
	Kind() DataKind
	encode(ctx *RenderContext, s Sprite) []byte
}

type (
	UniformFloat     func(ctx *RenderContext, s Sprite) float32
	UniformFloatVec2 func(ctx *RenderContext, s Sprite) mgl32.Vec2
	UniformFloatVec3 func(ctx *RenderContext, s Sprite) mgl32.Vec3
	UniformFloatVec4 func(ctx *RenderContext, s Sprite) mgl32.Vec4

	UniformFloatMat2   func(ctx *RenderContext, s Sprite) mgl32.Mat2
	UniformFloatMat3   func(ctx *RenderContext, s Sprite) mgl32.Mat3
	UniformFloatMat4   func(ctx *RenderContext, s Sprite) mgl32.Mat4
	UniformFloatMat2x3 func(ctx *RenderContext, s Sprite) mgl32.Mat3x2
	UniformFloatMat2x4 func(ctx *RenderContext, s Sprite) mgl32.Mat4x2
	UniformFloatMat3x2 func(ctx *RenderContext, s Sprite) mgl32.Mat2x3
	UniformFloatMat3x4 func(ctx *RenderContext, s Sprite) mgl32.Mat4x3
	UniformFloatMat4x2 func(ctx *RenderContext, s Sprite) mgl32.Mat2x4
	UniformFloatMat4x3 func(ctx *RenderContext, s Sprite) mgl32.Mat3x4

	UniformInt     func(ctx *RenderContext, s Sprite) int32
	UniformIntVec2 func(ctx *RenderContext, s Sprite) [2]int32
	UniformIntVec3 func(ctx *RenderContext, s Sprite) [3]int32
	UniformIntVec4 func(ctx *RenderContext, s Sprite) [4]int32

	UniformBool     func(ctx *RenderContext, s Sprite) bool
	UniformBoolVec2 func(ctx *RenderContext, s Sprite) [2]bool
	UniformBoolVec3 func(ctx *RenderContext, s Sprite) [3]bool
	UniformBoolVec4 func(ctx *RenderContext, s Sprite) [4]bool

	UniformUInt     func(ctx *RenderContext, s Sprite) uint32
	UniformUIntVec2 func(ctx *RenderContext, s Sprite) [2]uint32
	UniformUIntVec3 func(ctx *RenderContext, s Sprite) [3]uint32
	UniformUIntVec4 func(ctx *RenderContext, s Sprite) [4]uint32

	// UniformSampler2D returns a texture handle. The program binds it to a
	// texture unit before drawing.
	UniformSampler2D func(ctx *RenderContext, s Sprite) uint32
)

func (UniformFloat) Kind() DataKind       { return KindFloat }
func (UniformFloatVec2) Kind() DataKind   { return KindFloatVec2 }
func (UniformFloatVec3) Kind() DataKind   { return KindFloatVec3 }
func (UniformFloatVec4) Kind() DataKind   { return KindFloatVec4 }
func (UniformFloatMat2) Kind() DataKind   { return KindFloatMat2 }
func (UniformFloatMat3) Kind() DataKind   { return KindFloatMat3 }
func (UniformFloatMat4) Kind() DataKind   { return KindFloatMat4 }
func (UniformFloatMat2x3) Kind() DataKind { return KindFloatMat2x3 }
func (UniformFloatMat2x4) Kind() DataKind { return KindFloatMat2x4 }
func (UniformFloatMat3x2) Kind() DataKind { return KindFloatMat3x2 }
func (UniformFloatMat3x4) Kind() DataKind { return KindFloatMat3x4 }
func (UniformFloatMat4x2) Kind() DataKind { return KindFloatMat4x2 }
func (UniformFloatMat4x3) Kind() DataKind { return KindFloatMat4x3 }
func (UniformInt) Kind() DataKind         { return KindInt }
func (UniformIntVec2) Kind() DataKind     { return KindIntVec2 }
func (UniformIntVec3) Kind() DataKind     { return KindIntVec3 }
func (UniformIntVec4) Kind() DataKind     { return KindIntVec4 }
func (UniformBool) Kind() DataKind        { return KindBool }
func (UniformBoolVec2) Kind() DataKind    { return KindBoolVec2 }
func (UniformBoolVec3) Kind() DataKind    { return KindBoolVec3 }
func (UniformBoolVec4) Kind() DataKind    { return KindBoolVec4 }
func (UniformUInt) Kind() DataKind        { return KindUInt }
func (UniformUIntVec2) Kind() DataKind    { return KindUIntVec2 }
func (UniformUIntVec3) Kind() DataKind    { return KindUIntVec3 }
func (UniformUIntVec4) Kind() DataKind    { return KindUIntVec4 }
func (UniformSampler2D) Kind() DataKind   { return KindSampler2D }

func floats(kind DataKind, vs ...float32) []byte {
	b := make([]byte, kind.Size())
	putF32(b, vs...)
	return b
}

func ints(kind DataKind, vs ...int32) []byte {
	b := make([]byte, kind.Size())
	putI32(b, vs...)
	return b
}

func uints(kind DataKind, vs ...uint32) []byte {
	b := make([]byte, kind.Size())
	putU32(b, vs...)
	return b
}

func bools(kind DataKind, vs ...bool) []byte {
	b := make([]byte, kind.Size())
	putBool(b, vs...)
	return b
}

func (f UniformFloat) encode(ctx *RenderContext, s Sprite) []byte {
	return floats(KindFloat, f(ctx, s))
}

func (f UniformFloatVec2) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return floats(KindFloatVec2, v[:]...)
}

func (f UniformFloatVec3) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return floats(KindFloatVec3, v[:]...)
}

func (f UniformFloatVec4) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return floats(KindFloatVec4, v[:]...)
}

func (f UniformFloatMat2) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat2, m[:]...)
}

func (f UniformFloatMat3) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat3, m[:]...)
}

func (f UniformFloatMat4) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat4, m[:]...)
}

func (f UniformFloatMat2x3) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat2x3, m[:]...)
}

func (f UniformFloatMat2x4) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat2x4, m[:]...)
}

func (f UniformFloatMat3x2) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat3x2, m[:]...)
}

func (f UniformFloatMat3x4) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat3x4, m[:]...)
}

func (f UniformFloatMat4x2) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat4x2, m[:]...)
}

func (f UniformFloatMat4x3) encode(ctx *RenderContext, s Sprite) []byte {
	m := f(ctx, s)
	return floats(KindFloatMat4x3, m[:]...)
}

func (f UniformInt) encode(ctx *RenderContext, s Sprite) []byte {
	return ints(KindInt, f(ctx, s))
}

func (f UniformIntVec2) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return ints(KindIntVec2, v[:]...)
}

func (f UniformIntVec3) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return ints(KindIntVec3, v[:]...)
}

func (f UniformIntVec4) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return ints(KindIntVec4, v[:]...)
}

func (f UniformBool) encode(ctx *RenderContext, s Sprite) []byte {
	return bools(KindBool, f(ctx, s))
}

func (f UniformBoolVec2) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return bools(KindBoolVec2, v[:]...)
}

func (f UniformBoolVec3) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return bools(KindBoolVec3, v[:]...)
}

func (f UniformBoolVec4) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return bools(KindBoolVec4, v[:]...)
}

func (f UniformUInt) encode(ctx *RenderContext, s Sprite) []byte {
	return uints(KindUInt, f(ctx, s))
}

func (f UniformUIntVec2) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return uints(KindUIntVec2, v[:]...)
}

func (f UniformUIntVec3) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return uints(KindUIntVec3, v[:]...)
}

func (f UniformUIntVec4) encode(ctx *RenderContext, s Sprite) []byte {
	v := f(ctx, s)
	return uints(KindUIntVec4, v[:]...)
}

func (f UniformSampler2D) encode(ctx *RenderContext, s Sprite) []byte {
	return uints(KindSampler2D, f(ctx, s))
}

// Uniform binds per-draw data to a named shader uniform.
type Uniform struct {
	Name string
	Data UniformData
}

// NewUniform pairs data with a shader uniform name.
func NewUniform(name string, data UniformData) Uniform {
	return Uniform{Name: name, Data: data}
}

func (u Uniform) Kind() DataKind { return u.Data.Kind() }

// Evaluate runs the callback for s and returns the encoded value.
func (u Uniform) Evaluate(ctx *RenderContext, s Sprite) []byte {
	return u.Data.encode(ctx, s)
}
