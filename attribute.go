package glint

import "github.com/go-gl/mathgl/mgl32"

// AttributeData produces one value per quad corner. The corners are, in
// order, bottom-left, bottom-right, top-left and top-right.
//
// The set of implementations is closed: the function types below are the
// only variants.
type AttributeData interface {
	Kind() DataKind
	// put writes the four corner values into interleaved vertex records.
	// dst starts at this attribute's offset in the first record.
	put(dst []byte, stride int, ctx *RenderContext, s Sprite)
}

type (
	AttrFloat     func(ctx *RenderContext, s Sprite) [4]float32
	AttrFloatVec2 func(ctx *RenderContext, s Sprite) [4]mgl32.Vec2
	AttrFloatVec3 func(ctx *RenderContext, s Sprite) [4]mgl32.Vec3
	AttrFloatVec4 func(ctx *RenderContext, s Sprite) [4]mgl32.Vec4
	AttrInt       func(ctx *RenderContext, s Sprite) [4]int32
	AttrIntVec2   func(ctx *RenderContext, s Sprite) [4][2]int32
	AttrIntVec3   func(ctx *RenderContext, s Sprite) [4][3]int32
	AttrIntVec4   func(ctx *RenderContext, s Sprite) [4][4]int32
	AttrBool      func(ctx *RenderContext, s Sprite) [4]bool
	AttrBoolVec2  func(ctx *RenderContext, s Sprite) [4][2]bool
	AttrBoolVec3  func(ctx *RenderContext, s Sprite) [4][3]bool
	AttrBoolVec4  func(ctx *RenderContext, s Sprite) [4][4]bool
	AttrUInt      func(ctx *RenderContext, s Sprite) [4]uint32
	AttrUIntVec2  func(ctx *RenderContext, s Sprite) [4][2]uint32
	AttrUIntVec3  func(ctx *RenderContext, s Sprite) [4][3]uint32
	AttrUIntVec4  func(ctx *RenderContext, s Sprite) [4][4]uint32
)

func (AttrFloat) Kind() DataKind     { return KindFloat }
func (AttrFloatVec2) Kind() DataKind { return KindFloatVec2 }
func (AttrFloatVec3) Kind() DataKind { return KindFloatVec3 }
func (AttrFloatVec4) Kind() DataKind { return KindFloatVec4 }
func (AttrInt) Kind() DataKind       { return KindInt }
func (AttrIntVec2) Kind() DataKind   { return KindIntVec2 }
func (AttrIntVec3) Kind() DataKind   { return KindIntVec3 }
func (AttrIntVec4) Kind() DataKind   { return KindIntVec4 }
func (AttrBool) Kind() DataKind      { return KindBool }
func (AttrBoolVec2) Kind() DataKind  { return KindBoolVec2 }
func (AttrBoolVec3) Kind() DataKind  { return KindBoolVec3 }
func (AttrBoolVec4) Kind() DataKind  { return KindBoolVec4 }
func (AttrUInt) Kind() DataKind      { return KindUInt }
func (AttrUIntVec2) Kind() DataKind  { return KindUIntVec2 }
func (AttrUIntVec3) Kind() DataKind  { return KindUIntVec3 }
func (AttrUIntVec4) Kind() DataKind  { return KindUIntVec4 }

func (f AttrFloat) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putF32(dst[i*stride:], v)
	}
}

func (f AttrFloatVec2) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putF32(dst[i*stride:], v[:]...)
	}
}

func (f AttrFloatVec3) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putF32(dst[i*stride:], v[:]...)
	}
}

func (f AttrFloatVec4) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putF32(dst[i*stride:], v[:]...)
	}
}

func (f AttrInt) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putI32(dst[i*stride:], v)
	}
}

func (f AttrIntVec2) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putI32(dst[i*stride:], v[:]...)
	}
}

func (f AttrIntVec3) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putI32(dst[i*stride:], v[:]...)
	}
}

func (f AttrIntVec4) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putI32(dst[i*stride:], v[:]...)
	}
}

func (f AttrBool) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putBool(dst[i*stride:], v)
	}
}

func (f AttrBoolVec2) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putBool(dst[i*stride:], v[:]...)
	}
}

func (f AttrBoolVec3) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putBool(dst[i*stride:], v[:]...)
	}
}

func (f AttrBoolVec4) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putBool(dst[i*stride:], v[:]...)
	}
}

func (f AttrUInt) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putU32(dst[i*stride:], v)
	}
}

func (f AttrUIntVec2) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putU32(dst[i*stride:], v[:]...)
	}
}

func (f AttrUIntVec3) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putU32(dst[i*stride:], v[:]...)
	}
}

func (f AttrUIntVec4) put(dst []byte, stride int, ctx *RenderContext, s Sprite) {
	for i, v := range f(ctx, s) {
		putU32(dst[i*stride:], v[:]...)
	}
}

// Attribute binds per-vertex data to a vertex shader input location.
type Attribute struct {
	Name     string
	Location uint32
	Data     AttributeData
}

// NewAttribute pairs data with a shader input.
func NewAttribute(name string, location uint32, data AttributeData) Attribute {
	return Attribute{Name: name, Location: location, Data: data}
}

// Kind returns the data kind, or KindFloat for an attribute without data.
func (a Attribute) Kind() DataKind {
	if a.Data == nil {
		return KindFloat
	}
	return a.Data.Kind()
}

// Size returns the byte width of one corner value.
func (a Attribute) Size() int { return a.Kind().Size() }

// Evaluate runs the callback for s and returns the encoded value of each
// corner, bottom-left first.
func (a Attribute) Evaluate(ctx *RenderContext, s Sprite) [4][]byte {
	size := a.Size()
	buf := make([]byte, 4*size)
	a.Data.put(buf, size, ctx, s)
	var out [4][]byte
	for i := range out {
		out[i] = buf[i*size : (i+1)*size : (i+1)*size]
	}
	return out
}
