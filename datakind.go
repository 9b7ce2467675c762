package glint

import "fmt"

// DataKind is a GPU-transferable shape: a scalar, vector, matrix or sampler.
// Every kind has a fixed byte width.
type DataKind uint8

const (
	KindFloat DataKind = iota
	KindFloatVec2
	KindFloatVec3
	KindFloatVec4
	KindFloatMat2
	KindFloatMat3
	KindFloatMat4
	KindFloatMat2x3
	KindFloatMat2x4
	KindFloatMat3x2
	KindFloatMat3x4
	KindFloatMat4x2
	KindFloatMat4x3
	KindInt
	KindIntVec2
	KindIntVec3
	KindIntVec4
	KindBool
	KindBoolVec2
	KindBoolVec3
	KindBoolVec4
	KindUInt
	KindUIntVec2
	KindUIntVec3
	KindUIntVec4
	KindSampler2D
	kindCount
)

// ScalarType is the component type of a DataKind.
type ScalarType uint8

const (
	ScalarFloat ScalarType = iota
	ScalarInt
	ScalarUInt
	ScalarBool
)

type kindInfo struct {
	name    string
	scalar  ScalarType
	columns int // 1 for non-matrices
	rows    int
}

var kindTable = [kindCount]kindInfo{
	KindFloat:       {"float", ScalarFloat, 1, 1},
	KindFloatVec2:   {"vec2", ScalarFloat, 1, 2},
	KindFloatVec3:   {"vec3", ScalarFloat, 1, 3},
	KindFloatVec4:   {"vec4", ScalarFloat, 1, 4},
	KindFloatMat2:   {"mat2", ScalarFloat, 2, 2},
	KindFloatMat3:   {"mat3", ScalarFloat, 3, 3},
	KindFloatMat4:   {"mat4", ScalarFloat, 4, 4},
	KindFloatMat2x3: {"mat2x3", ScalarFloat, 2, 3},
	KindFloatMat2x4: {"mat2x4", ScalarFloat, 2, 4},
	KindFloatMat3x2: {"mat3x2", ScalarFloat, 3, 2},
	KindFloatMat3x4: {"mat3x4", ScalarFloat, 3, 4},
	KindFloatMat4x2: {"mat4x2", ScalarFloat, 4, 2},
	KindFloatMat4x3: {"mat4x3", ScalarFloat, 4, 3},
	KindInt:         {"int", ScalarInt, 1, 1},
	KindIntVec2:     {"ivec2", ScalarInt, 1, 2},
	KindIntVec3:     {"ivec3", ScalarInt, 1, 3},
	KindIntVec4:     {"ivec4", ScalarInt, 1, 4},
	KindBool:        {"bool", ScalarBool, 1, 1},
	KindBoolVec2:    {"bvec2", ScalarBool, 1, 2},
	KindBoolVec3:    {"bvec3", ScalarBool, 1, 3},
	KindBoolVec4:    {"bvec4", ScalarBool, 1, 4},
	KindUInt:        {"uint", ScalarUInt, 1, 1},
	KindUIntVec2:    {"uvec2", ScalarUInt, 1, 2},
	KindUIntVec3:    {"uvec3", ScalarUInt, 1, 3},
	KindUIntVec4:    {"uvec4", ScalarUInt, 1, 4},
	KindSampler2D:   {"sampler2D", ScalarUInt, 1, 1},
}

func (k DataKind) info() kindInfo {
	if k >= kindCount {
		return kindInfo{name: fmt.Sprintf("DataKind(%d)", uint8(k)), columns: 1, rows: 0}
	}
	return kindTable[k]
}

// String returns the GLSL spelling of the kind.
func (k DataKind) String() string { return k.info().name }

// Scalar returns the component type.
func (k DataKind) Scalar() ScalarType { return k.info().scalar }

// Columns returns the matrix column count, 1 for scalars and vectors.
func (k DataKind) Columns() int { return k.info().columns }

// Rows returns the matrix row count or the vector length.
func (k DataKind) Rows() int { return k.info().rows }

// IsMatrix reports whether the kind is a float matrix.
func (k DataKind) IsMatrix() bool { return k.info().columns > 1 }

// Components returns the number of scalar components.
func (k DataKind) Components() int {
	i := k.info()
	return i.columns * i.rows
}

// ComponentSize returns the byte width of one component: 1 for bools, 4
// otherwise. A sampler is carried as a uint32 texture handle.
func (k DataKind) ComponentSize() int {
	if k.Scalar() == ScalarBool {
		return 1
	}
	return 4
}

// Size returns the byte width of one value of this kind.
func (k DataKind) Size() int {
	return k.Components() * k.ComponentSize()
}
