package glint

import "testing"

func TestDataKindSize(t *testing.T) {
	tests := []struct {
		kind       DataKind
		components int
		size       int
	}{
		{KindFloat, 1, 4},
		{KindFloatVec2, 2, 8},
		{KindFloatVec4, 4, 16},
		{KindFloatMat2, 4, 16},
		{KindFloatMat3, 9, 36},
		{KindFloatMat4, 16, 64},
		{KindFloatMat2x3, 6, 24},
		{KindFloatMat3x4, 12, 48},
		{KindIntVec3, 3, 12},
		{KindBool, 1, 1},
		{KindBoolVec3, 3, 3},
		{KindUIntVec4, 4, 16},
		{KindSampler2D, 1, 4},
	}
	for _, tt := range tests {
		if got := tt.kind.Components(); got != tt.components {
			t.Errorf("%v.Components() = %d, want %d", tt.kind, got, tt.components)
		}
		if got := tt.kind.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.kind, got, tt.size)
		}
	}
}

func TestDataKindMatrixShape(t *testing.T) {
	if !KindFloatMat2x4.IsMatrix() {
		t.Error("mat2x4 should be a matrix")
	}
	if KindFloatVec4.IsMatrix() {
		t.Error("vec4 should not be a matrix")
	}
	if c, r := KindFloatMat2x4.Columns(), KindFloatMat2x4.Rows(); c != 2 || r != 4 {
		t.Errorf("mat2x4 shape = %dx%d, want 2x4", c, r)
	}
}

func TestDataKindScalar(t *testing.T) {
	tests := map[DataKind]ScalarType{
		KindFloatMat3: ScalarFloat,
		KindIntVec2:   ScalarInt,
		KindUInt:      ScalarUInt,
		KindBoolVec4:  ScalarBool,
	}
	for k, want := range tests {
		if got := k.Scalar(); got != want {
			t.Errorf("%v.Scalar() = %d, want %d", k, got, want)
		}
	}
}

func TestDataKindString(t *testing.T) {
	if got := KindFloatMat4x3.String(); got != "mat4x3" {
		t.Errorf("String() = %q, want mat4x3", got)
	}
	if got := DataKind(200).String(); got != "DataKind(200)" {
		t.Errorf("String() = %q, want DataKind(200)", got)
	}
}
