package glint

import (
	"encoding/binary"
	"math"
)

// Values travel to the device in native byte order, matching what the driver
// reads from client memory.

func putF32(dst []byte, vs ...float32) {
	for i, v := range vs {
		binary.NativeEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}

func putI32(dst []byte, vs ...int32) {
	for i, v := range vs {
		binary.NativeEndian.PutUint32(dst[i*4:], uint32(v))
	}
}

func putU32(dst []byte, vs ...uint32) {
	for i, v := range vs {
		binary.NativeEndian.PutUint32(dst[i*4:], v)
	}
}

func putBool(dst []byte, vs ...bool) {
	for i, v := range vs {
		if v {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// DecodeFloat32s reads n float32 values encoded by the binding model.
// Devices use it to unpack uniform data.
func DecodeFloat32s(data []byte, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.NativeEndian.Uint32(data[i*4:]))
	}
	return out
}

// DecodeInt32s reads n int32 values encoded by the binding model.
func DecodeInt32s(data []byte, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary.NativeEndian.Uint32(data[i*4:]))
	}
	return out
}

// DecodeUint32s reads n uint32 values encoded by the binding model.
func DecodeUint32s(data []byte, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.NativeEndian.Uint32(data[i*4:])
	}
	return out
}

// DecodeBools reads n one-byte booleans and widens them to int32 0/1, the
// form shading languages accept for bool uniforms.
func DecodeBools(data []byte, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		if data[i] != 0 {
			out[i] = 1
		}
	}
	return out
}

// appendIndices appends the two-triangle quad pattern for the sprite at
// position i within a batch.
func appendIndices(dst []byte, i int) []byte {
	base := uint32(4 * i)
	var quad [6 * 4]byte
	putU32(quad[:], base+0, base+1, base+2, base+2, base+1, base+3)
	return append(dst, quad[:]...)
}
