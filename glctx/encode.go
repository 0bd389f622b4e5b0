package glctx

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/teapot/glctx/gl"
)

// Float32Bytes packs v as little-endian IEEE 754 values, the layout GL
// expects for FLOAT vertex attributes.
func Float32Bytes(v []float32) []byte {
	out := make([]byte, 0, len(v)*4)
	for _, f := range v {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	return out
}

// Uint16Bytes packs v as little-endian UNSIGNED_SHORT indices.
func Uint16Bytes(v []uint16) []byte {
	out := make([]byte, 0, len(v)*2)
	for _, i := range v {
		out = binary.LittleEndian.AppendUint16(out, i)
	}
	return out
}

// BytesFloat32 is the inverse of Float32Bytes. Trailing bytes that do not
// form a whole value are ignored.
func BytesFloat32(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

// BytesUint16 is the inverse of Uint16Bytes.
func BytesUint16(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return out
}

// ErrorName returns the symbolic name of a GL error code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "NO_ERROR"
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "UNKNOWN_ERROR"
	}
}
