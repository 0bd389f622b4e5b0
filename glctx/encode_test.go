package glctx

import (
	"testing"

	"github.com/gogpu/teapot/glctx/gl"
)

func TestFloat32Bytes(t *testing.T) {
	in := []float32{0, 1, -2.5, 1e6}
	b := Float32Bytes(in)
	if len(b) != len(in)*4 {
		t.Fatalf("len = %d, want %d", len(b), len(in)*4)
	}
	// 1.0 is 0x3f800000 little-endian.
	if b[4] != 0x00 || b[7] != 0x3f {
		t.Errorf("1.0 encoded as % x", b[4:8])
	}
	got := BytesFloat32(b)
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestUint16Bytes(t *testing.T) {
	b := Uint16Bytes([]uint16{1, 0x0203})
	want := []byte{0x01, 0x00, 0x03, 0x02}
	if string(b) != string(want) {
		t.Errorf("Uint16Bytes = % x, want % x", b, want)
	}
	if got := BytesUint16(b); got[1] != 0x0203 {
		t.Errorf("BytesUint16 round trip = %v", got)
	}
}

func TestBytesFloat32IgnoresTrailing(t *testing.T) {
	if got := BytesFloat32([]byte{1, 2, 3}); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{gl.NO_ERROR, "NO_ERROR"},
		{gl.INVALID_ENUM, "INVALID_ENUM"},
		{gl.INVALID_VALUE, "INVALID_VALUE"},
		{gl.INVALID_OPERATION, "INVALID_OPERATION"},
		{gl.OUT_OF_MEMORY, "OUT_OF_MEMORY"},
		{0x1234, "UNKNOWN_ERROR"},
	}
	for _, tt := range tests {
		if got := ErrorName(tt.code); got != tt.want {
			t.Errorf("ErrorName(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestUniformLocationValid(t *testing.T) {
	if NoUniform.Valid() {
		t.Error("NoUniform.Valid() = true")
	}
	if !UniformLocation(0).Valid() {
		t.Error("location 0 should be valid")
	}
}
