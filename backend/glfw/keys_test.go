//go:build glfw

package glfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want gpucontext.Key
		ok   bool
	}{
		{glfw.KeyLeft, gpucontext.KeyLeft, true},
		{glfw.KeyRight, gpucontext.KeyRight, true},
		{glfw.KeyUp, gpucontext.KeyUp, true},
		{glfw.KeyDown, gpucontext.KeyDown, true},
		{glfw.KeyR, gpucontext.KeyR, true},
		{glfw.KeySpace, gpucontext.KeySpace, true},
		{glfw.KeyEscape, gpucontext.KeyEscape, true},
		{glfw.KeyF1, gpucontext.KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := keyCode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyCode(%d) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModifiers(t *testing.T) {
	got := modifiers(glfw.ModShift | glfw.ModAlt)
	if !got.HasShift() || !got.HasAlt() || got.HasControl() {
		t.Errorf("modifiers(shift|alt) = %08b", got)
	}
	if modifiers(0) != 0 {
		t.Error("modifiers(0) != 0")
	}
}
