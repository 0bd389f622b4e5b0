//go:build glfw

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
)

// keyCode maps the GLFW keys the scene reacts to.
func keyCode(k glfw.Key) (gpucontext.Key, bool) {
	switch k {
	case glfw.KeyLeft:
		return gpucontext.KeyLeft, true
	case glfw.KeyRight:
		return gpucontext.KeyRight, true
	case glfw.KeyUp:
		return gpucontext.KeyUp, true
	case glfw.KeyDown:
		return gpucontext.KeyDown, true
	case glfw.KeyR:
		return gpucontext.KeyR, true
	case glfw.KeyA:
		return gpucontext.KeyA, true
	case glfw.KeySpace:
		return gpucontext.KeySpace, true
	case glfw.KeyEscape:
		return gpucontext.KeyEscape, true
	}
	return gpucontext.KeyUnknown, false
}

// modifiers maps GLFW modifier bits.
func modifiers(m glfw.ModifierKey) gpucontext.Modifiers {
	var mods gpucontext.Modifiers
	if m&glfw.ModShift != 0 {
		mods |= gpucontext.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= gpucontext.ModControl
	}
	if m&glfw.ModAlt != 0 {
		mods |= gpucontext.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= gpucontext.ModSuper
	}
	return mods
}
