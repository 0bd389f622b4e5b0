// Package transform builds the projection, view and model matrices of the
// scene on top of mgl32.
//
// Matrices are column-major, as GL expects, so a slice of m[:] can be
// uploaded with UniformMatrix4fv without transposing. Every composition
// helper right-multiplies: Translate(base, v) returns base * T(v), which
// applies T(v) to a vertex before base does. No helper mutates its input.
package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defaults.
const (
	// DefaultFovY is a 60 degree vertical field of view in radians.
	DefaultFovY float32 = 1.0472
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 100
)

// Identity returns the 4x4 identity matrix.
func Identity() mgl32.Mat4 {
	return mgl32.Ident4()
}

// Aspect returns width / height as a float. A non-positive height yields 1
// so a minimized window never produces an infinite projection.
func Aspect(width, height int) float32 {
	if height <= 0 || width <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Perspective returns a right-handed perspective projection mapping the
// view frustum to GL clip space.
func Perspective(aspect, fovy, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovy, aspect, near, far)
}

// LookAt returns the view matrix of a camera at eye looking at center.
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// Translate returns base * T(v).
func Translate(base mgl32.Mat4, v mgl32.Vec3) mgl32.Mat4 {
	return base.Mul4(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Rotate returns base * R(angle, axis). The axis need not be unit length;
// a zero axis leaves base unchanged.
func Rotate(base mgl32.Mat4, angle float32, axis mgl32.Vec3) mgl32.Mat4 {
	l := axis.Len()
	if l == 0 {
		return base
	}
	return base.Mul4(mgl32.HomogRotate3D(angle, axis.Mul(1/l)))
}

// Scale returns base * S(v).
func Scale(base mgl32.Mat4, v mgl32.Vec3) mgl32.Mat4 {
	return base.Mul4(mgl32.Scale3D(v[0], v[1], v[2]))
}

// TranslateRotate returns T(t) * R(angle, axis): the object spins about its
// own origin, then moves to t.
func TranslateRotate(t mgl32.Vec3, angle float32, axis mgl32.Vec3) mgl32.Mat4 {
	return Rotate(Translate(Identity(), t), angle, axis)
}

// MVP returns projection * view * model.
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}

// ModelView returns view * model.
func ModelView(view, model mgl32.Mat4) mgl32.Mat4 {
	return view.Mul4(model)
}

// Project maps p through m and performs the perspective divide, returning
// normalized device coordinates. ok is false when p lies on the camera plane.
func Project(m mgl32.Mat4, p mgl32.Vec3) (ndc mgl32.Vec3, ok bool) {
	clip := m.Mul4x1(p.Vec4(1))
	if math32.Abs(clip.W()) < 1e-7 {
		return mgl32.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip.W()), true
}

// InClipVolume reports whether p lands inside the canonical view volume
// after projection by m.
func InClipVolume(m mgl32.Mat4, p mgl32.Vec3) bool {
	clip := m.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return false
	}
	for k := range 3 {
		if clip[k] < -w || clip[k] > w {
			return false
		}
	}
	return true
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
