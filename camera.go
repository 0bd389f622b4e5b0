package teapot

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/teapot/transform"
)

// Eye distance limits for Dolly.
const (
	MinEyeDistance float32 = 4
	MaxEyeDistance float32 = 40
)

// Camera is a perspective camera looking at Center from Eye.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3

	// FovY is the vertical field of view in radians.
	FovY float32
	Near float32
	Far  float32
}

// DefaultCamera returns the camera at (0, 0, -10) looking at the origin
// with +Y up and a 60 degree field of view. The far plane is 200 for
// PresetReflection, whose sky box extends to 100 units, and 100 otherwise.
func DefaultCamera(p Preset) Camera {
	far := transform.DefaultFar
	if p == PresetReflection {
		far = 200
	}
	return Camera{
		Eye:  mgl32.Vec3{0, 0, -10},
		Up:   mgl32.Vec3{0, 1, 0},
		FovY: transform.DefaultFovY,
		Near: transform.DefaultNear,
		Far:  far,
	}
}

// Projection returns the projection matrix for a width×height viewport.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	return transform.Perspective(transform.Aspect(width, height), c.FovY, c.Near, c.Far)
}

// View returns the view matrix.
func (c Camera) View() mgl32.Mat4 {
	return transform.LookAt(c.Eye, c.Center, c.Up)
}

// Distance returns the distance from Eye to Center.
func (c Camera) Distance() float32 {
	return c.Eye.Sub(c.Center).Len()
}

// Dolly moves the eye delta units toward (negative) or away from
// (positive) the center, keeping the distance within
// [MinEyeDistance, MaxEyeDistance].
func (c *Camera) Dolly(delta float32) {
	offset := c.Eye.Sub(c.Center)
	d := offset.Len()
	if d == 0 {
		return
	}
	nd := mgl32.Clamp(d+delta, MinEyeDistance, MaxEyeDistance)
	c.Eye = c.Center.Add(offset.Mul(nd / d))
}
