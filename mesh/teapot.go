package mesh

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Tessellation density of the teapot.
const (
	teapotSlices = 32 // segments around the Y axis
	teapotSteps  = 8  // samples per profile curve
	tubeSides    = 16 // segments around the spout and handle
	tubeSteps    = 16 // samples along the spout and handle
)

// profile is a cubic Bezier in the (radius, height) half plane. Revolving it
// around the Y axis yields one band of the teapot. Curves are ordered so that
// turning the tangent a quarter turn counter-clockwise points outside.
type profile [4]mgl32.Vec2

// The rotational parts of the classic Utah teapot, in its original units.
var teapotProfiles = []profile{
	// lid knob and lid
	{{0, 3.15}, {0.8, 3.15}, {0, 2.7}, {0.2, 2.55}},
	{{0.2, 2.55}, {0.4, 2.4}, {1.3, 2.4}, {1.3, 2.25}},
	// rim
	{{1.4, 2.25}, {1.3375, 2.38125}, {1.4375, 2.38125}, {1.5, 2.25}},
	// body
	{{1.5, 2.25}, {1.75, 1.725}, {2, 1.2}, {2, 0.75}},
	{{2, 0.75}, {2, 0.3}, {1.5, 0.075}, {1.5, 0}},
	// bottom
	{{1.5, 0}, {1, 0}, {0.5, 0}, {0, 0}},
}

// tube is a swept circle of varying radius along a cubic Bezier spine lying
// in the z = 0 plane.
type tube struct {
	spine          [4]mgl32.Vec3
	startR, startH float32 // horizontal and vertical radius at t = 0
	endR, endH     float32
}

var (
	teapotSpout = tube{
		spine:  [4]mgl32.Vec3{{1.7, 1.1, 0}, {2.6, 1.1, 0}, {2.3, 2.2, 0}, {3.05, 2.4, 0}},
		startR: 0.45, startH: 0.6,
		endR: 0.2, endH: 0.12,
	}
	teapotHandle = tube{
		spine:  [4]mgl32.Vec3{{-1.55, 2.05, 0}, {-2.95, 2.2, 0}, {-3.05, 0.55, 0}, {-1.75, 0.8, 0}},
		startR: 0.1, startH: 0.18,
		endR: 0.1, endH: 0.18,
	}
)

// bernstein returns the cubic Bernstein weights and derivative weights at t.
func bernstein(t float32) (w [4]float32, dw [3]float32) {
	s := 1 - t
	return [4]float32{s * s * s, 3 * s * s * t, 3 * s * t * t, t * t * t},
		[3]float32{3 * s * s, 6 * s * t, 3 * t * t}
}

// bezier2 evaluates a planar cubic Bezier and its derivative at t.
func bezier2(p [4]mgl32.Vec2, t float32) (pos, tangent mgl32.Vec2) {
	w, dw := bernstein(t)
	for k := range 2 {
		pos[k] = w[0]*p[0][k] + w[1]*p[1][k] + w[2]*p[2][k] + w[3]*p[3][k]
		tangent[k] = dw[0]*(p[1][k]-p[0][k]) + dw[1]*(p[2][k]-p[1][k]) + dw[2]*(p[3][k]-p[2][k])
	}
	return pos, tangent
}

// bezier3 evaluates a spatial cubic Bezier and its derivative at t.
func bezier3(p [4]mgl32.Vec3, t float32) (pos, tangent mgl32.Vec3) {
	w, dw := bernstein(t)
	for k := range 3 {
		pos[k] = w[0]*p[0][k] + w[1]*p[1][k] + w[2]*p[2][k] + w[3]*p[3][k]
		tangent[k] = dw[0]*(p[1][k]-p[0][k]) + dw[1]*(p[2][k]-p[1][k]) + dw[2]*(p[3][k]-p[2][k])
	}
	return pos, tangent
}

// lathe revolves c around the Y axis.
func (b *builder) lathe(c profile) {
	base := uint16(b.m.VertexCount())
	for i := range teapotSteps + 1 {
		t := float32(i) / teapotSteps
		p, d := bezier2(c, t)
		if d.Len() < 1e-6 {
			// Degenerate end tangent: step inward along the curve.
			_, d = bezier2(c, math32.Abs(t-1e-3))
		}
		n2 := mgl32.Vec2{-d[1], d[0]}.Normalize()
		for j := range teapotSlices + 1 {
			theta := 2 * math32.Pi * float32(j) / teapotSlices
			sin, cos := math32.Sincos(theta)
			pos := mgl32.Vec3{p[0] * cos, p[1], p[0] * sin}
			nrm := mgl32.Vec3{n2[0] * cos, n2[1], n2[0] * sin}
			b.vertex(pos, nrm)
		}
	}
	b.grid(base, teapotSteps+1, teapotSlices+1)
}

// sweep builds the surface of a tube.
func (b *builder) sweep(tb tube) {
	base := uint16(b.m.VertexCount())
	binormal := mgl32.Vec3{0, 0, 1}
	for i := range tubeSteps + 1 {
		t := float32(i) / tubeSteps
		c, d := bezier3(tb.spine, t)
		tangent := d.Normalize()
		normal := binormal.Cross(tangent)
		rh := tb.startR + (tb.endR-tb.startR)*t
		rv := tb.startH + (tb.endH-tb.startH)*t
		for j := range tubeSides + 1 {
			phi := 2 * math32.Pi * float32(j) / tubeSides
			sin, cos := math32.Sincos(phi)
			pos := c.Add(normal.Mul(rv * cos)).Add(binormal.Mul(rh * sin))
			// Gradient of the elliptical cross-section.
			nrm := normal.Mul(cos / rv).Add(binormal.Mul(sin / rh)).Normalize()
			b.vertex(pos, nrm)
		}
	}
	b.grid(base, tubeSteps+1, tubeSides+1)
}

var teapot = sync.OnceValue(func() *Mesh {
	var b builder
	for _, c := range teapotProfiles {
		b.lathe(c)
	}
	b.sweep(teapotSpout)
	b.sweep(teapotHandle)
	return &b.m
})

// Teapot returns a tessellated Utah-style teapot with smooth normals.
// The base rests on y = 0, the lid knob reaches y = 3.15, the spout points
// toward +X and the handle toward -X.
func Teapot() *Mesh {
	return teapot()
}
