package mesh

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// cubeFaces lists each face as its outward normal and two in-plane axes
// ordered so that u x v equals the normal.
var cubeFaces = [6]struct{ n, u, v mgl32.Vec3 }{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
}

var cube = sync.OnceValue(func() *Mesh {
	var b builder
	for _, f := range cubeFaces {
		corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		var idx [4]uint16
		for i, c := range corners {
			p := f.n.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			idx[i] = b.vertex(p, f.n)
		}
		b.triangle(idx[0], idx[1], idx[2])
		b.triangle(idx[0], idx[2], idx[3])
	}
	return &b.m
})

// Cube returns the unit cube spanning [-1, 1] on every axis: 24 vertices
// with per-face normals and 36 indices, wound counter-clockwise when seen
// from outside.
func Cube() *Mesh {
	return cube()
}
