// Package mesh provides the triangle meshes the scene draws.
//
// A Mesh is a flat, GL-ready triangle list: positions and normals with a
// stride of 3 floats, optional colors with a stride of 4, and 16-bit indices
// with a stride of 3. The built-in meshes are generated once and shared;
// callers must treat them as read-only.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Validation errors.
var (
	// ErrVertexStride is returned when the position array is not a multiple of 3.
	ErrVertexStride = errors.New("mesh: vertex array length is not a multiple of 3")

	// ErrNormalCount is returned when normals do not match positions one to one.
	ErrNormalCount = errors.New("mesh: normal array does not match vertex array")

	// ErrColorCount is returned when colors do not cover every vertex.
	ErrColorCount = errors.New("mesh: color array does not match vertex count")

	// ErrIndexStride is returned when the index array is not a multiple of 3.
	ErrIndexStride = errors.New("mesh: index array length is not a multiple of 3")

	// ErrIndexRange is returned when an index refers past the last vertex.
	ErrIndexRange = errors.New("mesh: index out of range")

	// ErrTooManyVertices is returned when a mesh cannot be addressed by 16-bit indices.
	ErrTooManyVertices = errors.New("mesh: too many vertices for 16-bit indices")
)

// Mesh is an indexed triangle list.
type Mesh struct {
	// Vertices holds x, y, z positions.
	Vertices []float32
	// Normals holds one unit normal per vertex, or nothing.
	Normals []float32
	// Colors holds one RGBA color per vertex, or nothing.
	Colors []float32
	// Indices holds three vertex indices per triangle.
	Indices []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the structural invariants of the mesh.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return ErrVertexStride
	}
	n := m.VertexCount()
	if n > math.MaxUint16+1 {
		return fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("%w: %d normals for %d positions", ErrNormalCount, len(m.Normals), len(m.Vertices))
	}
	if len(m.Colors) != 0 && len(m.Colors) != n*4 {
		return fmt.Errorf("%w: %d color components for %d vertices", ErrColorCount, len(m.Colors), n)
	}
	if len(m.Indices)%3 != 0 {
		return ErrIndexStride
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d is %d, mesh has %d vertices", ErrIndexRange, i, idx, n)
		}
	}
	return nil
}

// Position returns vertex i.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return lo, hi
	}
	lo, hi = m.Position(0), m.Position(0)
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Position(i)
		for k := range 3 {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

// builder accumulates vertices and triangles.
type builder struct {
	m Mesh
}

func (b *builder) vertex(p, n mgl32.Vec3) uint16 {
	i := uint16(b.m.VertexCount())
	b.m.Vertices = append(b.m.Vertices, p[0], p[1], p[2])
	b.m.Normals = append(b.m.Normals, n[0], n[1], n[2])
	return i
}

func (b *builder) triangle(a, c, d uint16) {
	b.m.Indices = append(b.m.Indices, a, c, d)
}

// grid emits two triangles per cell of a rows x cols vertex grid whose
// first vertex is base and whose rows are stored contiguously.
func (b *builder) grid(base uint16, rows, cols int) {
	for r := range rows - 1 {
		for c := range cols - 1 {
			i0 := base + uint16(r*cols+c)
			i1 := i0 + uint16(cols)
			b.triangle(i0, i1, i1+1)
			b.triangle(i0, i1+1, i0+1)
		}
	}
}
