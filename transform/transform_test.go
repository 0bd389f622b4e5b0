package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestAspect(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{800, 600, 800.0 / 600.0},
		{600, 800, 0.75},
		{100, 0, 1},
		{0, 100, 1},
	}
	for _, tt := range tests {
		if got := Aspect(tt.w, tt.h); !mgl32.FloatEqualThreshold(got, tt.want, eps) {
			t.Errorf("Aspect(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestTranslateIdentity(t *testing.T) {
	m := Translate(Identity(), mgl32.Vec3{0, 0, -10})

	want := mgl32.Ident4()
	want[12], want[13], want[14] = 0, 0, -10
	if !m.ApproxEqualThreshold(want, eps) {
		t.Errorf("Translate(I, (0,0,-10)) = %v, want %v", m, want)
	}
	assert.Equal(t, mgl32.Vec4{0, 0, -10, 1}, m.Col(3))
	for c := range 3 {
		assert.Equal(t, mgl32.Ident4().Col(c), m.Col(c), "column %d", c)
	}
}

func TestTranslateDoesNotMutate(t *testing.T) {
	base := Identity()
	_ = Translate(base, mgl32.Vec3{1, 2, 3})
	_ = Rotate(base, 1, mgl32.Vec3{0, 1, 0})
	_ = Scale(base, mgl32.Vec3{2, 2, 2})
	if base != mgl32.Ident4() {
		t.Errorf("base modified: %v", base)
	}
}

func TestCompositionOrderMatters(t *testing.T) {
	tr := mgl32.Vec3{0, -1.5, 0}
	axis := mgl32.Vec3{0, 0, 1}
	const angle = 0.7

	a := Rotate(Translate(Identity(), tr), angle, axis)
	b := Translate(Rotate(Identity(), angle, axis), tr)
	if a.ApproxEqualThreshold(b, eps) {
		t.Error("rotate-after-translate should differ from translate-after-rotate")
	}
	if !a.ApproxEqualThreshold(TranslateRotate(tr, angle, axis), eps) {
		t.Error("TranslateRotate must match Rotate(Translate(I, t))")
	}
	// The object origin lands at t regardless of the spin.
	origin := a.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, origin.ApproxEqualThreshold(tr, eps), "origin = %v", origin)
}

func TestRotateAxisNormalized(t *testing.T) {
	a := Rotate(Identity(), 0.5, mgl32.Vec3{0, 5, 0})
	b := mgl32.HomogRotate3DY(0.5)
	if !a.ApproxEqualThreshold(b, eps) {
		t.Errorf("Rotate with scaled axis = %v, want %v", a, b)
	}
	if Rotate(Identity(), 1, mgl32.Vec3{}) != Identity() {
		t.Error("zero axis should leave base unchanged")
	}
}

func TestScale(t *testing.T) {
	m := Scale(Identity(), mgl32.Vec3{100, 100, 100})
	p := m.Mul4x1(mgl32.Vec4{1, -1, 1, 1})
	assert.Equal(t, mgl32.Vec4{100, -100, 100, 1}, p)
}

func TestOriginInsideClipVolume(t *testing.T) {
	proj := Perspective(Aspect(800, 600), DefaultFovY, DefaultNear, DefaultFar)
	view := LookAt(mgl32.Vec3{0, 0, -10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	vp := proj.Mul4(view)

	if !InClipVolume(vp, mgl32.Vec3{}) {
		t.Fatal("origin is outside the clip volume")
	}
	ndc, ok := Project(vp, mgl32.Vec3{})
	if !ok {
		t.Fatal("Project failed")
	}
	assert.InDelta(t, 0, ndc.X(), eps)
	assert.InDelta(t, 0, ndc.Y(), eps)

	// Behind the camera and past the far plane are both clipped.
	assert.False(t, InClipVolume(vp, mgl32.Vec3{0, 0, -20}))
	assert.False(t, InClipVolume(vp, mgl32.Vec3{0, 0, 200}))
}

func TestMVP(t *testing.T) {
	p := Perspective(1, DefaultFovY, 1, 10)
	v := Translate(Identity(), mgl32.Vec3{0, 0, -5})
	m := Scale(Identity(), mgl32.Vec3{2, 2, 2})
	if !MVP(p, v, m).ApproxEqualThreshold(p.Mul4(v.Mul4(m)), eps) {
		t.Error("MVP must equal p * (v * m)")
	}
	if !ModelView(v, m).ApproxEqualThreshold(v.Mul4(m), eps) {
		t.Error("ModelView must equal v * m")
	}
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, DefaultFovY, Radians(60), 1e-4)
}
