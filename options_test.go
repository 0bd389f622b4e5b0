package teapot

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/teapot/internal/shader"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.Equal(t, PresetReflection, o.preset)
	assert.Equal(t, DefaultShaderVersion, o.version)
	assert.Equal(t, DefaultSpinRate, o.spin)
	assert.False(t, o.paused)
	assert.Equal(t, gputypes.Color{A: 1}, o.clearColor)
	assert.Equal(t, 256, o.faceSize)
	assert.Equal(t, gputypes.FilterModeLinear, o.sampler.MinFilter)
	assert.Equal(t, gputypes.MipmapFilterModeUndefined, o.sampler.MipmapFilter)
	assert.Nil(t, o.camera)
	assert.Nil(t, o.faces)
}

func TestSceneOptions(t *testing.T) {
	cam := DefaultCamera(PresetSingleMesh)
	cam.FovY = 1
	faces := [][]byte{{1}, {2}}
	sampler := gputypes.SamplerDescriptor{
		AddressModeU: gputypes.AddressModeRepeat,
		MagFilter:    gputypes.FilterModeNearest,
	}

	o := defaultOptions()
	for _, opt := range []SceneOption{
		WithPreset(PresetSingleMesh),
		WithCamera(cam),
		WithCubeMap(faces),
		WithShaderVersion("410 core"),
		WithSpin(0),
		WithClearColor(gputypes.Color{R: 1, A: 1}),
		WithFaceSize(64),
		WithSampler(sampler),
	} {
		opt(&o)
	}

	assert.Equal(t, PresetSingleMesh, o.preset)
	require.NotNil(t, o.camera)
	assert.Equal(t, float32(1), o.camera.FovY)
	assert.Equal(t, faces, o.faces)
	assert.Equal(t, "410 core", o.version)
	assert.Equal(t, DefaultSpinRate, o.spin, "zero keeps the rate")
	assert.True(t, o.paused)
	assert.Equal(t, gputypes.Color{R: 1, A: 1}, o.clearColor)
	assert.Equal(t, 64, o.faceSize)
	assert.Equal(t, sampler, o.sampler)
}

func TestSpinOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   []SceneOption
		spin   float32
		paused bool
	}{
		{"default", nil, DefaultSpinRate, false},
		{"rate", []SceneOption{WithSpin(0.2)}, 0.2, false},
		{"reverse", []SceneOption{WithSpin(-0.2)}, -0.2, false},
		{"zero", []SceneOption{WithSpin(0)}, DefaultSpinRate, true},
		{"rate then zero", []SceneOption{WithSpin(0.2), WithSpin(0)}, 0.2, true},
		{"paused", []SceneOption{WithPaused()}, DefaultSpinRate, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			assert.Equal(t, tt.spin, o.spin)
			assert.Equal(t, tt.paused, o.paused)
		})
	}
}

func TestWithCameraCopies(t *testing.T) {
	cam := DefaultCamera(PresetReflection)
	opt := WithCamera(cam)
	cam.FovY = 2

	o := defaultOptions()
	opt(&o)
	assert.NotEqual(t, float32(2), o.camera.FovY)
}

func TestPresetString(t *testing.T) {
	tests := []struct {
		p    Preset
		want string
	}{
		{PresetReflection, "reflection"},
		{PresetSingleMesh, "single"},
		{Preset(7), "Preset(7)"},
		{Preset(-1), "Preset(-1)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.String())
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"reflection", "Reflection", "REFLECTION"} {
		p, err := ParsePreset(name)
		require.NoError(t, err)
		assert.Equal(t, PresetReflection, p)
	}
	p, err := ParsePreset("single")
	require.NoError(t, err)
	assert.Equal(t, PresetSingleMesh, p)

	_, err = ParsePreset("skybox")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), `"skybox"`)
}

func TestPresetProgram(t *testing.T) {
	assert.Equal(t, "reflection", PresetReflection.programName())
	assert.Equal(t, "flat", PresetSingleMesh.programName())
	assert.True(t, PresetReflection.textured())
	assert.False(t, PresetSingleMesh.textured())
	assert.Len(t, presetObjects(PresetReflection), 2)
	assert.Len(t, presetObjects(PresetSingleMesh), 1)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateUninitialized, "Uninitialized"},
		{StateConstructing, "Constructing"},
		{StateReady, "Ready"},
		{StateRendering, "Rendering"},
		{StateDestroyed, "Destroyed"},
		{State(9), "State(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "key", EventKey.String())
	assert.Equal(t, "resize", EventResize.String())
	assert.Equal(t, "EventKind(5)", EventKind(5).String())
}

func TestResourceKindString(t *testing.T) {
	assert.Equal(t, "buffer", ResourceBuffer.String())
	assert.Equal(t, "shader", ResourceShader.String())
	assert.Equal(t, "program", ResourceProgram.String())
	assert.Equal(t, "texture", ResourceTexture.String())
	assert.Equal(t, "vertex array", ResourceVertexArray.String())
	assert.Equal(t, "ResourceKind(12)", ResourceKind(12).String())
}

func TestErrorTypes(t *testing.T) {
	inner := errors.New("out of names")
	rc := &ResourceCreationError{Kind: ResourceTexture, Err: inner}
	assert.Equal(t, "teapot: cannot create texture: out of names", rc.Error())
	assert.ErrorIs(t, rc, inner)
	assert.Equal(t, "teapot: cannot create buffer", (&ResourceCreationError{}).Error())

	ce := &ConstructionError{Step: "cube map", Err: rc}
	assert.Equal(t, "teapot: construct cube map: teapot: cannot create texture: out of names", ce.Error())
	assert.ErrorIs(t, ce, inner)

	var got *ResourceCreationError
	require.True(t, errors.As(ce, &got))
	assert.Equal(t, ResourceTexture, got.Kind)

	// Aliases name the builder types.
	var me *MissingAttributeError = &shader.MissingAttributeError{Name: attribPosition}
	assert.Contains(t, me.Error(), attribPosition)
}

func TestCameraDolly(t *testing.T) {
	c := DefaultCamera(PresetReflection)
	assert.InDelta(t, 10, c.Distance(), 1e-6)

	c.Dolly(-1)
	assert.InDelta(t, 9, c.Distance(), 1e-5)
	assert.InDelta(t, -9, c.Eye.Z(), 1e-5)

	c.Dolly(-100)
	assert.InDelta(t, MinEyeDistance, c.Distance(), 1e-5)

	c.Dolly(100)
	assert.InDelta(t, MaxEyeDistance, c.Distance(), 1e-4)
	assert.InDelta(t, 0, c.Eye.X(), 1e-6, "dolly stays on the view axis")

	degenerate := Camera{}
	degenerate.Dolly(5)
	assert.Zero(t, degenerate.Distance())
}

func TestDefaultCameraFar(t *testing.T) {
	assert.Equal(t, float32(200), DefaultCamera(PresetReflection).Far)
	assert.Equal(t, float32(100), DefaultCamera(PresetSingleMesh).Far)
}
