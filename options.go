package teapot

import (
	"github.com/gogpu/gputypes"

	teximage "github.com/gogpu/teapot/internal/image"
	"github.com/gogpu/teapot/internal/texture"
)

// Scene defaults.
const (
	// DefaultShaderVersion is the GLSL version of WebGL 2 and OpenGL ES 3.
	DefaultShaderVersion = "300 es"

	// DefaultSpinRate is the teapot rotation per frame in radians.
	DefaultSpinRate float32 = 0.01
)

// SceneOption configures a Scene during creation.
// Use functional options to customize Scene behavior.
//
// Example:
//
//	// Default reflection scene
//	s, err := teapot.NewScene(ctx, 800, 600)
//
//	// Flat teapot on a desktop GL 4.1 core context
//	s, err := teapot.NewScene(ctx, 800, 600,
//	    teapot.WithPreset(teapot.PresetSingleMesh),
//	    teapot.WithShaderVersion("410 core"),
//	)
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	preset     Preset
	camera     *Camera
	faces      [][]byte
	version    string
	spin       float32
	paused     bool
	clearColor gputypes.Color
	faceSize   int
	sampler    gputypes.SamplerDescriptor
}

// defaultOptions returns the default scene options.
func defaultOptions() sceneOptions {
	return sceneOptions{
		preset:     PresetReflection,
		version:    DefaultShaderVersion,
		spin:       DefaultSpinRate,
		clearColor: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		faceSize:   teximage.DefaultFaceSize,
		sampler:    texture.DefaultSampler(),
	}
}

// WithPreset selects the drawable objects and shader program.
func WithPreset(p Preset) SceneOption {
	return func(o *sceneOptions) {
		o.preset = p
	}
}

// WithCamera replaces the preset's default camera.
func WithCamera(c Camera) SceneOption {
	return func(o *sceneOptions) {
		o.camera = &c
	}
}

// WithCubeMap sets the encoded environment images: six faces in
// +X, +Y, +Z, -X, -Y, -Z order, or one image shared by every face.
// Without it the built-in labelled gradient faces are used.
// Ignored by presets that draw no texture.
func WithCubeMap(faces [][]byte) SceneOption {
	return func(o *sceneOptions) {
		o.faces = faces
	}
}

// WithShaderVersion sets the GLSL version directive prepended to the
// built-in shaders, such as "300 es" or "410 core".
func WithShaderVersion(version string) SceneOption {
	return func(o *sceneOptions) {
		o.version = version
	}
}

// WithSpin sets the teapot rotation per frame in radians. Zero starts the
// scene paused and keeps the current rate, so Space resumes spinning at
// DefaultSpinRate unless another WithSpin set a rate.
func WithSpin(rate float32) SceneOption {
	return func(o *sceneOptions) {
		if rate == 0 {
			o.paused = true
			return
		}
		o.spin = rate
	}
}

// WithPaused starts the scene with spinning paused. Space resumes it.
func WithPaused() SceneOption {
	return func(o *sceneOptions) {
		o.paused = true
	}
}

// WithClearColor sets the background color.
func WithClearColor(c gputypes.Color) SceneOption {
	return func(o *sceneOptions) {
		o.clearColor = c
	}
}

// WithFaceSize sets the cube-map face edge length. Faces of another size
// are resampled.
func WithFaceSize(size int) SceneOption {
	return func(o *sceneOptions) {
		o.faceSize = size
	}
}

// WithSampler sets the cube-map filtering and wrapping. Mipmaps are
// generated either way. The default minifies with LINEAR.
func WithSampler(s gputypes.SamplerDescriptor) SceneOption {
	return func(o *sceneOptions) {
		o.sampler = s
	}
}
