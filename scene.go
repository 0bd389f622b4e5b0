package teapot

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/glctx/gl"
	"github.com/gogpu/teapot/internal/buffer"
	teximage "github.com/gogpu/teapot/internal/image"
	"github.com/gogpu/teapot/internal/shader"
	"github.com/gogpu/teapot/internal/texture"
	"github.com/gogpu/teapot/mesh"
	"github.com/gogpu/teapot/transform"
)

// ErrGL is wrapped by construction errors raised by the context itself.
var ErrGL = errors.New("teapot: GL error")

// Attribute and uniform names shared by the built-in programs.
const (
	attribPosition = "aVertexPosition"
	attribNormal   = "aVertexNormal"
	attribColor    = "aColor"

	uniformModel      = "mMatrix"
	uniformMVP        = "mvpMatrix"
	uniformProjection = "uPMatrix"
	uniformModelView  = "uMVMatrix"
	uniformEye        = "eyePosition"
	uniformCube       = "cubeTexture"
	uniformReflection = "reflection"
)

var programLayout = shader.Layout{
	Required: []string{attribPosition},
	Optional: []string{attribNormal, attribColor},
	Uniforms: []string{
		uniformModel, uniformMVP, uniformProjection, uniformModelView,
		uniformEye, uniformCube, uniformReflection,
	},
}

// SkyBoxScale is the cube's scale in PresetReflection.
const SkyBoxScale float32 = 100

// teapotOffset centers the teapot, whose base rests on y = 0, on the origin.
var teapotOffset = mgl32.Vec3{0, -1.5, 0}

// Scene owns the program, geometry buffers and cube map of one fixed scene
// and draws it once per Render call.
type Scene struct {
	ctx   glctx.Context
	opts  sceneOptions
	state atomic.Int32

	// mu is held for the duration of Render, Resize and Destroy.
	mu sync.Mutex

	program *shader.Program
	vao     glctx.VertexArray
	objects []*object
	cube    *texture.Cube

	camera        Camera
	width, height int
	projection    mgl32.Mat4
	projDirty     bool

	angle      float32
	yaw        float32
	spinning   bool
	reflection bool

	events chan Event
	stats  statsCounters
}

// NewScene builds the program, uploads all static geometry, builds the
// cube map when the preset samples one and applies the fixed GL state.
// Any failure releases everything created so far and is returned as a
// *ConstructionError.
func NewScene(ctx glctx.Context, width, height int, opts ...SceneOption) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		ctx:        ctx,
		opts:       o,
		width:      width,
		height:     height,
		spinning:   !o.paused,
		reflection: true,
		events:     make(chan Event, eventQueueSize),
	}
	if o.camera != nil {
		s.camera = *o.camera
	} else {
		s.camera = DefaultCamera(o.preset)
	}

	s.state.Store(int32(StateConstructing))
	if err := s.construct(); err != nil {
		s.release()
		s.state.Store(int32(StateDestroyed))
		Logger().Warn("teapot: scene construction failed", "err", err)
		return nil, err
	}
	s.state.Store(int32(StateReady))
	Logger().Info("teapot: scene ready",
		"preset", o.preset.String(),
		"objects", len(s.objects),
		"width", width,
		"height", height)
	return s, nil
}

func (s *Scene) construct() error {
	if err := s.buildProgram(); err != nil {
		return &ConstructionError{Step: "program", Err: err}
	}

	s.vao = s.ctx.CreateVertexArray()
	if s.vao == 0 {
		return &ConstructionError{Step: "vertex array", Err: &ResourceCreationError{Kind: ResourceVertexArray}}
	}

	for _, spec := range presetObjects(s.opts.preset) {
		obj, err := s.uploadObject(spec)
		if obj != nil {
			s.objects = append(s.objects, obj)
		}
		if err != nil {
			return &ConstructionError{Step: "geometry " + spec.name, Err: err}
		}
	}

	if s.opts.preset.textured() {
		if err := s.buildCubeMap(); err != nil {
			return &ConstructionError{Step: "cube map", Err: err}
		}
	}

	c := s.opts.clearColor
	s.ctx.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	s.ctx.Enable(gl.DEPTH_TEST)
	s.ctx.DepthFunc(gl.LEQUAL)
	s.applyViewport()

	if code := s.ctx.GetError(); code != gl.NO_ERROR {
		return &ConstructionError{Step: "state", Err: fmt.Errorf("%w: %s", ErrGL, glctx.ErrorName(code))}
	}
	return nil
}

func (s *Scene) buildProgram() error {
	src, err := shader.Embedded(s.opts.preset.programName())
	if err != nil {
		return err
	}
	p, err := shader.Build(s.ctx, src, s.opts.version, programLayout)
	if err != nil {
		if errors.Is(err, shader.ErrAllocation) {
			return &ResourceCreationError{Kind: ResourceProgram, Err: err}
		}
		return err
	}
	s.program = p
	return nil
}

// uploadObject uploads the buffers of one object. Position and index
// buffers are required. Normal and color buffers degrade: on failure the
// handle stays zero and the attribute is disabled at draw time.
// A partially built object is returned with the error so it can be released.
func (s *Scene) uploadObject(spec objectSpec) (*object, error) {
	m := spec.mesh
	if err := m.Validate(); err != nil {
		return nil, err
	}
	obj := &object{objectSpec: spec, count: int32(len(m.Indices))}

	var err error
	if obj.position, err = buffer.UploadVertices(s.ctx, m.Vertices); err != nil {
		return obj, &ResourceCreationError{Kind: ResourceBuffer, Err: err}
	}
	if obj.index, err = buffer.UploadIndices(s.ctx, m.Indices); err != nil {
		return obj, &ResourceCreationError{Kind: ResourceBuffer, Err: err}
	}

	if _, ok := s.program.Attrib(attribNormal); ok && len(m.Normals) > 0 {
		if obj.normal, err = buffer.UploadVertices(s.ctx, m.Normals); err != nil {
			Logger().Warn("teapot: normal buffer unavailable", "object", spec.name, "err", err)
		}
	}
	if _, ok := s.program.Attrib(attribColor); ok {
		colors := m.Colors
		if len(colors) == 0 {
			colors = white(m.VertexCount())
		}
		if obj.color, err = buffer.UploadVertices(s.ctx, colors); err != nil {
			Logger().Warn("teapot: color buffer unavailable", "object", spec.name, "err", err)
		}
	}

	Logger().Debug("teapot: object uploaded",
		"object", spec.name,
		"vertices", m.VertexCount(),
		"triangles", m.TriangleCount())
	return obj, nil
}

func (s *Scene) buildCubeMap() error {
	faces := s.opts.faces
	if len(faces) == 0 {
		defaults, err := teximage.DefaultFaces()
		if err != nil {
			return err
		}
		faces = defaults[:]
	}
	cube, err := texture.BuildCubeMap(s.ctx, faces, texture.Options{
		Size:    s.opts.faceSize,
		Mipmaps: true,
		Sampler: s.opts.sampler,
	})
	if err != nil {
		if errors.Is(err, texture.ErrTextureAlloc) {
			return &ResourceCreationError{Kind: ResourceTexture, Err: err}
		}
		return err
	}
	s.cube = cube
	Logger().Debug("teapot: cube map built", "size", cube.Size, "levels", cube.Levels)
	return nil
}

// white returns an opaque white RGBA color per vertex.
func white(vertices int) []float32 {
	c := make([]float32, vertices*4)
	for i := range c {
		c[i] = 1
	}
	return c
}

// State returns the current lifecycle state.
func (s *Scene) State() State {
	return State(s.state.Load())
}

// Stats returns a snapshot of the render counters.
func (s *Scene) Stats() Stats {
	return s.stats.snapshot()
}

// Camera returns the current camera.
func (s *Scene) Camera() Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

// Size returns the viewport size.
func (s *Scene) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Resize changes the viewport. The projection is recomputed at the start
// of the next frame.
func (s *Scene) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State() == StateDestroyed {
		return ErrDestroyed
	}
	return s.setViewport(width, height)
}

// setViewport validates and stores a new viewport size. Called with s.mu held.
func (s *Scene) setViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.projDirty = true
	}
	return nil
}

// applyViewport sets the GL viewport and recomputes the projection.
func (s *Scene) applyViewport() {
	s.ctx.Viewport(0, 0, int32(s.width), int32(s.height))
	s.projection = s.camera.Projection(s.width, s.height)
	s.projDirty = false
}

// Destroy deletes every GL object the scene owns. It is idempotent and
// waits for a Render in progress to finish.
func (s *Scene) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State() == StateDestroyed {
		return
	}
	s.release()
	s.state.Store(int32(StateDestroyed))
	Logger().Info("teapot: scene destroyed", "frames", s.stats.frames.Load())
}

// release deletes whatever has been created so far.
func (s *Scene) release() {
	for _, o := range s.objects {
		o.release(s.ctx)
	}
	s.objects = nil
	if s.cube != nil {
		s.cube.Delete(s.ctx)
		s.cube = nil
	}
	if s.vao != 0 {
		s.ctx.DeleteVertexArray(s.vao)
		s.vao = 0
	}
	if s.program != nil {
		s.program.Delete(s.ctx)
		s.program = nil
	}
}

// modelTeapot and modelSkyBox compose the model matrices of the scene
// objects from identity each frame.
func modelTeapot(s *Scene) mgl32.Mat4 {
	return transform.TranslateRotate(teapotOffset, s.angle+s.yaw, mgl32.Vec3{0, 1, 0})
}

func modelSkyBox(*Scene) mgl32.Mat4 {
	return transform.Scale(transform.Identity(), mgl32.Vec3{SkyBoxScale, SkyBoxScale, SkyBoxScale})
}

// presetObjects returns the objects of a preset in draw order.
func presetObjects(p Preset) []objectSpec {
	pot := objectSpec{name: "teapot", mesh: mesh.Teapot(), model: modelTeapot, reflective: true}
	if p == PresetSingleMesh {
		return []objectSpec{pot}
	}
	return []objectSpec{
		{name: "cube", mesh: mesh.Cube(), model: modelSkyBox},
		pot,
	}
}
