package teapot

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/glctx/gl"
	"github.com/gogpu/teapot/internal/buffer"
	"github.com/gogpu/teapot/internal/texture"
	"github.com/gogpu/teapot/mesh"
	"github.com/gogpu/teapot/transform"
)

// objectSpec describes a drawable object of a preset.
type objectSpec struct {
	name string
	mesh *mesh.Mesh
	// model composes the object's model matrix for the current frame.
	model func(*Scene) mgl32.Mat4
	// reflective objects sample the cube map by reflected eye direction.
	reflective bool
}

// object is an objectSpec with its GPU buffers.
type object struct {
	objectSpec
	position, normal, color, index glctx.Buffer
	count                          int32

	// warned records attributes already reported as degraded.
	warned map[string]bool
}

func (o *object) release(ctx glctx.Context) {
	for _, b := range []*glctx.Buffer{&o.position, &o.normal, &o.color, &o.index} {
		if *b != 0 {
			ctx.DeleteBuffer(*b)
			*b = 0
		}
	}
}

// Render draws one frame: cube first, then teapot. It applies queued input
// events, recomputes the projection after a viewport change, draws every
// object and leaves no vertex array, array buffer or cube map bound.
func (s *Scene) Render() error {
	if !s.mu.TryLock() {
		return ErrRenderBusy
	}
	defer s.mu.Unlock()

	switch st := s.State(); st {
	case StateReady:
	case StateDestroyed:
		return ErrDestroyed
	default:
		return ErrNotReady
	}
	s.state.Store(int32(StateRendering))
	defer s.state.Store(int32(StateReady))

	s.drainEvents()
	if s.projDirty {
		s.applyViewport()
	}

	ctx := s.ctx
	ctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	ctx.UseProgram(s.program.Handle)
	ctx.BindVertexArray(s.vao)

	view := s.camera.View()
	s.program.SetVec3(ctx, uniformEye, s.camera.Eye)
	if s.cube != nil && s.program.HasUniform(uniformCube) {
		s.cube.Bind(ctx, 0)
		s.program.SetInt(ctx, uniformCube, 0)
	}

	for _, o := range s.objects {
		s.draw(o, view)
	}

	ctx.Flush()
	if s.cube != nil {
		texture.Unbind(ctx, 0)
	}
	ctx.BindVertexArray(0)
	ctx.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := ctx.GetError(); code != gl.NO_ERROR {
		s.stats.glErrors.Add(1)
		Logger().Warn("teapot: GL error after frame",
			"error", glctx.ErrorName(code),
			"frame", s.stats.frames.Load())
	}
	if s.spinning {
		s.angle += s.opts.spin
	}
	s.stats.frames.Add(1)
	return nil
}

// draw binds one object's buffers, sets its per-object uniforms and issues
// its indexed draw.
func (s *Scene) draw(o *object, view mgl32.Mat4) {
	ctx, p := s.ctx, s.program

	s.bindAttribute(o, attribPosition, o.position, 3)
	s.bindAttribute(o, attribNormal, o.normal, 3)
	s.bindAttribute(o, attribColor, o.color, 4)
	if err := buffer.BindIndices(ctx, o.index); err != nil {
		s.degrade(o, "indices", err)
		return
	}

	model := o.model(s)
	p.SetMat4(ctx, uniformModel, model)
	p.SetMat4(ctx, uniformMVP, transform.MVP(s.projection, view, model))
	p.SetMat4(ctx, uniformProjection, s.projection)
	p.SetMat4(ctx, uniformModelView, transform.ModelView(view, model))
	p.SetBool(ctx, uniformReflection, o.reflective && s.reflection)

	ctx.DrawElements(gl.TRIANGLES, o.count, buffer.IndexType(), 0)
	s.stats.draws.Add(1)
}

// bindAttribute feeds buf to the named attribute if the program reads it.
// A missing buffer disables the slot and counts as a degraded bind.
func (s *Scene) bindAttribute(o *object, name string, buf glctx.Buffer, components int) {
	slot, ok := s.program.Attrib(name)
	if !ok {
		return
	}
	if err := buffer.BindAndDescribe(s.ctx, buf, slot, components); err != nil {
		s.degrade(o, name, err)
	}
}

func (s *Scene) degrade(o *object, what string, err error) {
	s.stats.degradedBinds.Add(1)
	if o.warned == nil {
		o.warned = make(map[string]bool)
	}
	if o.warned[what] {
		return
	}
	o.warned[what] = true
	msg := "teapot: degraded bind"
	if !errors.Is(err, buffer.ErrNullSource) {
		msg = "teapot: bind failed"
	}
	Logger().Warn(msg, "object", o.name, "input", what, "err", err)
}
