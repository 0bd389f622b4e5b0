package shader

import (
	"log/slog"

	"github.com/gogpu/teapot/glctx"
)

// Layout lists the names a caller wants resolved after linking.
type Layout struct {
	// Required attributes fail Build when the program does not expose them.
	Required []string
	// Optional attributes are resolved when present.
	Optional []string
	// Uniforms are resolved when present. Absent uniforms are skipped by
	// every setter on Program.
	Uniforms []string
}

// Program is a linked program with its resolved locations.
type Program struct {
	Handle   glctx.Program
	attribs  map[string]uint32
	uniforms map[string]glctx.UniformLocation
}

// Build compiles both stages with the given version header, links them and
// resolves layout. The stage objects are released once the program links.
func Build(ctx glctx.Context, src Sources, version string, layout Layout) (*Program, error) {
	vs, err := Compile(ctx, Vertex, WithVersion(version, src.Vertex))
	if err != nil {
		return nil, err
	}
	fs, err := Compile(ctx, Fragment, WithVersion(version, src.Fragment))
	if err != nil {
		ctx.DeleteShader(vs)
		return nil, err
	}
	handle, err := Link(ctx, vs, fs)
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)
	if err != nil {
		return nil, err
	}

	p := &Program{
		Handle:   handle,
		attribs:  make(map[string]uint32),
		uniforms: make(map[string]glctx.UniformLocation),
	}
	for _, name := range layout.Required {
		loc, ok := AttributeLocation(ctx, handle, name)
		if !ok {
			ctx.DeleteProgram(handle)
			return nil, &MissingAttributeError{Name: name}
		}
		p.attribs[name] = loc
	}
	for _, name := range layout.Optional {
		loc, ok := AttributeLocation(ctx, handle, name)
		if !ok {
			slogger().Debug("shader: optional attribute not active", "name", name)
			continue
		}
		p.attribs[name] = loc
	}
	for _, name := range layout.Uniforms {
		loc, ok := UniformLocation(ctx, handle, name)
		if !ok {
			slogger().Debug("shader: uniform not active", "name", name)
			continue
		}
		p.uniforms[name] = loc
	}
	slogger().Debug("shader: program linked",
		"program", uint32(handle),
		"attributes", len(p.attribs),
		"uniforms", len(p.uniforms),
		slog.String("version", version))
	return p, nil
}

// Attrib returns the slot of a resolved attribute.
func (p *Program) Attrib(name string) (uint32, bool) {
	loc, ok := p.attribs[name]
	return loc, ok
}

// Uniform returns the location of a resolved uniform, or glctx.NoUniform.
func (p *Program) Uniform(name string) glctx.UniformLocation {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return glctx.NoUniform
}

// HasUniform reports whether the program uses the named uniform.
func (p *Program) HasUniform(name string) bool {
	_, ok := p.uniforms[name]
	return ok
}

// SetMat4 sets a mat4 uniform if the program uses it.
func (p *Program) SetMat4(ctx glctx.Context, name string, m [16]float32) {
	if loc, ok := p.uniforms[name]; ok {
		ctx.UniformMatrix4fv(loc, false, m[:])
	}
}

// SetVec3 sets a vec3 uniform if the program uses it.
func (p *Program) SetVec3(ctx glctx.Context, name string, v [3]float32) {
	if loc, ok := p.uniforms[name]; ok {
		ctx.Uniform3fv(loc, v[:])
	}
}

// SetInt sets an int, bool or sampler uniform if the program uses it.
func (p *Program) SetInt(ctx glctx.Context, name string, v int32) {
	if loc, ok := p.uniforms[name]; ok {
		ctx.Uniform1i(loc, v)
	}
}

// SetBool sets a bool uniform if the program uses it.
func (p *Program) SetBool(ctx glctx.Context, name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(ctx, name, i)
}

// Delete releases the program object.
func (p *Program) Delete(ctx glctx.Context) {
	if p.Handle != 0 {
		ctx.DeleteProgram(p.Handle)
		p.Handle = 0
	}
}
