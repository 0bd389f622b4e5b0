// Package shader compiles and links GLSL programs and resolves their
// attribute and uniform locations.
//
// Sources are stored without a version directive; WithVersion prepends the
// header matching the host context ("300 es" for WebGL 2 and GLES 3,
// "410 core" for desktop GL).
package shader

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/glctx/gl"
)

//go:embed glsl/*.vert glsl/*.frag
var sources embed.FS

// Shader errors.
var (
	// ErrAllocation is returned when the context cannot create a shader or program.
	ErrAllocation = errors.New("shader: allocation failed")

	// ErrUnknownProgram is returned by Embedded for names with no sources.
	ErrUnknownProgram = errors.New("shader: unknown program")
)

// Stage identifies a programmable pipeline stage.
type Stage uint32

const (
	Vertex   Stage = gl.VERTEX_SHADER
	Fragment Stage = gl.FRAGMENT_SHADER
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%#x)", uint32(s))
	}
}

// CompileError reports a stage the driver refused to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s shader compile failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a program the driver refused to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader: program link failed: " + strings.TrimSpace(e.Log)
}

// MissingAttributeError reports a required attribute the linked program
// does not expose.
type MissingAttributeError struct {
	Name string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("shader: required attribute %q not found", e.Name)
}

// Sources holds the body of a vertex and a fragment shader.
type Sources struct {
	Vertex   string
	Fragment string
}

// Embedded returns the built-in sources named name ("reflection" or "flat").
func Embedded(name string) (Sources, error) {
	vs, err := sources.ReadFile("glsl/" + name + ".vert")
	if err != nil {
		return Sources{}, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	fs, err := sources.ReadFile("glsl/" + name + ".frag")
	if err != nil {
		return Sources{}, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	return Sources{Vertex: string(vs), Fragment: string(fs)}, nil
}

// WithVersion prepends the version directive, plus default precision for
// ES versions, to a shader body.
func WithVersion(version, body string) string {
	var b strings.Builder
	b.WriteString("#version ")
	b.WriteString(version)
	b.WriteByte('\n')
	if strings.HasSuffix(version, " es") {
		b.WriteString("precision highp float;\n")
	}
	b.WriteString(body)
	return b.String()
}

// failureLog returns log, or a generic message when the driver gave none.
func failureLog(log string) string {
	if strings.TrimSpace(log) == "" {
		return "no diagnostic available"
	}
	return log
}

// Compile creates and compiles one stage. On failure the shader object is
// deleted and a *CompileError carries the driver log.
func Compile(ctx glctx.Context, stage Stage, source string) (glctx.Shader, error) {
	s := ctx.CreateShader(uint32(stage))
	if s == 0 {
		return 0, fmt.Errorf("%w: %s shader", ErrAllocation, stage)
	}
	ctx.ShaderSource(s, source)
	ctx.CompileShader(s)
	if ctx.GetShaderParameter(s, gl.COMPILE_STATUS) != gl.TRUE {
		log := failureLog(ctx.GetShaderInfoLog(s))
		ctx.DeleteShader(s)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return s, nil
}

// Link attaches vs and fs to a new program and links it. On failure the
// program is deleted and a *LinkError carries the driver log.
func Link(ctx glctx.Context, vs, fs glctx.Shader) (glctx.Program, error) {
	p := ctx.CreateProgram()
	if p == 0 {
		return 0, fmt.Errorf("%w: program", ErrAllocation)
	}
	ctx.AttachShader(p, vs)
	ctx.AttachShader(p, fs)
	ctx.LinkProgram(p)
	if ctx.GetProgramParameter(p, gl.LINK_STATUS) != gl.TRUE {
		log := failureLog(ctx.GetProgramInfoLog(p))
		ctx.DeleteProgram(p)
		return 0, &LinkError{Log: log}
	}
	return p, nil
}

// AttributeLocation returns the slot of an active attribute.
func AttributeLocation(ctx glctx.Context, p glctx.Program, name string) (uint32, bool) {
	loc := ctx.GetAttribLocation(p, name)
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

// UniformLocation returns the location of an active uniform.
func UniformLocation(ctx glctx.Context, p glctx.Program, name string) (glctx.UniformLocation, bool) {
	loc := ctx.GetUniformLocation(p, name)
	return loc, loc.Valid()
}
