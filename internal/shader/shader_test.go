package shader

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/glctx/gl"
	"github.com/gogpu/teapot/recording"
)

var reflectionLayout = Layout{
	Required: []string{"aVertexPosition"},
	Optional: []string{"aVertexNormal", "aColor"},
	Uniforms: []string{"mMatrix", "mvpMatrix", "eyePosition", "cubeTexture", "reflection"},
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{Vertex, "vertex"},
		{Fragment, "fragment"},
		{Stage(7), "Stage(0x7)"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", uint32(tt.stage), got, tt.want)
		}
	}
}

func TestEmbedded(t *testing.T) {
	for _, name := range []string{"reflection", "flat"} {
		src, err := Embedded(name)
		if err != nil {
			t.Fatalf("Embedded(%q): %v", name, err)
		}
		if !strings.Contains(src.Vertex, "void main") || !strings.Contains(src.Fragment, "void main") {
			t.Errorf("Embedded(%q) returned incomplete sources", name)
		}
		if strings.Contains(src.Vertex, "#version") {
			t.Errorf("Embedded(%q) vertex source carries a version directive", name)
		}
	}
	if _, err := Embedded("phong"); !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("Embedded(phong) error = %v, want ErrUnknownProgram", err)
	}
}

func TestWithVersion(t *testing.T) {
	es := WithVersion("300 es", "void main() {}\n")
	if !strings.HasPrefix(es, "#version 300 es\nprecision highp float;\n") {
		t.Errorf("ES header missing: %q", es)
	}
	core := WithVersion("410 core", "void main() {}\n")
	if !strings.HasPrefix(core, "#version 410 core\n") || strings.Contains(core, "precision") {
		t.Errorf("core header wrong: %q", core)
	}
}

func TestBuildReflection(t *testing.T) {
	ctx := recording.NewContext()
	src, err := Embedded("reflection")
	if err != nil {
		t.Fatal(err)
	}
	p, err := Build(ctx, src, "300 es", reflectionLayout)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Handle == 0 {
		t.Fatal("Build returned a zero program")
	}
	for _, name := range []string{"aVertexPosition", "aVertexNormal", "aColor"} {
		if _, ok := p.Attrib(name); !ok {
			t.Errorf("attribute %q not resolved", name)
		}
	}
	for _, name := range reflectionLayout.Uniforms {
		if !p.HasUniform(name) {
			t.Errorf("uniform %q not resolved", name)
		}
	}
	if got := ctx.Live(recording.KindShader); got != 0 {
		t.Errorf("stage shaders left alive: %d", got)
	}
	p.Delete(ctx)
	if got := ctx.Live(recording.KindProgram); got != 0 {
		t.Errorf("program left alive after Delete: %d", got)
	}
	if ctx.GetError() != gl.NO_ERROR {
		t.Error("Build raised a GL error")
	}
}

func TestBuildFlatSkipsAbsentNames(t *testing.T) {
	ctx := recording.NewContext()
	src, _ := Embedded("flat")
	p, err := Build(ctx, src, "410 core", Layout{
		Required: []string{"aVertexPosition"},
		Optional: []string{"aVertexNormal"},
		Uniforms: []string{"uPMatrix", "uMVMatrix", "eyePosition"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := p.Attrib("aVertexNormal"); ok {
		t.Error("flat program exposes aVertexNormal")
	}
	if p.Uniform("eyePosition") != glctx.NoUniform {
		t.Error("absent uniform must resolve to NoUniform")
	}

	// Setters on absent uniforms are no-ops.
	ctx.UseProgram(p.Handle)
	p.SetVec3(ctx, "eyePosition", [3]float32{1, 2, 3})
	p.SetBool(ctx, "reflection", true)
	if ctx.GetError() != gl.NO_ERROR {
		t.Error("setting an absent uniform raised a GL error")
	}
}

func TestBuildSetters(t *testing.T) {
	ctx := recording.NewContext()
	src, _ := Embedded("reflection")
	p, err := Build(ctx, src, "300 es", reflectionLayout)
	if err != nil {
		t.Fatal(err)
	}
	ctx.UseProgram(p.Handle)
	p.SetVec3(ctx, "eyePosition", [3]float32{0, 0, -10})
	p.SetBool(ctx, "reflection", true)
	p.SetInt(ctx, "cubeTexture", 0)

	if v, ok := ctx.UniformValue(p.Handle, "eyePosition"); !ok || v[2] != -10 {
		t.Errorf("eyePosition = %v, %v", v, ok)
	}
	if v, ok := ctx.UniformValue(p.Handle, "reflection"); !ok || v[0] != 1 {
		t.Errorf("reflection = %v, %v", v, ok)
	}
}

func TestBuildCompileError(t *testing.T) {
	ctx := recording.NewContext()
	src := Sources{
		Vertex:   "in vec3 aVertexPosition;\nvoid main() {\n\tgl_Position = vec4(aVertexPosition, 1.0);\n",
		Fragment: "out vec4 c;\nvoid main() { c = vec4(1.0); }\n",
	}
	_, err := Build(ctx, src, "300 es", Layout{})
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *CompileError", err)
	}
	if ce.Stage != Vertex {
		t.Errorf("Stage = %v, want vertex", ce.Stage)
	}
	if strings.TrimSpace(ce.Log) == "" {
		t.Error("compile error carries an empty log")
	}
	if ctx.Live(recording.KindShader) != 0 || ctx.Live(recording.KindProgram) != 0 {
		t.Error("failed build leaked objects")
	}
}

func TestBuildFragmentCompileErrorReleasesVertex(t *testing.T) {
	ctx := recording.NewContext()
	src, _ := Embedded("flat")
	src.Fragment = "out vec4 c;\nvoid main() { c = vec4(1.0);\n"
	_, err := Build(ctx, src, "300 es", Layout{})
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Stage != Fragment {
		t.Fatalf("error = %v, want fragment *CompileError", err)
	}
	if got := ctx.Live(recording.KindShader); got != 0 {
		t.Errorf("Live(shader) = %d, want 0", got)
	}
}

func TestBuildLinkError(t *testing.T) {
	ctx := recording.NewContext()
	src := Sources{
		Vertex:   "in vec3 aVertexPosition;\nvoid main() {\n\tgl_Position = vec4(aVertexPosition, 1.0);\n}\n",
		Fragment: "in vec3 vNormal;\nout vec4 c;\nvoid main() {\n\tc = vec4(vNormal, 1.0);\n}\n",
	}
	_, err := Build(ctx, src, "300 es", Layout{})
	var le *LinkError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LinkError", err)
	}
	if !strings.Contains(le.Log, "vNormal") {
		t.Errorf("link log %q does not name the varying", le.Log)
	}
	if ctx.Live(recording.KindProgram) != 0 || ctx.Live(recording.KindShader) != 0 {
		t.Error("failed link leaked objects")
	}
}

func TestBuildMissingAttribute(t *testing.T) {
	ctx := recording.NewContext()
	src, _ := Embedded("flat")
	_, err := Build(ctx, src, "300 es", Layout{Required: []string{"aVertexPosition", "aColor"}})
	var me *MissingAttributeError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *MissingAttributeError", err)
	}
	if me.Name != "aColor" {
		t.Errorf("Name = %q, want aColor", me.Name)
	}
	if ctx.Live(recording.KindProgram) != 0 {
		t.Error("program not released after missing attribute")
	}
}

func TestBuildAllocationFailure(t *testing.T) {
	ctx := recording.NewContext()
	ctx.FailCreate(recording.KindProgram, 1)
	src, _ := Embedded("flat")
	_, err := Build(ctx, src, "300 es", Layout{})
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("error = %v, want ErrAllocation", err)
	}
	if got := ctx.Live(recording.KindShader); got != 0 {
		t.Errorf("Live(shader) = %d, want 0", got)
	}
}

func TestFailureLog(t *testing.T) {
	if got := failureLog("  \n"); got == "" {
		t.Error("failureLog returned an empty string")
	}
	if got := failureLog("ERROR: 0:1: x"); got != "ERROR: 0:1: x" {
		t.Errorf("failureLog = %q", got)
	}
}
