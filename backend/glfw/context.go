//go:build glfw

package glfw

import (
	"strings"
	"unsafe"

	gogl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/teapot/glctx"
)

// Context implements glctx.Context over the OpenGL 4.1 core profile.
// It must be used on the thread that owns the current GL context.
type Context struct{}

var _ glctx.Context = (*Context)(nil)

// cstr returns name as a null-terminated string for gogl.Str.
func cstr(name string) string {
	return name + "\x00"
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gogl.Ptr(data)
}

// CreateBuffer implements glctx.Context.
func (Context) CreateBuffer() glctx.Buffer {
	var b uint32
	gogl.GenBuffers(1, &b)
	return glctx.Buffer(b)
}

// BindBuffer implements glctx.Context.
func (Context) BindBuffer(target uint32, b glctx.Buffer) { gogl.BindBuffer(target, uint32(b)) }

// BufferData implements glctx.Context.
func (Context) BufferData(target uint32, data []byte, usage uint32) {
	gogl.BufferData(target, len(data), ptr(data), usage)
}

// DeleteBuffer implements glctx.Context.
func (Context) DeleteBuffer(b glctx.Buffer) {
	name := uint32(b)
	gogl.DeleteBuffers(1, &name)
}

// CreateShader implements glctx.Context.
func (Context) CreateShader(kind uint32) glctx.Shader { return glctx.Shader(gogl.CreateShader(kind)) }

// ShaderSource implements glctx.Context.
func (Context) ShaderSource(s glctx.Shader, source string) {
	src, free := gogl.Strs(source)
	defer free()
	length := int32(len(source))
	gogl.ShaderSource(uint32(s), 1, src, &length)
}

// CompileShader implements glctx.Context.
func (Context) CompileShader(s glctx.Shader) { gogl.CompileShader(uint32(s)) }

// GetShaderParameter implements glctx.Context.
func (Context) GetShaderParameter(s glctx.Shader, pname uint32) int32 {
	var v int32
	gogl.GetShaderiv(uint32(s), pname, &v)
	return v
}

// GetShaderInfoLog implements glctx.Context.
func (c Context) GetShaderInfoLog(s glctx.Shader) string {
	n := c.GetShaderParameter(s, gogl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n)
	gogl.GetShaderInfoLog(uint32(s), n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

// DeleteShader implements glctx.Context.
func (Context) DeleteShader(s glctx.Shader) { gogl.DeleteShader(uint32(s)) }

// CreateProgram implements glctx.Context.
func (Context) CreateProgram() glctx.Program { return glctx.Program(gogl.CreateProgram()) }

// AttachShader implements glctx.Context.
func (Context) AttachShader(p glctx.Program, s glctx.Shader) { gogl.AttachShader(uint32(p), uint32(s)) }

// LinkProgram implements glctx.Context.
func (Context) LinkProgram(p glctx.Program) { gogl.LinkProgram(uint32(p)) }

// GetProgramParameter implements glctx.Context.
func (Context) GetProgramParameter(p glctx.Program, pname uint32) int32 {
	var v int32
	gogl.GetProgramiv(uint32(p), pname, &v)
	return v
}

// GetProgramInfoLog implements glctx.Context.
func (c Context) GetProgramInfoLog(p glctx.Program) string {
	n := c.GetProgramParameter(p, gogl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n)
	gogl.GetProgramInfoLog(uint32(p), n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

// UseProgram implements glctx.Context.
func (Context) UseProgram(p glctx.Program) { gogl.UseProgram(uint32(p)) }

// DeleteProgram implements glctx.Context.
func (Context) DeleteProgram(p glctx.Program) { gogl.DeleteProgram(uint32(p)) }

// GetAttribLocation implements glctx.Context.
func (Context) GetAttribLocation(p glctx.Program, name string) int32 {
	return gogl.GetAttribLocation(uint32(p), gogl.Str(cstr(name)))
}

// GetUniformLocation implements glctx.Context.
func (Context) GetUniformLocation(p glctx.Program, name string) glctx.UniformLocation {
	return glctx.UniformLocation(gogl.GetUniformLocation(uint32(p), gogl.Str(cstr(name))))
}

// CreateVertexArray implements glctx.Context.
func (Context) CreateVertexArray() glctx.VertexArray {
	var v uint32
	gogl.GenVertexArrays(1, &v)
	return glctx.VertexArray(v)
}

// BindVertexArray implements glctx.Context.
func (Context) BindVertexArray(v glctx.VertexArray) { gogl.BindVertexArray(uint32(v)) }

// DeleteVertexArray implements glctx.Context.
func (Context) DeleteVertexArray(v glctx.VertexArray) {
	name := uint32(v)
	gogl.DeleteVertexArrays(1, &name)
}

// EnableVertexAttribArray implements glctx.Context.
func (Context) EnableVertexAttribArray(index uint32) { gogl.EnableVertexAttribArray(index) }

// DisableVertexAttribArray implements glctx.Context.
func (Context) DisableVertexAttribArray(index uint32) { gogl.DisableVertexAttribArray(index) }

// VertexAttribPointer implements glctx.Context.
func (Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gogl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

// UniformMatrix4fv implements glctx.Context.
func (Context) UniformMatrix4fv(loc glctx.UniformLocation, transpose bool, value []float32) {
	if len(value) < 16 {
		return
	}
	gogl.UniformMatrix4fv(int32(loc), int32(len(value)/16), transpose, &value[0])
}

// Uniform3fv implements glctx.Context.
func (Context) Uniform3fv(loc glctx.UniformLocation, value []float32) {
	if len(value) < 3 {
		return
	}
	gogl.Uniform3fv(int32(loc), int32(len(value)/3), &value[0])
}

// Uniform1i implements glctx.Context.
func (Context) Uniform1i(loc glctx.UniformLocation, value int32) { gogl.Uniform1i(int32(loc), value) }

// Uniform1f implements glctx.Context.
func (Context) Uniform1f(loc glctx.UniformLocation, value float32) { gogl.Uniform1f(int32(loc), value) }

// CreateTexture implements glctx.Context.
func (Context) CreateTexture() glctx.Texture {
	var t uint32
	gogl.GenTextures(1, &t)
	return glctx.Texture(t)
}

// ActiveTexture implements glctx.Context.
func (Context) ActiveTexture(unit uint32) { gogl.ActiveTexture(unit) }

// BindTexture implements glctx.Context.
func (Context) BindTexture(target uint32, t glctx.Texture) { gogl.BindTexture(target, uint32(t)) }

// TexImage2D implements glctx.Context.
func (Context) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	gogl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr(pixels))
}

// GenerateMipmap implements glctx.Context.
func (Context) GenerateMipmap(target uint32) { gogl.GenerateMipmap(target) }

// TexParameteri implements glctx.Context.
func (Context) TexParameteri(target, pname uint32, value int32) {
	gogl.TexParameteri(target, pname, value)
}

// GetTexParameteri implements glctx.Context.
func (Context) GetTexParameteri(target, pname uint32) int32 {
	var v int32
	gogl.GetTexParameteriv(target, pname, &v)
	return v
}

// DeleteTexture implements glctx.Context.
func (Context) DeleteTexture(t glctx.Texture) {
	name := uint32(t)
	gogl.DeleteTextures(1, &name)
}

// ClearColor implements glctx.Context.
func (Context) ClearColor(r, g, b, a float32) { gogl.ClearColor(r, g, b, a) }

// Clear implements glctx.Context.
func (Context) Clear(mask uint32) { gogl.Clear(mask) }

// Enable implements glctx.Context.
func (Context) Enable(capability uint32) { gogl.Enable(capability) }

// DepthFunc implements glctx.Context.
func (Context) DepthFunc(fn uint32) { gogl.DepthFunc(fn) }

// Viewport implements glctx.Context.
func (Context) Viewport(x, y, width, height int32) { gogl.Viewport(x, y, width, height) }

// DrawElements implements glctx.Context.
func (Context) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gogl.DrawElementsWithOffset(mode, count, xtype, uintptr(offset))
}

// Flush implements glctx.Context.
func (Context) Flush() { gogl.Flush() }

// GetError implements glctx.Context.
func (Context) GetError() uint32 { return gogl.GetError() }
