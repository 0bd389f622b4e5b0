package recording

import (
	"slices"
	"strings"

	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/glctx/gl"
)

// Limits exposed by the recorder.
const (
	MaxVertexAttribs = 16
	MaxTextureUnits  = 16
)

// Binding query enums for Bound that the gl constant set does not carry.
const (
	ArrayBufferBinding        = 0x8894
	ElementArrayBufferBinding = 0x8895
	CurrentProgram            = 0x8B8D
	TextureBinding2D          = 0x8069
	TextureBindingCubeMap     = 0x8514
)

const (
	shaderType      = 0x8B4F
	deleteStatus    = 0x8B80
	attachedShaders = 0x8B85
)

type bufferObject struct {
	data  []byte
	usage uint32
}

type shaderObject struct {
	stage    uint32
	source   string
	compiled bool
	log      string
	info     sourceInfo
}

type uniform struct {
	name  string
	typ   string
	value []float32
}

type programObject struct {
	shaders  []glctx.Shader
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms []*uniform // indexed by location
}

func (p *programObject) uniformNamed(name string) (glctx.UniformLocation, *uniform) {
	for i, u := range p.uniforms {
		if u.name == name {
			return glctx.UniformLocation(i), u
		}
	}
	return glctx.NoUniform, nil
}

type texLevel struct {
	width, height int32
	format        uint32
	pixels        []byte
}

type textureObject struct {
	target uint32
	images map[uint32]map[int32]texLevel // image target -> level -> image
	params map[uint32]int32
	levels int
}

type attribState struct {
	enabled bool
	buffer  glctx.Buffer
	size    int32
	xtype   uint32
	stride  int32
	offset  int
}

type vertexArrayObject struct {
	attribs [MaxVertexAttribs]attribState
	element glctx.Buffer
}

// Context is a software glctx.Context that records every call.
type Context struct {
	nextName uint32

	buffers  map[glctx.Buffer]*bufferObject
	shaders  map[glctx.Shader]*shaderObject
	programs map[glctx.Program]*programObject
	textures map[glctx.Texture]*textureObject
	vaos     map[glctx.VertexArray]*vertexArrayObject

	arrayBuffer glctx.Buffer
	program     glctx.Program
	vao         glctx.VertexArray
	activeUnit  uint32
	units       [MaxTextureUnits]map[uint32]glctx.Texture

	caps       map[uint32]bool
	depthFunc  uint32
	clearColor [4]float32
	viewport   [4]int32

	err      uint32
	commands []Command

	attempts [kindCount]int
	failAt   [kindCount][]int
}

var _ glctx.Context = (*Context)(nil)

// NewContext returns an empty recorder with GL default state.
func NewContext() *Context {
	c := &Context{
		buffers:   make(map[glctx.Buffer]*bufferObject),
		shaders:   make(map[glctx.Shader]*shaderObject),
		programs:  make(map[glctx.Program]*programObject),
		textures:  make(map[glctx.Texture]*textureObject),
		vaos:      map[glctx.VertexArray]*vertexArrayObject{0: {}},
		caps:      map[uint32]bool{gl.DITHER: true},
		depthFunc: gl.LESS,
		commands:  make([]Command, 0, 256),
	}
	for i := range c.units {
		c.units[i] = make(map[uint32]glctx.Texture)
	}
	return c
}

// --------------------------------------------------------------------------
// Inspection
// --------------------------------------------------------------------------

// Commands returns the recorded command log.
func (c *Context) Commands() []Command {
	return c.commands
}

// CommandsOf returns the recorded commands of type t in order.
func (c *Context) CommandsOf(t CommandType) []Command {
	var out []Command
	for _, cmd := range c.commands {
		if cmd.Type() == t {
			out = append(out, cmd)
		}
	}
	return out
}

// Draws returns every recorded draw in order.
func (c *Context) Draws() []DrawCommand {
	var out []DrawCommand
	for _, cmd := range c.commands {
		if d, ok := cmd.(DrawCommand); ok {
			out = append(out, d)
		}
	}
	return out
}

// ResetCommands clears the command log. Object and binding state is kept.
func (c *Context) ResetCommands() {
	c.commands = c.commands[:0]
}

// FailCreate makes the n-th next creation of kind (1-based) return the
// zero handle, as a driver does when it runs out of memory.
func (c *Context) FailCreate(kind ObjectKind, n int) {
	c.failAt[kind] = append(c.failAt[kind], c.attempts[kind]+n)
}

// Live returns the number of live objects of kind.
func (c *Context) Live(kind ObjectKind) int {
	switch kind {
	case KindBuffer:
		return len(c.buffers)
	case KindShader:
		return len(c.shaders)
	case KindProgram:
		return len(c.programs)
	case KindTexture:
		return len(c.textures)
	case KindVertexArray:
		return len(c.vaos) - 1
	default:
		return 0
	}
}

// Bound returns the object bound for a binding query enum such as
// ArrayBufferBinding, CurrentProgram or gl.VERTEX_ARRAY_BINDING.
// Texture bindings refer to the active unit.
func (c *Context) Bound(pname uint32) uint32 {
	switch pname {
	case ArrayBufferBinding:
		return uint32(c.arrayBuffer)
	case ElementArrayBufferBinding:
		return uint32(c.vaos[c.vao].element)
	case CurrentProgram:
		return uint32(c.program)
	case gl.VERTEX_ARRAY_BINDING:
		return uint32(c.vao)
	case TextureBinding2D:
		return uint32(c.units[c.activeUnit][gl.TEXTURE_2D])
	case TextureBindingCubeMap:
		return uint32(c.units[c.activeUnit][gl.TEXTURE_CUBE_MAP])
	default:
		return 0
	}
}

// BufferContents returns a copy of the data stored in b.
func (c *Context) BufferContents(b glctx.Buffer) ([]byte, bool) {
	buf, ok := c.buffers[b]
	if !ok {
		return nil, false
	}
	return slices.Clone(buf.data), true
}

// TextureInfo describes a texture object.
type TextureInfo struct {
	Target uint32
	// Width and Height are the level 0 size of the first image.
	Width, Height int32
	// Faces is the number of images defined at level 0.
	Faces int
	// Levels is the mip level count, 1 until mipmaps are generated.
	Levels int
	Params map[uint32]int32
}

// Texture describes texture t.
func (c *Context) Texture(t glctx.Texture) (TextureInfo, bool) {
	tex, ok := c.textures[t]
	if !ok {
		return TextureInfo{}, false
	}
	info := TextureInfo{Target: tex.target, Levels: tex.levels, Params: make(map[uint32]int32, len(tex.params))}
	for k, v := range tex.params {
		info.Params[k] = v
	}
	for _, target := range imageTargets(tex.target) {
		if lvl, ok := tex.images[target][0]; ok {
			if info.Faces == 0 {
				info.Width, info.Height = lvl.width, lvl.height
			}
			info.Faces++
		}
	}
	return info, true
}

// TexturePixels returns the level 0 pixels uploaded to an image target of t.
func (c *Context) TexturePixels(t glctx.Texture, target uint32) ([]byte, bool) {
	tex, ok := c.textures[t]
	if !ok {
		return nil, false
	}
	lvl, ok := tex.images[target][0]
	return lvl.pixels, ok
}

// UniformValue returns the last value set for the named uniform of p.
func (c *Context) UniformValue(p glctx.Program, name string) ([]float32, bool) {
	prog, ok := c.programs[p]
	if !ok {
		return nil, false
	}
	_, u := prog.uniformNamed(name)
	if u == nil || u.value == nil {
		return nil, false
	}
	return slices.Clone(u.value), true
}

// IsEnabled reports whether a capability is enabled.
func (c *Context) IsEnabled(capability uint32) bool { return c.caps[capability] }

// DepthFunction returns the depth comparison function.
func (c *Context) DepthFunction() uint32 { return c.depthFunc }

// ClearColorValue returns the clear color.
func (c *Context) ClearColorValue() [4]float32 { return c.clearColor }

// ViewportRect returns the viewport as x, y, width, height.
func (c *Context) ViewportRect() [4]int32 { return c.viewport }

// --------------------------------------------------------------------------
// Internal helpers
// --------------------------------------------------------------------------

func (c *Context) record(cmd Command) {
	c.commands = append(c.commands, cmd)
}

func (c *Context) setError(call string, code uint32) {
	if c.err == gl.NO_ERROR {
		c.err = code
	}
	c.record(ErrorCommand{Call: call, Code: code})
}

// allocate returns a fresh object name, or zero when a failure was scheduled.
func (c *Context) allocate(kind ObjectKind) uint32 {
	c.attempts[kind]++
	if i := slices.Index(c.failAt[kind], c.attempts[kind]); i >= 0 {
		c.failAt[kind] = slices.Delete(c.failAt[kind], i, i+1)
		c.record(CreateCommand{Kind: kind})
		return 0
	}
	c.nextName++
	c.record(CreateCommand{Kind: kind, Name: c.nextName})
	return c.nextName
}

func imageTargets(target uint32) []uint32 {
	if target == gl.TEXTURE_CUBE_MAP {
		return []uint32{
			gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
		}
	}
	return []uint32{target}
}

// bindTarget maps an image target to the target the texture is bound on.
func bindTarget(imageTarget uint32) (uint32, bool) {
	switch imageTarget {
	case gl.TEXTURE_2D:
		return gl.TEXTURE_2D, true
	case gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
		gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
		gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z:
		return gl.TEXTURE_CUBE_MAP, true
	default:
		return 0, false
	}
}

func boolParam(b bool) int32 {
	if b {
		return gl.TRUE
	}
	return gl.FALSE
}

func logLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log) + 1)
}

// --------------------------------------------------------------------------
// Buffers
// --------------------------------------------------------------------------

// CreateBuffer implements glctx.Context.
func (c *Context) CreateBuffer() glctx.Buffer {
	b := glctx.Buffer(c.allocate(KindBuffer))
	if b != 0 {
		c.buffers[b] = &bufferObject{}
	}
	return b
}

// BindBuffer implements glctx.Context.
func (c *Context) BindBuffer(target uint32, b glctx.Buffer) {
	if _, ok := c.buffers[b]; b != 0 && !ok {
		c.setError("BindBuffer", gl.INVALID_OPERATION)
		return
	}
	switch target {
	case gl.ARRAY_BUFFER:
		c.arrayBuffer = b
	case gl.ELEMENT_ARRAY_BUFFER:
		c.vaos[c.vao].element = b
	default:
		c.setError("BindBuffer", gl.INVALID_ENUM)
		return
	}
	c.record(BindBufferCommand{Target: target, Buffer: b})
}

func (c *Context) boundBuffer(target uint32) (glctx.Buffer, bool) {
	switch target {
	case gl.ARRAY_BUFFER:
		return c.arrayBuffer, true
	case gl.ELEMENT_ARRAY_BUFFER:
		return c.vaos[c.vao].element, true
	default:
		return 0, false
	}
}

// BufferData implements glctx.Context.
func (c *Context) BufferData(target uint32, data []byte, usage uint32) {
	b, ok := c.boundBuffer(target)
	if !ok {
		c.setError("BufferData", gl.INVALID_ENUM)
		return
	}
	switch usage {
	case gl.STATIC_DRAW, gl.DYNAMIC_DRAW, gl.STREAM_DRAW,
		gl.STATIC_READ, gl.DYNAMIC_READ, gl.STREAM_READ,
		gl.STATIC_COPY, gl.DYNAMIC_COPY, gl.STREAM_COPY:
	default:
		c.setError("BufferData", gl.INVALID_ENUM)
		return
	}
	if b == 0 {
		c.setError("BufferData", gl.INVALID_OPERATION)
		return
	}
	buf := c.buffers[b]
	buf.data = slices.Clone(data)
	buf.usage = usage
	c.record(BufferDataCommand{Target: target, Buffer: b, Size: len(data), Usage: usage})
}

// DeleteBuffer implements glctx.Context.
func (c *Context) DeleteBuffer(b glctx.Buffer) {
	if _, ok := c.buffers[b]; !ok {
		return
	}
	delete(c.buffers, b)
	if c.arrayBuffer == b {
		c.arrayBuffer = 0
	}
	for _, v := range c.vaos {
		if v.element == b {
			v.element = 0
		}
		for i := range v.attribs {
			if v.attribs[i].buffer == b {
				v.attribs[i].buffer = 0
			}
		}
	}
	c.record(DeleteCommand{Kind: KindBuffer, Name: uint32(b)})
}

// --------------------------------------------------------------------------
// Shaders and programs
// --------------------------------------------------------------------------

// CreateShader implements glctx.Context.
func (c *Context) CreateShader(kind uint32) glctx.Shader {
	if kind != gl.VERTEX_SHADER && kind != gl.FRAGMENT_SHADER {
		c.setError("CreateShader", gl.INVALID_ENUM)
		return 0
	}
	s := glctx.Shader(c.allocate(KindShader))
	if s != 0 {
		c.shaders[s] = &shaderObject{stage: kind}
	}
	return s
}

// ShaderSource implements glctx.Context.
func (c *Context) ShaderSource(s glctx.Shader, source string) {
	sh, ok := c.shaders[s]
	if !ok {
		c.setError("ShaderSource", gl.INVALID_VALUE)
		return
	}
	sh.source = source
}

// CompileShader implements glctx.Context.
func (c *Context) CompileShader(s glctx.Shader) {
	sh, ok := c.shaders[s]
	if !ok {
		c.setError("CompileShader", gl.INVALID_VALUE)
		return
	}
	info, diags := compileSource(sh.stage, sh.source)
	sh.compiled = len(diags) == 0
	sh.info = info
	sh.log = ""
	if !sh.compiled {
		sh.log = strings.Join(diags, "\n") + "\n"
	}
	c.record(CompileShaderCommand{Shader: s, Stage: sh.stage, OK: sh.compiled})
}

// GetShaderParameter implements glctx.Context.
func (c *Context) GetShaderParameter(s glctx.Shader, pname uint32) int32 {
	sh, ok := c.shaders[s]
	if !ok {
		c.setError("GetShaderParameter", gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		return boolParam(sh.compiled)
	case gl.INFO_LOG_LENGTH:
		return logLength(sh.log)
	case gl.SHADER_SOURCE_LENGTH:
		return logLength(sh.source)
	case shaderType:
		return int32(sh.stage)
	case deleteStatus:
		return gl.FALSE
	default:
		c.setError("GetShaderParameter", gl.INVALID_ENUM)
		return 0
	}
}

// GetShaderInfoLog implements glctx.Context.
func (c *Context) GetShaderInfoLog(s glctx.Shader) string {
	sh, ok := c.shaders[s]
	if !ok {
		c.setError("GetShaderInfoLog", gl.INVALID_VALUE)
		return ""
	}
	return sh.log
}

// DeleteShader implements glctx.Context. Programs keep what they learned
// at link time, so deleting attached shaders after linking is safe.
func (c *Context) DeleteShader(s glctx.Shader) {
	if _, ok := c.shaders[s]; !ok {
		return
	}
	delete(c.shaders, s)
	for _, p := range c.programs {
		p.shaders = slices.DeleteFunc(p.shaders, func(x glctx.Shader) bool { return x == s })
	}
	c.record(DeleteCommand{Kind: KindShader, Name: uint32(s)})
}

// CreateProgram implements glctx.Context.
func (c *Context) CreateProgram() glctx.Program {
	p := glctx.Program(c.allocate(KindProgram))
	if p != 0 {
		c.programs[p] = &programObject{}
	}
	return p
}

// AttachShader implements glctx.Context.
func (c *Context) AttachShader(p glctx.Program, s glctx.Shader) {
	prog, ok := c.programs[p]
	sh, ok2 := c.shaders[s]
	if !ok || !ok2 {
		c.setError("AttachShader", gl.INVALID_VALUE)
		return
	}
	for _, other := range prog.shaders {
		if other == s || c.shaders[other].stage == sh.stage {
			c.setError("AttachShader", gl.INVALID_OPERATION)
			return
		}
	}
	prog.shaders = append(prog.shaders, s)
}

// LinkProgram implements glctx.Context.
func (c *Context) LinkProgram(p glctx.Program) {
	prog, ok := c.programs[p]
	if !ok {
		c.setError("LinkProgram", gl.INVALID_VALUE)
		return
	}
	prog.linked = false
	prog.attribs = nil
	prog.uniforms = nil

	var vs, fs *shaderObject
	for _, s := range prog.shaders {
		switch sh := c.shaders[s]; sh.stage {
		case gl.VERTEX_SHADER:
			vs = sh
		case gl.FRAGMENT_SHADER:
			fs = sh
		}
	}

	var errs []string
	switch {
	case vs == nil || !vs.compiled:
		errs = append(errs, "error: no compiled vertex shader attached")
	case fs == nil || !fs.compiled:
		errs = append(errs, "error: no compiled fragment shader attached")
	}
	if len(errs) > 0 {
		c.finishLink(p, prog, errs)
		return
	}
	if vs.info.version != fs.info.version {
		errs = append(errs, "error: vertex shader version "+vs.info.version+
			" does not match fragment shader version "+fs.info.version)
	}

	outs := make(map[string]string)
	for _, d := range vs.info.decls {
		if d.storage == "out" {
			outs[d.name] = d.typ
		}
	}
	for _, d := range fs.info.decls {
		if d.storage != "in" || !referenced(fs.info.body, d.name) {
			continue
		}
		typ, ok := outs[d.name]
		switch {
		case !ok:
			errs = append(errs, "error: fragment input '"+d.name+"' is not written by the vertex shader")
		case typ != d.typ:
			errs = append(errs, "error: type mismatch for varying '"+d.name+"': "+typ+" vs "+d.typ)
		}
	}

	var uniforms []*uniform
	seen := make(map[string]*uniform)
	for _, sh := range []*shaderObject{vs, fs} {
		for _, d := range sh.info.decls {
			if d.storage != "uniform" || !referenced(sh.info.body, d.name) {
				continue
			}
			if u, ok := seen[d.name]; ok {
				if u.typ != d.typ {
					errs = append(errs, "error: uniform '"+d.name+"' declared as "+u.typ+" and "+d.typ)
				}
				continue
			}
			u := &uniform{name: d.name, typ: d.typ}
			seen[d.name] = u
			uniforms = append(uniforms, u)
		}
	}

	attribs := make(map[string]int32)
	var used [MaxVertexAttribs]bool
	var pending []string
	for _, d := range vs.info.decls {
		if d.storage != "in" || !referenced(vs.info.body, d.name) {
			continue
		}
		if d.location < 0 {
			pending = append(pending, d.name)
			continue
		}
		if d.location >= MaxVertexAttribs || used[d.location] {
			errs = append(errs, "error: invalid or duplicate location for attribute '"+d.name+"'")
			continue
		}
		used[d.location] = true
		attribs[d.name] = d.location
	}
	for _, name := range pending {
		loc := slices.Index(used[:], false)
		if loc < 0 {
			errs = append(errs, "error: too many vertex attributes")
			break
		}
		used[loc] = true
		attribs[name] = int32(loc)
	}

	if len(errs) == 0 {
		prog.linked = true
		prog.attribs = attribs
		prog.uniforms = uniforms
	}
	c.finishLink(p, prog, errs)
}

func (c *Context) finishLink(p glctx.Program, prog *programObject, errs []string) {
	prog.log = ""
	if len(errs) > 0 {
		prog.log = strings.Join(errs, "\n") + "\n"
	}
	c.record(LinkProgramCommand{Program: p, OK: prog.linked})
}

// GetProgramParameter implements glctx.Context.
func (c *Context) GetProgramParameter(p glctx.Program, pname uint32) int32 {
	prog, ok := c.programs[p]
	if !ok {
		c.setError("GetProgramParameter", gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		return boolParam(prog.linked)
	case gl.INFO_LOG_LENGTH:
		return logLength(prog.log)
	case gl.ACTIVE_ATTRIBUTES:
		return int32(len(prog.attribs))
	case gl.ACTIVE_UNIFORMS:
		return int32(len(prog.uniforms))
	case attachedShaders:
		return int32(len(prog.shaders))
	case deleteStatus:
		return gl.FALSE
	default:
		c.setError("GetProgramParameter", gl.INVALID_ENUM)
		return 0
	}
}

// GetProgramInfoLog implements glctx.Context.
func (c *Context) GetProgramInfoLog(p glctx.Program) string {
	prog, ok := c.programs[p]
	if !ok {
		c.setError("GetProgramInfoLog", gl.INVALID_VALUE)
		return ""
	}
	return prog.log
}

// UseProgram implements glctx.Context.
func (c *Context) UseProgram(p glctx.Program) {
	if p != 0 {
		prog, ok := c.programs[p]
		if !ok || !prog.linked {
			c.setError("UseProgram", gl.INVALID_OPERATION)
			return
		}
	}
	c.program = p
	c.record(UseProgramCommand{Program: p})
}

// DeleteProgram implements glctx.Context.
func (c *Context) DeleteProgram(p glctx.Program) {
	if _, ok := c.programs[p]; !ok {
		return
	}
	delete(c.programs, p)
	if c.program == p {
		c.program = 0
	}
	c.record(DeleteCommand{Kind: KindProgram, Name: uint32(p)})
}

// GetAttribLocation implements glctx.Context.
func (c *Context) GetAttribLocation(p glctx.Program, name string) int32 {
	prog, ok := c.programs[p]
	if !ok || !prog.linked {
		c.setError("GetAttribLocation", gl.INVALID_OPERATION)
		return -1
	}
	if loc, ok := prog.attribs[name]; ok {
		return loc
	}
	return -1
}

// GetUniformLocation implements glctx.Context.
func (c *Context) GetUniformLocation(p glctx.Program, name string) glctx.UniformLocation {
	prog, ok := c.programs[p]
	if !ok || !prog.linked {
		c.setError("GetUniformLocation", gl.INVALID_OPERATION)
		return glctx.NoUniform
	}
	loc, _ := prog.uniformNamed(name)
	return loc
}

// --------------------------------------------------------------------------
// Vertex input
// --------------------------------------------------------------------------

// CreateVertexArray implements glctx.Context.
func (c *Context) CreateVertexArray() glctx.VertexArray {
	v := glctx.VertexArray(c.allocate(KindVertexArray))
	if v != 0 {
		c.vaos[v] = &vertexArrayObject{}
	}
	return v
}

// BindVertexArray implements glctx.Context.
func (c *Context) BindVertexArray(v glctx.VertexArray) {
	if _, ok := c.vaos[v]; !ok {
		c.setError("BindVertexArray", gl.INVALID_OPERATION)
		return
	}
	c.vao = v
	c.record(BindVertexArrayCommand{VertexArray: v})
}

// DeleteVertexArray implements glctx.Context.
func (c *Context) DeleteVertexArray(v glctx.VertexArray) {
	if _, ok := c.vaos[v]; v == 0 || !ok {
		return
	}
	delete(c.vaos, v)
	if c.vao == v {
		c.vao = 0
	}
	c.record(DeleteCommand{Kind: KindVertexArray, Name: uint32(v)})
}

func (c *Context) attrib(call string, index uint32) *attribState {
	if index >= MaxVertexAttribs {
		c.setError(call, gl.INVALID_VALUE)
		return nil
	}
	return &c.vaos[c.vao].attribs[index]
}

func (c *Context) recordAttrib(index uint32, a *attribState) {
	c.record(VertexAttribCommand{Index: index, Enabled: a.enabled, Buffer: a.buffer, Size: a.size, XType: a.xtype})
}

// EnableVertexAttribArray implements glctx.Context.
func (c *Context) EnableVertexAttribArray(index uint32) {
	if a := c.attrib("EnableVertexAttribArray", index); a != nil {
		a.enabled = true
		c.recordAttrib(index, a)
	}
}

// DisableVertexAttribArray implements glctx.Context.
func (c *Context) DisableVertexAttribArray(index uint32) {
	if a := c.attrib("DisableVertexAttribArray", index); a != nil {
		a.enabled = false
		c.recordAttrib(index, a)
	}
}

// VertexAttribPointer implements glctx.Context.
func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	a := c.attrib("VertexAttribPointer", index)
	if a == nil {
		return
	}
	if size < 1 || size > 4 || stride < 0 || offset < 0 {
		c.setError("VertexAttribPointer", gl.INVALID_VALUE)
		return
	}
	switch xtype {
	case gl.FLOAT, gl.BYTE, gl.UNSIGNED_BYTE, gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
	default:
		c.setError("VertexAttribPointer", gl.INVALID_ENUM)
		return
	}
	if c.arrayBuffer == 0 {
		c.setError("VertexAttribPointer", gl.INVALID_OPERATION)
		return
	}
	a.buffer = c.arrayBuffer
	a.size = size
	a.xtype = xtype
	a.stride = stride
	a.offset = offset
	c.recordAttrib(index, a)
}

// --------------------------------------------------------------------------
// Uniforms
// --------------------------------------------------------------------------

func (c *Context) setUniform(call string, loc glctx.UniformLocation, value []float32, accept func(typ string) bool) {
	if loc == glctx.NoUniform {
		return
	}
	prog, ok := c.programs[c.program]
	if !ok {
		c.setError(call, gl.INVALID_OPERATION)
		return
	}
	if loc < 0 || int(loc) >= len(prog.uniforms) {
		c.setError(call, gl.INVALID_OPERATION)
		return
	}
	u := prog.uniforms[loc]
	if !accept(u.typ) || len(value) != uniformComponents(u.typ) {
		c.setError(call, gl.INVALID_OPERATION)
		return
	}
	u.value = slices.Clone(value)
	c.record(UniformCommand{Location: loc, Name: u.name, Value: slices.Clone(value)})
}

// UniformMatrix4fv implements glctx.Context.
func (c *Context) UniformMatrix4fv(loc glctx.UniformLocation, transpose bool, value []float32) {
	if transpose {
		c.setError("UniformMatrix4fv", gl.INVALID_VALUE)
		return
	}
	c.setUniform("UniformMatrix4fv", loc, value, func(typ string) bool { return typ == "mat4" })
}

// Uniform3fv implements glctx.Context.
func (c *Context) Uniform3fv(loc glctx.UniformLocation, value []float32) {
	c.setUniform("Uniform3fv", loc, value, func(typ string) bool { return typ == "vec3" })
}

// Uniform1i implements glctx.Context.
func (c *Context) Uniform1i(loc glctx.UniformLocation, value int32) {
	c.setUniform("Uniform1i", loc, []float32{float32(value)}, func(typ string) bool {
		if isSampler(typ) {
			return value >= 0 && value < MaxTextureUnits
		}
		return typ == "int" || typ == "bool"
	})
}

// Uniform1f implements glctx.Context.
func (c *Context) Uniform1f(loc glctx.UniformLocation, value float32) {
	c.setUniform("Uniform1f", loc, []float32{value}, func(typ string) bool {
		return typ == "float" || typ == "bool"
	})
}

// --------------------------------------------------------------------------
// Textures
// --------------------------------------------------------------------------

// CreateTexture implements glctx.Context.
func (c *Context) CreateTexture() glctx.Texture {
	t := glctx.Texture(c.allocate(KindTexture))
	if t != 0 {
		c.textures[t] = &textureObject{
			images: make(map[uint32]map[int32]texLevel),
			params: map[uint32]int32{
				gl.TEXTURE_MIN_FILTER: gl.NEAREST_MIPMAP_LINEAR,
				gl.TEXTURE_MAG_FILTER: gl.LINEAR,
				gl.TEXTURE_WRAP_S:     gl.REPEAT,
				gl.TEXTURE_WRAP_T:     gl.REPEAT,
				gl.TEXTURE_WRAP_R:     gl.REPEAT,
				gl.TEXTURE_BASE_LEVEL: 0,
				gl.TEXTURE_MAX_LEVEL:  1000,
			},
			levels: 1,
		}
	}
	return t
}

// ActiveTexture implements glctx.Context.
func (c *Context) ActiveTexture(unit uint32) {
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+MaxTextureUnits {
		c.setError("ActiveTexture", gl.INVALID_ENUM)
		return
	}
	c.activeUnit = unit - gl.TEXTURE0
	c.record(ActiveTextureCommand{Unit: c.activeUnit})
}

// BindTexture implements glctx.Context.
func (c *Context) BindTexture(target uint32, t glctx.Texture) {
	if target != gl.TEXTURE_2D && target != gl.TEXTURE_CUBE_MAP {
		c.setError("BindTexture", gl.INVALID_ENUM)
		return
	}
	if t != 0 {
		tex, ok := c.textures[t]
		if !ok {
			c.setError("BindTexture", gl.INVALID_OPERATION)
			return
		}
		if tex.target != 0 && tex.target != target {
			c.setError("BindTexture", gl.INVALID_OPERATION)
			return
		}
		tex.target = target
	}
	c.units[c.activeUnit][target] = t
	c.record(BindTextureCommand{Unit: c.activeUnit, Target: target, Texture: t})
}

func (c *Context) boundTexture(call string, target uint32) (glctx.Texture, *textureObject) {
	if target != gl.TEXTURE_2D && target != gl.TEXTURE_CUBE_MAP {
		c.setError(call, gl.INVALID_ENUM)
		return 0, nil
	}
	t := c.units[c.activeUnit][target]
	if t == 0 {
		c.setError(call, gl.INVALID_OPERATION)
		return 0, nil
	}
	return t, c.textures[t]
}

// TexImage2D implements glctx.Context.
func (c *Context) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	bt, ok := bindTarget(target)
	if !ok {
		c.setError("TexImage2D", gl.INVALID_ENUM)
		return
	}
	t, tex := c.boundTexture("TexImage2D", bt)
	if tex == nil {
		return
	}
	if level < 0 || width < 0 || height < 0 || (bt == gl.TEXTURE_CUBE_MAP && width != height) {
		c.setError("TexImage2D", gl.INVALID_VALUE)
		return
	}
	if format != gl.RGBA || xtype != gl.UNSIGNED_BYTE {
		c.setError("TexImage2D", gl.INVALID_ENUM)
		return
	}
	if internalFormat != gl.RGBA && internalFormat != gl.RGBA8 {
		c.setError("TexImage2D", gl.INVALID_VALUE)
		return
	}
	if pixels != nil && len(pixels) < int(width)*int(height)*4 {
		c.setError("TexImage2D", gl.INVALID_OPERATION)
		return
	}
	if tex.images[target] == nil {
		tex.images[target] = make(map[int32]texLevel)
	}
	tex.images[target][level] = texLevel{width: width, height: height, format: format, pixels: slices.Clone(pixels)}
	c.record(TexImageCommand{Texture: t, Target: target, Level: level, Width: width, Height: height, Format: format})
}

// GenerateMipmap implements glctx.Context.
func (c *Context) GenerateMipmap(target uint32) {
	t, tex := c.boundTexture("GenerateMipmap", target)
	if tex == nil {
		return
	}
	var first *texLevel
	for _, it := range imageTargets(target) {
		lvl, ok := tex.images[it][0]
		if !ok || (first != nil && (lvl.width != first.width || lvl.height != first.height)) {
			c.setError("GenerateMipmap", gl.INVALID_OPERATION)
			return
		}
		if first == nil {
			first = &lvl
		}
	}
	size := max(first.width, first.height)
	levels := 1
	for s := size; s > 1; s >>= 1 {
		levels++
	}
	tex.levels = levels
	c.record(GenerateMipmapCommand{Texture: t, Target: target, Levels: levels})
}

// TexParameteri implements glctx.Context.
func (c *Context) TexParameteri(target, pname uint32, value int32) {
	t, tex := c.boundTexture("TexParameteri", target)
	if tex == nil {
		return
	}
	valid := false
	switch pname {
	case gl.TEXTURE_MAG_FILTER:
		valid = value == gl.NEAREST || value == gl.LINEAR
	case gl.TEXTURE_MIN_FILTER:
		switch value {
		case gl.NEAREST, gl.LINEAR, gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST,
			gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR:
			valid = true
		}
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T, gl.TEXTURE_WRAP_R:
		valid = value == gl.REPEAT || value == gl.CLAMP_TO_EDGE || value == gl.MIRRORED_REPEAT
	case gl.TEXTURE_BASE_LEVEL, gl.TEXTURE_MAX_LEVEL:
		valid = value >= 0
	default:
		c.setError("TexParameteri", gl.INVALID_ENUM)
		return
	}
	if !valid {
		c.setError("TexParameteri", gl.INVALID_ENUM)
		return
	}
	tex.params[pname] = value
	c.record(TexParameterCommand{Texture: t, Target: target, Param: pname, Value: value})
}

// GetTexParameteri implements glctx.Context.
func (c *Context) GetTexParameteri(target, pname uint32) int32 {
	_, tex := c.boundTexture("GetTexParameteri", target)
	if tex == nil {
		return 0
	}
	v, ok := tex.params[pname]
	if !ok {
		c.setError("GetTexParameteri", gl.INVALID_ENUM)
		return 0
	}
	return v
}

// DeleteTexture implements glctx.Context.
func (c *Context) DeleteTexture(t glctx.Texture) {
	if _, ok := c.textures[t]; !ok {
		return
	}
	delete(c.textures, t)
	for _, u := range c.units {
		for target, bound := range u {
			if bound == t {
				u[target] = 0
			}
		}
	}
	c.record(DeleteCommand{Kind: KindTexture, Name: uint32(t)})
}

// --------------------------------------------------------------------------
// Fixed function state and drawing
// --------------------------------------------------------------------------

// ClearColor implements glctx.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{r, g, b, a}
	c.record(ClearColorCommand{R: r, G: g, B: b, A: a})
}

// Clear implements glctx.Context.
func (c *Context) Clear(mask uint32) {
	if mask&^(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT|gl.STENCIL_BUFFER_BIT) != 0 {
		c.setError("Clear", gl.INVALID_VALUE)
		return
	}
	c.record(ClearCommand{Mask: mask})
}

// Enable implements glctx.Context.
func (c *Context) Enable(capability uint32) {
	switch capability {
	case gl.BLEND, gl.CULL_FACE, gl.DEPTH_TEST, gl.DITHER, gl.SCISSOR_TEST, gl.STENCIL_TEST:
	default:
		c.setError("Enable", gl.INVALID_ENUM)
		return
	}
	c.caps[capability] = true
	c.record(EnableCommand{Capability: capability})
}

// DepthFunc implements glctx.Context.
func (c *Context) DepthFunc(fn uint32) {
	if fn < gl.NEVER || fn > gl.ALWAYS {
		c.setError("DepthFunc", gl.INVALID_ENUM)
		return
	}
	c.depthFunc = fn
	c.record(DepthFuncCommand{Func: fn})
}

// Viewport implements glctx.Context.
func (c *Context) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		c.setError("Viewport", gl.INVALID_VALUE)
		return
	}
	c.viewport = [4]int32{x, y, width, height}
	c.record(ViewportCommand{X: x, Y: y, Width: width, Height: height})
}

func indexSize(xtype uint32) int {
	switch xtype {
	case gl.UNSIGNED_BYTE:
		return 1
	case gl.UNSIGNED_SHORT:
		return 2
	case gl.UNSIGNED_INT:
		return 4
	default:
		return 0
	}
}

func maxIndex(data []byte, xtype uint32) int {
	m := -1
	switch xtype {
	case gl.UNSIGNED_BYTE:
		for _, b := range data {
			m = max(m, int(b))
		}
	case gl.UNSIGNED_SHORT:
		for _, i := range glctx.BytesUint16(data) {
			m = max(m, int(i))
		}
	case gl.UNSIGNED_INT:
		for i := 0; i+4 <= len(data); i += 4 {
			v := int(data[i]) | int(data[i+1])<<8 | int(data[i+2])<<16 | int(data[i+3])<<24
			m = max(m, v)
		}
	}
	return m
}

// DrawElements implements glctx.Context. Index and attribute ranges are
// validated the way WebGL validates them.
func (c *Context) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	if mode > gl.TRIANGLE_FAN {
		c.setError("DrawElements", gl.INVALID_ENUM)
		return
	}
	size := indexSize(xtype)
	if size == 0 {
		c.setError("DrawElements", gl.INVALID_ENUM)
		return
	}
	if count < 0 || offset < 0 {
		c.setError("DrawElements", gl.INVALID_VALUE)
		return
	}
	prog, ok := c.programs[c.program]
	if !ok || !prog.linked {
		c.setError("DrawElements", gl.INVALID_OPERATION)
		return
	}
	vao := c.vaos[c.vao]
	elements, ok := c.buffers[vao.element]
	if !ok || offset+int(count)*size > len(elements.data) || offset%size != 0 {
		c.setError("DrawElements", gl.INVALID_OPERATION)
		return
	}
	top := maxIndex(elements.data[offset:offset+int(count)*size], xtype)

	draw := DrawCommand{
		Mode:          mode,
		Count:         count,
		XType:         xtype,
		Offset:        offset,
		Program:       c.program,
		VertexArray:   c.vao,
		ElementBuffer: vao.element,
		Uniforms:      make(map[string][]float32, len(prog.uniforms)),
		Textures:      make(map[uint32]glctx.Texture),
	}
	for i, a := range vao.attribs {
		if !a.enabled {
			continue
		}
		buf, ok := c.buffers[a.buffer]
		if !ok {
			c.setError("DrawElements", gl.INVALID_OPERATION)
			return
		}
		stride := int(a.stride)
		if stride == 0 {
			stride = int(a.size) * 4
		}
		if top >= 0 && a.offset+top*stride+int(a.size)*4 > len(buf.data) {
			c.setError("DrawElements", gl.INVALID_OPERATION)
			return
		}
		draw.Attribs = append(draw.Attribs, AttribBinding{Index: uint32(i), Buffer: a.buffer, Size: a.size})
	}
	for _, u := range prog.uniforms {
		draw.Uniforms[u.name] = slices.Clone(u.value)
	}
	for unit, bound := range c.units {
		if t := bound[gl.TEXTURE_CUBE_MAP]; t != 0 {
			draw.Textures[uint32(unit)] = t
		}
	}
	c.record(draw)
}

// Flush implements glctx.Context.
func (c *Context) Flush() {
	c.record(FlushCommand{})
}

// GetError implements glctx.Context. It returns and clears the first error
// raised since the previous call.
func (c *Context) GetError() uint32 {
	err := c.err
	c.err = gl.NO_ERROR
	return err
}
