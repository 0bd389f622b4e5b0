package glctx

// Buffer names a GPU buffer object. The zero value is no buffer.
type Buffer uint32

// Shader names a shader stage object. The zero value is no shader.
type Shader uint32

// Program names a linked program object. The zero value is no program.
type Program uint32

// Texture names a texture object. The zero value is no texture.
type Texture uint32

// VertexArray names a vertex array object. The zero value is no vertex array.
type VertexArray uint32

// UniformLocation identifies a uniform in a linked program.
type UniformLocation int32

// NoUniform is returned by GetUniformLocation for names the program does not use.
const NoUniform UniformLocation = -1

// Valid reports whether the location refers to an active uniform.
func (l UniformLocation) Valid() bool { return l >= 0 }

// Context is the stateful graphics context.
//
// All methods are called from the goroutine that owns the context. Failures
// that GL reports through its error flag are surfaced by GetError; creation
// methods return the zero handle when the object could not be allocated.
type Context interface {
	// Buffers.
	CreateBuffer() Buffer
	BindBuffer(target uint32, b Buffer)
	BufferData(target uint32, data []byte, usage uint32)
	DeleteBuffer(b Buffer)

	// Shaders and programs.
	CreateShader(kind uint32) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	GetShaderParameter(s Shader, pname uint32) int32
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgramParameter(p Program, pname uint32) int32
	GetProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	// GetAttribLocation returns -1 for inactive or unknown attributes.
	GetAttribLocation(p Program, name string) int32
	GetUniformLocation(p Program, name string) UniformLocation

	// Vertex input.
	CreateVertexArray() VertexArray
	BindVertexArray(v VertexArray)
	DeleteVertexArray(v VertexArray)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	// Uniforms on the program in use.
	UniformMatrix4fv(loc UniformLocation, transpose bool, value []float32)
	Uniform3fv(loc UniformLocation, value []float32)
	Uniform1i(loc UniformLocation, value int32)
	Uniform1f(loc UniformLocation, value float32)

	// Textures.
	CreateTexture() Texture
	ActiveTexture(unit uint32)
	BindTexture(target uint32, t Texture)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte)
	GenerateMipmap(target uint32)
	TexParameteri(target, pname uint32, value int32)
	GetTexParameteri(target, pname uint32) int32
	DeleteTexture(t Texture)

	// Fixed function state and drawing.
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
	DepthFunc(fn uint32)
	Viewport(x, y, width, height int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset int)
	Flush()
	GetError() uint32
}
