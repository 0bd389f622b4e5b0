package recording

import "github.com/gogpu/teapot/glctx"

// CommandType identifies the type of a command.
// Each command type corresponds to one context call.
type CommandType uint8

const (
	// Object lifecycle
	CmdCreate CommandType = iota // Create an object
	CmdDelete                    // Delete an object

	// Buffer commands
	CmdBindBuffer // Bind a buffer to a target
	CmdBufferData // Upload buffer contents

	// Program commands
	CmdCompileShader // Compile a shader stage
	CmdLinkProgram   // Link a program
	CmdUseProgram    // Make a program current

	// Vertex input commands
	CmdBindVertexArray // Bind a vertex array object
	CmdVertexAttrib    // Enable, disable or describe an attribute slot
	CmdUniform         // Set a uniform value

	// Texture commands
	CmdActiveTexture  // Select a texture unit
	CmdBindTexture    // Bind a texture to a target
	CmdTexImage       // Upload a texture level
	CmdGenerateMipmap // Generate the mipmap chain
	CmdTexParameter   // Set a texture parameter

	// Fixed function and draw commands
	CmdClearColor // Set the clear color
	CmdClear      // Clear buffers
	CmdEnable     // Enable a capability
	CmdDepthFunc  // Set the depth comparison
	CmdViewport   // Set the viewport
	CmdDraw       // Draw indexed primitives
	CmdFlush      // Flush queued commands
	CmdError      // A call raised a GL error
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdCreate:          "Create",
	CmdDelete:          "Delete",
	CmdBindBuffer:      "BindBuffer",
	CmdBufferData:      "BufferData",
	CmdCompileShader:   "CompileShader",
	CmdLinkProgram:     "LinkProgram",
	CmdUseProgram:      "UseProgram",
	CmdBindVertexArray: "BindVertexArray",
	CmdVertexAttrib:    "VertexAttrib",
	CmdUniform:         "Uniform",
	CmdActiveTexture:   "ActiveTexture",
	CmdBindTexture:     "BindTexture",
	CmdTexImage:        "TexImage",
	CmdGenerateMipmap:  "GenerateMipmap",
	CmdTexParameter:    "TexParameter",
	CmdClearColor:      "ClearColor",
	CmdClear:           "Clear",
	CmdEnable:          "Enable",
	CmdDepthFunc:       "DepthFunc",
	CmdViewport:        "Viewport",
	CmdDraw:            "Draw",
	CmdFlush:           "Flush",
	CmdError:           "Error",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ObjectKind identifies the kind of a context object.
type ObjectKind uint8

const (
	KindBuffer ObjectKind = iota
	KindShader
	KindProgram
	KindTexture
	KindVertexArray

	kindCount
)

var objectKindNames = [...]string{
	KindBuffer:      "buffer",
	KindShader:      "shader",
	KindProgram:     "program",
	KindTexture:     "texture",
	KindVertexArray: "vertex array",
}

// String returns the string representation of an ObjectKind.
func (k ObjectKind) String() string {
	if int(k) < len(objectKindNames) {
		return objectKindNames[k]
	}
	return "unknown"
}

// --------------------------------------------------------------------------
// Object Commands
// --------------------------------------------------------------------------

// CreateCommand records an object allocation. Name is zero when the
// allocation failed.
type CreateCommand struct {
	Kind ObjectKind
	Name uint32
}

// Type implements Command.
func (CreateCommand) Type() CommandType { return CmdCreate }

// DeleteCommand records an object deletion.
type DeleteCommand struct {
	Kind ObjectKind
	Name uint32
}

// Type implements Command.
func (DeleteCommand) Type() CommandType { return CmdDelete }

// BindBufferCommand binds Buffer to Target. A zero Buffer unbinds.
type BindBufferCommand struct {
	Target uint32
	Buffer glctx.Buffer
}

// Type implements Command.
func (BindBufferCommand) Type() CommandType { return CmdBindBuffer }

// BufferDataCommand uploads Size bytes to the buffer bound at Target.
type BufferDataCommand struct {
	Target uint32
	Buffer glctx.Buffer
	Size   int
	Usage  uint32
}

// Type implements Command.
func (BufferDataCommand) Type() CommandType { return CmdBufferData }

// --------------------------------------------------------------------------
// Program Commands
// --------------------------------------------------------------------------

// CompileShaderCommand records a compile attempt and its outcome.
type CompileShaderCommand struct {
	Shader glctx.Shader
	Stage  uint32
	OK     bool
}

// Type implements Command.
func (CompileShaderCommand) Type() CommandType { return CmdCompileShader }

// LinkProgramCommand records a link attempt and its outcome.
type LinkProgramCommand struct {
	Program glctx.Program
	OK      bool
}

// Type implements Command.
func (LinkProgramCommand) Type() CommandType { return CmdLinkProgram }

// UseProgramCommand makes Program current. A zero Program clears it.
type UseProgramCommand struct {
	Program glctx.Program
}

// Type implements Command.
func (UseProgramCommand) Type() CommandType { return CmdUseProgram }

// BindVertexArrayCommand binds a vertex array object.
type BindVertexArrayCommand struct {
	VertexArray glctx.VertexArray
}

// Type implements Command.
func (BindVertexArrayCommand) Type() CommandType { return CmdBindVertexArray }

// VertexAttribCommand records the state of one attribute slot after an
// enable, disable or pointer call.
type VertexAttribCommand struct {
	Index   uint32
	Enabled bool
	Buffer  glctx.Buffer
	Size    int32
	XType   uint32
}

// Type implements Command.
func (VertexAttribCommand) Type() CommandType { return CmdVertexAttrib }

// UniformCommand sets the uniform at Location of the current program.
type UniformCommand struct {
	Location glctx.UniformLocation
	Name     string
	Value    []float32
}

// Type implements Command.
func (UniformCommand) Type() CommandType { return CmdUniform }

// --------------------------------------------------------------------------
// Texture Commands
// --------------------------------------------------------------------------

// ActiveTextureCommand selects the texture unit later binds apply to.
type ActiveTextureCommand struct {
	Unit uint32
}

// Type implements Command.
func (ActiveTextureCommand) Type() CommandType { return CmdActiveTexture }

// BindTextureCommand binds Texture to Target on Unit (0-based).
type BindTextureCommand struct {
	Unit    uint32
	Target  uint32
	Texture glctx.Texture
}

// Type implements Command.
func (BindTextureCommand) Type() CommandType { return CmdBindTexture }

// TexImageCommand uploads one level of a texture image target.
type TexImageCommand struct {
	Texture glctx.Texture
	Target  uint32
	Level   int32
	Width   int32
	Height  int32
	Format  uint32
}

// Type implements Command.
func (TexImageCommand) Type() CommandType { return CmdTexImage }

// GenerateMipmapCommand builds the mip chain of the bound texture.
type GenerateMipmapCommand struct {
	Texture glctx.Texture
	Target  uint32
	Levels  int
}

// Type implements Command.
func (GenerateMipmapCommand) Type() CommandType { return CmdGenerateMipmap }

// TexParameterCommand sets one sampling parameter.
type TexParameterCommand struct {
	Texture glctx.Texture
	Target  uint32
	Param   uint32
	Value   int32
}

// Type implements Command.
func (TexParameterCommand) Type() CommandType { return CmdTexParameter }

// --------------------------------------------------------------------------
// Fixed Function and Draw Commands
// --------------------------------------------------------------------------

// ClearColorCommand sets the color used by Clear.
type ClearColorCommand struct {
	R, G, B, A float32
}

// Type implements Command.
func (ClearColorCommand) Type() CommandType { return CmdClearColor }

// ClearCommand clears the buffers selected by Mask.
type ClearCommand struct {
	Mask uint32
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// EnableCommand enables a capability.
type EnableCommand struct {
	Capability uint32
}

// Type implements Command.
func (EnableCommand) Type() CommandType { return CmdEnable }

// DepthFuncCommand sets the depth comparison function.
type DepthFuncCommand struct {
	Func uint32
}

// Type implements Command.
func (DepthFuncCommand) Type() CommandType { return CmdDepthFunc }

// ViewportCommand sets the viewport rectangle.
type ViewportCommand struct {
	X, Y, Width, Height int32
}

// Type implements Command.
func (ViewportCommand) Type() CommandType { return CmdViewport }

// AttribBinding is the state of one enabled attribute slot at draw time.
type AttribBinding struct {
	Index  uint32
	Buffer glctx.Buffer
	Size   int32
}

// DrawCommand records an indexed draw together with the state it consumed.
type DrawCommand struct {
	Mode          uint32
	Count         int32
	XType         uint32
	Offset        int
	Program       glctx.Program
	VertexArray   glctx.VertexArray
	ElementBuffer glctx.Buffer
	// Attribs lists the enabled attribute slots in index order.
	Attribs []AttribBinding
	// Uniforms snapshots every uniform of the program by name.
	Uniforms map[string][]float32
	// Textures maps texture unit to the cube map bound on it.
	Textures map[uint32]glctx.Texture
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// Attrib returns the binding of slot index, if it was enabled.
func (d DrawCommand) Attrib(index uint32) (AttribBinding, bool) {
	for _, a := range d.Attribs {
		if a.Index == index {
			return a, true
		}
	}
	return AttribBinding{}, false
}

// FlushCommand flushes queued commands.
type FlushCommand struct{}

// Type implements Command.
func (FlushCommand) Type() CommandType { return CmdFlush }

// ErrorCommand records a GL error raised by Call.
type ErrorCommand struct {
	Call string
	Code uint32
}

// Type implements Command.
func (ErrorCommand) Type() CommandType { return CmdError }
