// Package gl declares the OpenGL enum values the renderer emits.
//
// The values match the OpenGL 3.3 and ES 3.0 headers so recorded streams
// and native drivers agree.
package gl

// OpenGL constants keep their C spellings.
//
//nolint:revive
const (
	// Boolean values
	FALSE = 0
	TRUE  = 1

	// Errors
	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	// Data types
	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	HALF_FLOAT     = 0x140B

	// Clear bits
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	// Primitives
	TRIANGLES    = 0x0004
	TRIANGLE_FAN = 0x0006

	// Capabilities
	CULL_FACE    = 0x0B44
	DEPTH_TEST   = 0x0B71
	STENCIL_TEST = 0x0B90
	DITHER       = 0x0BD0
	BLEND        = 0x0BE2
	SCISSOR_TEST = 0x0C11

	// Comparison functions
	NEVER  = 0x0200
	LESS   = 0x0201
	LEQUAL = 0x0203
	ALWAYS = 0x0207

	// Buffers
	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	VERTEX_ARRAY_BINDING = 0x85B5
	STREAM_DRAW          = 0x88E0
	STREAM_READ          = 0x88E1
	STREAM_COPY          = 0x88E2
	STATIC_DRAW          = 0x88E4
	STATIC_READ          = 0x88E5
	STATIC_COPY          = 0x88E6
	DYNAMIC_DRAW         = 0x88E8
	DYNAMIC_READ         = 0x88E9
	DYNAMIC_COPY         = 0x88EA

	// Shaders
	FRAGMENT_SHADER      = 0x8B30
	VERTEX_SHADER        = 0x8B31
	COMPILE_STATUS       = 0x8B81
	LINK_STATUS          = 0x8B82
	INFO_LOG_LENGTH      = 0x8B84
	SHADER_SOURCE_LENGTH = 0x8B88
	ACTIVE_UNIFORMS      = 0x8B86
	ACTIVE_ATTRIBUTES    = 0x8B89

	// Textures
	TEXTURE_2D                  = 0x0DE1
	TEXTURE0                    = 0x84C0
	TEXTURE_CUBE_MAP            = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z = 0x851A
	TEXTURE_MAG_FILTER          = 0x2800
	TEXTURE_MIN_FILTER          = 0x2801
	TEXTURE_WRAP_S              = 0x2802
	TEXTURE_WRAP_T              = 0x2803
	TEXTURE_WRAP_R              = 0x8072
	TEXTURE_BASE_LEVEL          = 0x813C
	TEXTURE_MAX_LEVEL           = 0x813D
	RGBA                        = 0x1908
	RGBA8                       = 0x8058

	// Filters and wrap modes
	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_NEAREST  = 0x2701
	NEAREST_MIPMAP_LINEAR  = 0x2702
	LINEAR_MIPMAP_LINEAR   = 0x2703
	REPEAT                 = 0x2901
	CLAMP_TO_EDGE          = 0x812F
	MIRRORED_REPEAT        = 0x8370
)
