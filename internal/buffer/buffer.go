// Package buffer uploads static geometry to GPU buffers and wires them to
// vertex attribute slots.
package buffer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/glctx/gl"
)

// Buffer errors.
var (
	// ErrAllocation is returned when the context cannot create or fill a buffer.
	ErrAllocation = errors.New("buffer: allocation failed")

	// ErrNullSource is returned when asked to bind the zero buffer to a slot.
	// The slot is disabled so the draw reads the attribute's constant value.
	ErrNullSource = errors.New("buffer: no buffer to bind")

	// ErrComponents is returned for a component count outside 1 to 4.
	ErrComponents = errors.New("buffer: component count must be 1 to 4")
)

// IndexFormat is the only index format the scene uses.
const IndexFormat = gputypes.IndexFormatUint16

// Format returns the float vertex format with the given component count.
func Format(components int) (gputypes.VertexFormat, error) {
	switch components {
	case 1:
		return gputypes.VertexFormatFloat32, nil
	case 2:
		return gputypes.VertexFormatFloat32x2, nil
	case 3:
		return gputypes.VertexFormatFloat32x3, nil
	case 4:
		return gputypes.VertexFormatFloat32x4, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrComponents, components)
	}
}

// UploadVertices allocates an ARRAY_BUFFER and copies v into it with
// STATIC_DRAW usage.
func UploadVertices(ctx glctx.Context, v []float32) (glctx.Buffer, error) {
	return upload(ctx, gl.ARRAY_BUFFER, glctx.Float32Bytes(v))
}

// UploadIndices allocates an ELEMENT_ARRAY_BUFFER and copies idx into it
// with STATIC_DRAW usage.
func UploadIndices(ctx glctx.Context, idx []uint16) (glctx.Buffer, error) {
	return upload(ctx, gl.ELEMENT_ARRAY_BUFFER, glctx.Uint16Bytes(idx))
}

func upload(ctx glctx.Context, target uint32, data []byte) (glctx.Buffer, error) {
	b := ctx.CreateBuffer()
	if b == 0 {
		return 0, ErrAllocation
	}
	ctx.BindBuffer(target, b)
	ctx.BufferData(target, data, gl.STATIC_DRAW)
	code := ctx.GetError()
	ctx.BindBuffer(target, 0)
	if code != gl.NO_ERROR {
		ctx.DeleteBuffer(b)
		return 0, fmt.Errorf("%w: %s uploading %d bytes", ErrAllocation, glctx.ErrorName(code), len(data))
	}
	return b, nil
}

// BindAndDescribe binds b as the ARRAY_BUFFER, enables slot and declares it
// as tightly packed floats with the given component count. A zero b
// disables the slot and returns ErrNullSource.
func BindAndDescribe(ctx glctx.Context, b glctx.Buffer, slot uint32, components int) error {
	format, err := Format(components)
	if err != nil {
		return err
	}
	return Describe(ctx, b, gputypes.VertexAttribute{Format: format, ShaderLocation: slot})
}

// Describe binds b and points attr.ShaderLocation at it using attr's format
// and byte offset.
func Describe(ctx glctx.Context, b glctx.Buffer, attr gputypes.VertexAttribute) error {
	if b == 0 {
		ctx.DisableVertexAttribArray(attr.ShaderLocation)
		return ErrNullSource
	}
	components := int32(attr.Format.Size() / 4)
	if components < 1 || components > 4 {
		return fmt.Errorf("%w: format %s", ErrComponents, attr.Format)
	}
	ctx.BindBuffer(gl.ARRAY_BUFFER, b)
	ctx.EnableVertexAttribArray(attr.ShaderLocation)
	ctx.VertexAttribPointer(attr.ShaderLocation, components, gl.FLOAT, false, 0, int(attr.Offset))
	return nil
}

// BindIndices binds b as the ELEMENT_ARRAY_BUFFER of the current vertex array.
func BindIndices(ctx glctx.Context, b glctx.Buffer) error {
	if b == 0 {
		return ErrNullSource
	}
	ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	return nil
}

// IndexType returns the GL type enum matching IndexFormat.
func IndexType() uint32 {
	return gl.UNSIGNED_SHORT
}
