// Package texture builds cube-map textures from encoded face images.
package texture

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/glctx/gl"
	teximage "github.com/gogpu/teapot/internal/image"
)

// Texture errors.
var (
	// ErrTextureAlloc is returned when the context cannot create a texture.
	ErrTextureAlloc = errors.New("texture: allocation failed")

	// ErrFaceCount is returned unless exactly one shared image or six faces are given.
	ErrFaceCount = errors.New("texture: need one shared image or six faces")

	// ErrUpload is returned when the context rejects a face upload.
	ErrUpload = errors.New("texture: upload rejected")
)

// DecodeError reports a face whose bytes could not be decoded.
type DecodeError struct {
	Face int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("texture: decode face %s: %v", FaceName(e.Face), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FaceTargets lists the cube faces in upload order.
var FaceTargets = [6]uint32{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// FaceName returns the axis label of face i, such as "+X".
func FaceName(i int) string {
	if i < 0 || i >= len(teximage.FaceLabels) {
		return fmt.Sprintf("#%d", i)
	}
	return teximage.FaceLabels[i]
}

// FaceSet holds either six encoded images in FaceTargets order or one
// encoded image shared by every face.
type FaceSet [][]byte

// Options configures BuildCubeMap.
type Options struct {
	// Size is the face edge length. Zero uses the larger dimension of the
	// first face. Faces of another size are resampled.
	Size int
	// Mipmaps generates the mip chain after upload.
	Mipmaps bool
	// Sampler selects filtering and wrapping. A MipmapFilter other than
	// Undefined makes minification read the mip chain, which is then
	// generated even when Mipmaps is false.
	Sampler gputypes.SamplerDescriptor
}

// DefaultSampler returns LINEAR minification and magnification with
// clamp-to-edge wrapping. Minification ignores the mip chain.
func DefaultSampler() gputypes.SamplerDescriptor {
	s := gputypes.LinearSamplerDescriptor()
	s.MipmapFilter = gputypes.MipmapFilterModeUndefined
	return s
}

// DefaultOptions returns 256×256 mipmapped faces sampled with DefaultSampler.
func DefaultOptions() Options {
	return Options{Size: teximage.DefaultFaceSize, Mipmaps: true, Sampler: DefaultSampler()}
}

// Cube is a cube-map texture on the context.
type Cube struct {
	Handle glctx.Texture
	Size   int
	Levels int
}

// BuildCubeMap decodes faces, uploads them to a new cube map and applies
// the sampler. The cube-map target is left unbound.
func BuildCubeMap(ctx glctx.Context, faces FaceSet, opts Options) (*Cube, error) {
	if len(faces) != 1 && len(faces) != len(FaceTargets) {
		return nil, fmt.Errorf("%w: got %d", ErrFaceCount, len(faces))
	}
	decoded := make([]*image.RGBA, len(faces))
	for i, data := range faces {
		img, err := teximage.DecodeCached(data)
		if err != nil {
			return nil, &DecodeError{Face: i, Err: err}
		}
		decoded[i] = img
	}

	size := opts.Size
	if size <= 0 {
		b := decoded[0].Bounds()
		size = max(b.Dx(), b.Dy())
	}
	for i, img := range decoded {
		decoded[i] = teximage.Resize(img, size)
	}

	t := ctx.CreateTexture()
	if t == 0 {
		return nil, ErrTextureAlloc
	}
	ctx.BindTexture(gl.TEXTURE_CUBE_MAP, t)
	for i, target := range FaceTargets {
		img := decoded[0]
		if len(decoded) > 1 {
			img = decoded[i]
		}
		ctx.TexImage2D(target, 0, gl.RGBA, int32(size), int32(size), gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
	}

	cube := &Cube{Handle: t, Size: size, Levels: 1}
	if opts.Mipmaps || opts.Sampler.MipmapFilter != gputypes.MipmapFilterModeUndefined {
		ctx.GenerateMipmap(gl.TEXTURE_CUBE_MAP)
		cube.Levels = mipLevels(size)
	}
	applySampler(ctx, opts.Sampler)
	ctx.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	if code := ctx.GetError(); code != gl.NO_ERROR {
		ctx.DeleteTexture(t)
		return nil, fmt.Errorf("%w: %s", ErrUpload, glctx.ErrorName(code))
	}
	return cube, nil
}

// Bind makes the cube map current on texture unit unit.
func (c *Cube) Bind(ctx glctx.Context, unit uint32) {
	ctx.ActiveTexture(gl.TEXTURE0 + unit)
	ctx.BindTexture(gl.TEXTURE_CUBE_MAP, c.Handle)
}

// Unbind clears the cube-map binding of texture unit unit.
func Unbind(ctx glctx.Context, unit uint32) {
	ctx.ActiveTexture(gl.TEXTURE0 + unit)
	ctx.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
}

// Delete releases the texture object.
func (c *Cube) Delete(ctx glctx.Context) {
	if c.Handle != 0 {
		ctx.DeleteTexture(c.Handle)
		c.Handle = 0
	}
}

func mipLevels(size int) int {
	n := 1
	for s := size; s > 1; s >>= 1 {
		n++
	}
	return n
}

func applySampler(ctx glctx.Context, s gputypes.SamplerDescriptor) {
	ctx.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, minFilter(s.MinFilter, s.MipmapFilter))
	ctx.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, filter(s.MagFilter))
	ctx.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, wrap(s.AddressModeU))
	ctx.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, wrap(s.AddressModeV))
	ctx.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, wrap(s.AddressModeW))
}

// filter maps a FilterMode to a GL filter, defaulting to LINEAR.
func filter(m gputypes.FilterMode) int32 {
	if m == gputypes.FilterModeNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// minFilter combines a minification filter with a mipmap filter.
func minFilter(m gputypes.FilterMode, mip gputypes.MipmapFilterMode) int32 {
	nearest := m == gputypes.FilterModeNearest
	switch {
	case mip == gputypes.MipmapFilterModeUndefined:
		return filter(m)
	case nearest && mip == gputypes.MipmapFilterModeNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case nearest:
		return gl.NEAREST_MIPMAP_LINEAR
	case mip == gputypes.MipmapFilterModeNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	default:
		return gl.LINEAR_MIPMAP_LINEAR
	}
}

// wrap maps an AddressMode to a GL wrap mode, defaulting to CLAMP_TO_EDGE.
func wrap(m gputypes.AddressMode) int32 {
	switch m {
	case gputypes.AddressModeRepeat:
		return gl.REPEAT
	case gputypes.AddressModeMirrorRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}
