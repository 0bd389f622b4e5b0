package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/teapot/glctx/gl"
	teximage "github.com/gogpu/teapot/internal/image"
	"github.com/gogpu/teapot/recording"
)

func facePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func sixFaces(t *testing.T, size int) FaceSet {
	t.Helper()
	faces := make(FaceSet, 6)
	for i := range faces {
		faces[i] = facePNG(t, size, size, color.RGBA{uint8(40 * i), 0, 0, 255})
	}
	return faces
}

func TestBuildSixFaces(t *testing.T) {
	ctx := recording.NewContext()
	cube, err := BuildCubeMap(ctx, sixFaces(t, 16), Options{Mipmaps: true, Sampler: DefaultSampler()})
	if err != nil {
		t.Fatalf("BuildCubeMap: %v", err)
	}
	if cube.Size != 16 || cube.Levels != 5 {
		t.Errorf("Size, Levels = %d, %d, want 16, 5", cube.Size, cube.Levels)
	}

	info, ok := ctx.Texture(cube.Handle)
	if !ok {
		t.Fatal("texture not found")
	}
	if info.Target != gl.TEXTURE_CUBE_MAP || info.Faces != 6 {
		t.Errorf("Target, Faces = %#x, %d", info.Target, info.Faces)
	}
	if info.Width != 16 || info.Height != 16 {
		t.Errorf("face size = %dx%d", info.Width, info.Height)
	}
	if info.Levels <= 1 {
		t.Errorf("Levels = %d, want mipmapped", info.Levels)
	}
	want := map[uint32]int32{
		gl.TEXTURE_MIN_FILTER: gl.LINEAR,
		gl.TEXTURE_MAG_FILTER: gl.LINEAR,
		gl.TEXTURE_WRAP_S:     gl.CLAMP_TO_EDGE,
		gl.TEXTURE_WRAP_T:     gl.CLAMP_TO_EDGE,
		gl.TEXTURE_WRAP_R:     gl.CLAMP_TO_EDGE,
	}
	for pname, v := range want {
		if got := info.Params[pname]; got != v {
			t.Errorf("param %#x = %#x, want %#x", pname, got, v)
		}
	}
	if ctx.Bound(recording.TextureBindingCubeMap) != 0 {
		t.Error("cube map left bound")
	}

	// Faces are uploaded in +X, +Y, +Z, -X, -Y, -Z order.
	uploads := ctx.CommandsOf(recording.CmdTexImage)
	if len(uploads) != 6 {
		t.Fatalf("uploads = %d, want 6", len(uploads))
	}
	for i, cmd := range uploads {
		if got := cmd.(recording.TexImageCommand).Target; got != FaceTargets[i] {
			t.Errorf("upload %d target = %#x, want %#x", i, got, FaceTargets[i])
		}
	}
	px, _ := ctx.TexturePixels(cube.Handle, gl.TEXTURE_CUBE_MAP_NEGATIVE_X)
	if px[0] != 120 {
		t.Errorf("-X red = %d, want 120", px[0])
	}
}

func TestDefaultOptionsSampleBaseLevel(t *testing.T) {
	opts := DefaultOptions()
	if !opts.Mipmaps || opts.Sampler.MipmapFilter != gputypes.MipmapFilterModeUndefined {
		t.Fatalf("DefaultOptions = %+v, want mipmaps with no mipmap filter", opts)
	}
	ctx := recording.NewContext()
	cube, err := BuildCubeMap(ctx, sixFaces(t, 4), opts)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(ctx.CommandsOf(recording.CmdGenerateMipmap)); n != 1 {
		t.Errorf("GenerateMipmap calls = %d, want 1", n)
	}
	info, _ := ctx.Texture(cube.Handle)
	if got := info.Params[gl.TEXTURE_MIN_FILTER]; got != gl.LINEAR {
		t.Errorf("MIN_FILTER = %#x, want LINEAR (%#x)", got, gl.LINEAR)
	}
	if got := info.Params[gl.TEXTURE_MAG_FILTER]; got != gl.LINEAR {
		t.Errorf("MAG_FILTER = %#x, want LINEAR", got)
	}
}

func TestBuildMipmapFilterImpliesMipmaps(t *testing.T) {
	ctx := recording.NewContext()
	cube, err := BuildCubeMap(ctx, sixFaces(t, 8), Options{Sampler: gputypes.LinearSamplerDescriptor()})
	if err != nil {
		t.Fatal(err)
	}
	if cube.Levels != 4 {
		t.Errorf("Levels = %d, want 4", cube.Levels)
	}
	info, _ := ctx.Texture(cube.Handle)
	if got := info.Params[gl.TEXTURE_MIN_FILTER]; got != gl.LINEAR_MIPMAP_LINEAR {
		t.Errorf("MIN_FILTER = %#x, want LINEAR_MIPMAP_LINEAR", got)
	}
}

func TestBuildSharedImage(t *testing.T) {
	ctx := recording.NewContext()
	cube, err := BuildCubeMap(ctx, FaceSet{facePNG(t, 8, 8, color.White)}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	info, _ := ctx.Texture(cube.Handle)
	if info.Faces != 6 || info.Width != int32(DefaultOptions().Size) {
		t.Errorf("Faces, Width = %d, %d, want 6, %d", info.Faces, info.Width, DefaultOptions().Size)
	}
}

func TestBuildResizesToOptionSize(t *testing.T) {
	ctx := recording.NewContext()
	faces := sixFaces(t, 8)
	faces[2] = facePNG(t, 20, 10, color.White)
	cube, err := BuildCubeMap(ctx, faces, Options{Size: 32, Sampler: gputypes.LinearSamplerDescriptor()})
	if err != nil {
		t.Fatal(err)
	}
	info, _ := ctx.Texture(cube.Handle)
	if info.Width != 32 || info.Faces != 6 {
		t.Errorf("Width, Faces = %d, %d", info.Width, info.Faces)
	}
}

func TestBuildWithoutMipmaps(t *testing.T) {
	ctx := recording.NewContext()
	s := gputypes.LinearSamplerDescriptor()
	s.MipmapFilter = gputypes.MipmapFilterModeUndefined
	s.AddressModeU = gputypes.AddressModeRepeat
	cube, err := BuildCubeMap(ctx, sixFaces(t, 4), Options{Sampler: s})
	if err != nil {
		t.Fatal(err)
	}
	info, _ := ctx.Texture(cube.Handle)
	if info.Levels != 1 || cube.Levels != 1 {
		t.Errorf("Levels = %d/%d, want 1", info.Levels, cube.Levels)
	}
	if info.Params[gl.TEXTURE_MIN_FILTER] != gl.LINEAR {
		t.Errorf("MIN_FILTER = %#x, want LINEAR", info.Params[gl.TEXTURE_MIN_FILTER])
	}
	if info.Params[gl.TEXTURE_WRAP_S] != gl.REPEAT {
		t.Errorf("WRAP_S = %#x, want REPEAT", info.Params[gl.TEXTURE_WRAP_S])
	}
}

func TestBuildDefaultFaces(t *testing.T) {
	faces, err := teximage.DefaultFaces()
	if err != nil {
		t.Fatal(err)
	}
	ctx := recording.NewContext()
	cube, err := BuildCubeMap(ctx, faces[:], DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if cube.Size != teximage.DefaultFaceSize {
		t.Errorf("Size = %d", cube.Size)
	}
}

func TestBuildDecodeError(t *testing.T) {
	ctx := recording.NewContext()
	faces := sixFaces(t, 4)
	faces[4] = []byte("garbage")
	_, err := BuildCubeMap(ctx, faces, DefaultOptions())
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
	if de.Face != 4 || FaceName(de.Face) != "-Y" {
		t.Errorf("Face = %d (%s), want 4 (-Y)", de.Face, FaceName(de.Face))
	}
	if !errors.Is(err, teximage.ErrUnsupportedFormat) {
		t.Errorf("error does not wrap the decoder error: %v", err)
	}
	if ctx.Live(recording.KindTexture) != 0 {
		t.Error("texture allocated for undecodable faces")
	}
}

func TestBuildErrors(t *testing.T) {
	ctx := recording.NewContext()
	if _, err := BuildCubeMap(ctx, sixFaces(t, 4)[:3], DefaultOptions()); !errors.Is(err, ErrFaceCount) {
		t.Errorf("three faces: error = %v, want ErrFaceCount", err)
	}

	ctx.FailCreate(recording.KindTexture, 1)
	if _, err := BuildCubeMap(ctx, sixFaces(t, 4), DefaultOptions()); !errors.Is(err, ErrTextureAlloc) {
		t.Errorf("allocation failure: error = %v, want ErrTextureAlloc", err)
	}
}

func TestBindAndDelete(t *testing.T) {
	ctx := recording.NewContext()
	cube, err := BuildCubeMap(ctx, sixFaces(t, 4), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	cube.Bind(ctx, 0)
	if got := ctx.Bound(recording.TextureBindingCubeMap); got != uint32(cube.Handle) {
		t.Errorf("bound = %d, want %d", got, cube.Handle)
	}
	Unbind(ctx, 0)
	if ctx.Bound(recording.TextureBindingCubeMap) != 0 {
		t.Error("Unbind left the cube map bound")
	}
	cube.Delete(ctx)
	cube.Delete(ctx)
	if ctx.Live(recording.KindTexture) != 0 || cube.Handle != 0 {
		t.Error("Delete did not release the texture")
	}
}

func TestMinFilter(t *testing.T) {
	tests := []struct {
		min  gputypes.FilterMode
		mip  gputypes.MipmapFilterMode
		want int32
	}{
		{gputypes.FilterModeLinear, gputypes.MipmapFilterModeUndefined, gl.LINEAR},
		{gputypes.FilterModeNearest, gputypes.MipmapFilterModeUndefined, gl.NEAREST},
		{gputypes.FilterModeNearest, gputypes.MipmapFilterModeNearest, gl.NEAREST_MIPMAP_NEAREST},
		{gputypes.FilterModeNearest, gputypes.MipmapFilterModeLinear, gl.NEAREST_MIPMAP_LINEAR},
		{gputypes.FilterModeLinear, gputypes.MipmapFilterModeNearest, gl.LINEAR_MIPMAP_NEAREST},
		{gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear, gl.LINEAR_MIPMAP_LINEAR},
	}
	for _, tt := range tests {
		if got := minFilter(tt.min, tt.mip); got != tt.want {
			t.Errorf("minFilter(%v, %v) = %#x, want %#x", tt.min, tt.mip, got, tt.want)
		}
	}
}
