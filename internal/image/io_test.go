package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDecodePNG(t *testing.T) {
	data := encodePNG(t, solid(4, 4, color.NRGBA{R: 255, A: 255}))
	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[:4])
}

func TestDecodeOtherFormats(t *testing.T) {
	src := solid(8, 8, color.NRGBA{G: 200, A: 255})

	var jb bytes.Buffer
	require.NoError(t, jpeg.Encode(&jb, src, nil))
	var bb bytes.Buffer
	require.NoError(t, bmp.Encode(&bb, src))

	for name, data := range map[string][]byte{"jpeg": jb.Bytes(), "bmp": bb.Bytes()} {
		t.Run(name, func(t *testing.T) {
			img, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, 8, img.Bounds().Dx())
			assert.Equal(t, 8, img.Bounds().Dy())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyData)

	_, err = Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	data := encodePNG(t, solid(4, 4, color.White))
	_, err = Decode(data[:len(data)/2])
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat), "truncated PNG is malformed, not unknown")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, solid(2, 2, color.Black)), 0o600))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestToRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.Set(10, 10, color.RGBA{B: 255, A: 255})
	got := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 4, 2), got.Bounds())
	assert.Equal(t, []uint8{0, 0, 255, 255}, got.Pix[:4])

	origin := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, origin, ToRGBA(origin))
}

func TestResize(t *testing.T) {
	src := ToRGBA(solid(16, 8, color.NRGBA{R: 100, G: 100, B: 100, A: 255}))
	got := Resize(src, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), got.Bounds())
	r, g, b, a := got.At(16, 16).RGBA()
	assert.InDelta(t, 100*0x101, float64(r), 0x101)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
	assert.InDelta(t, 0xffff, float64(a), 0x101)

	square := image.NewRGBA(image.Rect(0, 0, 32, 32))
	assert.Same(t, square, Resize(square, 32))
}

func TestDefaultFaces(t *testing.T) {
	faces, err := DefaultFaces()
	require.NoError(t, err)
	for i, data := range faces {
		img, err := Decode(data)
		require.NoError(t, err, FaceLabels[i])
		assert.Equal(t, DefaultFaceSize, img.Bounds().Dx())
		assert.Equal(t, DefaultFaceSize, img.Bounds().Dy())
	}
	assert.NotEqual(t, faces[0], faces[3], "opposite faces must differ")

	// Returned slices are copies.
	faces[0][0] ^= 0xff
	again, err := DefaultFaces()
	require.NoError(t, err)
	assert.NotEqual(t, faces[0][0], again[0][0])
}

func TestGradientEndpoints(t *testing.T) {
	top := color.RGBA{200, 0, 0, 255}
	bottom := color.RGBA{0, 0, 200, 255}
	img := gradient(8, top, bottom)
	assert.Equal(t, top, img.RGBAAt(3, 0))
	assert.Equal(t, bottom, img.RGBAAt(3, 7))
}

func TestDecodeCached(t *testing.T) {
	faces, err := DefaultFaces()
	require.NoError(t, err)

	before := DecodeCacheStats()
	first, err := DecodeCached(faces[2])
	require.NoError(t, err)
	second, err := DecodeCached(faces[2])
	require.NoError(t, err)
	assert.Same(t, first, second, "second decode is served from the cache")

	after := DecodeCacheStats()
	assert.GreaterOrEqual(t, after.Hits, before.Hits+1)
	assert.LessOrEqual(t, after.Len, decodeCacheSize)

	_, err = DecodeCached(nil)
	assert.ErrorIs(t, err, ErrEmptyData)
	_, err = DecodeCached([]byte("garbage"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeCachedKeyCollision(t *testing.T) {
	saved := keyOf
	t.Cleanup(func() {
		keyOf = saved
		decoded.Clear()
	})
	keyOf = func([]byte) decodeKey { return decodeKey{} }
	decoded.Clear()

	red := encodePNG(t, solid(2, 2, color.RGBA{255, 0, 0, 255}))
	blue := encodePNG(t, solid(2, 2, color.RGBA{0, 0, 255, 255}))

	got, err := DecodeCached(red)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, got.RGBAAt(0, 0))

	got, err = DecodeCached(blue)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, got.RGBAAt(0, 0), "colliding key must not return the other face")

	got, err = DecodeCached(red)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, got.RGBAAt(0, 0))
	assert.Equal(t, 1, decoded.Len())
}

func TestDecodeCachedKeysOnContent(t *testing.T) {
	a := encodePNG(t, solid(1, 1, color.White))
	b := bytes.Clone(a)
	assert.Equal(t, keyOf(a), keyOf(b))
	b[len(b)-1] ^= 1
	assert.NotEqual(t, keyOf(a), keyOf(b))
}
