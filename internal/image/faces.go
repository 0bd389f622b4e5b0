package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"slices"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFaceSize is the edge length of the built-in environment faces.
const DefaultFaceSize = 256

// FaceLabels names the cube faces in upload order.
var FaceLabels = [6]string{"+X", "+Y", "+Z", "-X", "-Y", "-Z"}

// Gradient endpoints per face: positive axes are warm, negative axes cool.
var faceColors = [6][2]color.RGBA{
	{{230, 90, 70, 255}, {120, 30, 20, 255}},
	{{250, 240, 200, 255}, {180, 160, 90, 255}},
	{{240, 150, 60, 255}, {130, 70, 20, 255}},
	{{70, 120, 230, 255}, {20, 40, 120, 255}},
	{{90, 90, 100, 255}, {30, 30, 40, 255}},
	{{70, 200, 170, 255}, {20, 90, 80, 255}},
}

var defaultFaces = sync.OnceValues(func() ([6][]byte, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return [6][]byte{}, err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    DefaultFaceSize / 4,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return [6][]byte{}, err
	}
	defer func() { _ = face.Close() }()

	var out [6][]byte
	for i := range out {
		img := gradient(DefaultFaceSize, faceColors[i][0], faceColors[i][1])
		label(img, face, FaceLabels[i])
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return [6][]byte{}, err
		}
		out[i] = buf.Bytes()
	}
	return out, nil
})

// DefaultFaces returns six PNG-encoded faces, each a vertical gradient
// labelled with its axis, in the order of FaceLabels.
func DefaultFaces() ([6][]byte, error) {
	faces, err := defaultFaces()
	if err != nil {
		return faces, err
	}
	for i := range faces {
		faces[i] = slices.Clone(faces[i])
	}
	return faces, nil
}

func gradient(size int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		t := float32(y) / float32(size-1)
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, c.A
		}
	}
	return img
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
}

// label draws text centered on img.
func label(img *image.RGBA, face font.Face, text string) {
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	m := face.Metrics()
	size := img.Bounds().Size()
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(size.X) - width) / 2,
		Y: (fixed.I(size.Y) + m.Ascent - m.Descent) / 2,
	}
	d.DrawString(text)
}
