package annotate

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/web-doodle/face-annotator/pkg/face"
	"golang.org/x/image/font/basicfont"
)

var gray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

func grayImage(width, height int) *image.NRGBA {
	return imaging.New(width, height, gray)
}

func threeFaces() []face.Record {
	return []face.Record{
		{
			Rectangle:  face.Rect{Left: 10, Top: 40, Width: 30, Height: 30},
			Attributes: face.Attributes{Glasses: face.ReadingGlasses, Blur: face.BlurLow, Occlusion: face.Occlusion{Forehead: true, Mouth: true}},
		},
		{
			Rectangle:  face.Rect{Left: 60, Top: 50, Width: 30, Height: 40},
			Attributes: face.Attributes{Glasses: face.NoGlasses, Blur: face.BlurHigh},
		},
		{
			Rectangle: face.Rect{Left: 110, Top: 45, Width: 20, Height: 20},
		},
	}
}

func TestDrawLabelsInOrder(t *testing.T) {
	img := grayImage(160, 120)
	labels := Draw(img, threeFaces(), basicfont.Face7x13)
	assert.Equal(t, []string{"Face 1", "Face 2", "Face 3"}, labels)

	for _, record := range threeFaces() {
		r := record.Rectangle
		// The stroke reaches the far corner at (left+width, top+height) and stops there.
		assert.Equal(t, BoxColor, img.NRGBAAt(r.Left+r.Width, r.Top+r.Height))
		assert.Equal(t, BoxColor, img.NRGBAAt(r.Left+r.Width, r.Top+r.Height/2))
		assert.Equal(t, BoxColor, img.NRGBAAt(r.Left+r.Width-2, r.Top+r.Height-2))
		assert.Equal(t, gray, img.NRGBAAt(r.Left+r.Width+1, r.Top+r.Height+1))
		assert.Equal(t, gray, img.NRGBAAt(r.Left+r.Width-3, r.Top+r.Height/2))
		// The interior is untouched.
		assert.Equal(t, gray, img.NRGBAAt(r.Left+r.Width/2, r.Top+r.Height/2))
	}
}

func TestDrawClipsToBounds(t *testing.T) {
	img := grayImage(40, 40)
	records := []face.Record{{Rectangle: face.Rect{Left: 30, Top: 2, Width: 30, Height: 30}}}
	require.NotPanics(t, func() { Draw(img, records, basicfont.Face7x13) })
	assert.Equal(t, BoxColor, img.NRGBAAt(30, 20))
}

func TestDrawTagNearTopEdge(t *testing.T) {
	img := grayImage(60, 60)
	records := []face.Record{{Rectangle: face.Rect{Left: 5, Top: 5, Width: 40, Height: 40}}}
	Draw(img, records, basicfont.Face7x13)

	tagged := false
	for x := 5; x < 50 && !tagged; x++ {
		for y := 0; y < 5; y++ {
			if img.NRGBAAt(x, y) == BoxColor {
				tagged = true
				break
			}
		}
	}
	assert.True(t, tagged, "expected the tag to be drawn inside the image")
}

func TestAnnotateNoFaces(t *testing.T) {
	img := grayImage(20, 20)
	before := imaging.Clone(img)
	out := &bytes.Buffer{}

	annotator := &Annotator{Out: out}
	annotator.Annotate(img, "images/empty.jpg", nil)

	assert.Equal(t, "No faces detected in images/empty.jpg.\n", out.String())
	assert.Equal(t, before.Pix, img.Pix)
}

func TestAnnotatePrintsAttributeBlocks(t *testing.T) {
	img := grayImage(160, 120)
	out := &bytes.Buffer{}

	annotator := &Annotator{Out: out, Font: basicfont.Face7x13}
	annotator.Annotate(img, "images/faces.jpg", threeFaces())

	expected := "Face 1:\n - Glasses: ReadingGlasses\n - Blur Level: Low\n - Occlusion: forehead, mouth\n\n" +
		"Face 2:\n - Glasses: NoGlasses\n - Blur Level: High\n - Occlusion: None\n\n" +
		"Face 3:\n - Glasses: NoGlasses\n - Blur Level: None\n - Occlusion: None\n\n"
	assert.Equal(t, expected, out.String())
}

func TestResolveFontFallback(t *testing.T) {
	fontFace, name := ResolveFont("/nonexistent/arial.ttf", DefaultFontSize)
	assert.Equal(t, basicfont.Face7x13, fontFace)
	assert.Equal(t, BuiltinFontName, name)

	_, name = ResolveFont("", DefaultFontSize)
	assert.Equal(t, BuiltinFontName, name)
}
