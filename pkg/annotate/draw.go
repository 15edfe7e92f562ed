// Package annotate draws face detection results onto images and drives the detect, draw, save pipeline.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"gitlab.com/web-doodle/face-annotator/pkg/face"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	// Lime, as used for both the face boxes and their tags.
	BoxColor    = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	BoxWidth    = 3
	LabelOffset = 25
)

// Label is the tag drawn above the n-th face (1-indexed).
func Label(n int) string {
	return fmt.Sprintf("Face %d", n)
}

// Draw outlines each record on img and tags it with its label, in record order.
// It returns the labels drawn.
func Draw(img draw.Image, records []face.Record, fontFace font.Face) []string {
	labels := make([]string, 0, len(records))
	for i, record := range records {
		r := record.Rectangle
		// The outline includes the pixel at (left+width, top+height).
		box := image.Rect(r.Left, r.Top, r.Left+r.Width+1, r.Top+r.Height+1)
		drawRectangle(img, box, BoxColor, BoxWidth)

		tag := Label(i + 1)
		drawText(img, tag, image.Pt(r.Left, r.Top-LabelOffset), fontFace)
		labels = append(labels, tag)
	}
	return labels
}

// drawRectangle strokes the inside edge of box, clipped to the image bounds.
func drawRectangle(img draw.Image, box image.Rectangle, c color.Color, width int) {
	src := image.NewUniform(c)
	bounds := img.Bounds()
	if width > box.Dx() || width > box.Dy() {
		draw.Draw(img, box.Intersect(bounds), src, image.Point{}, draw.Src)
		return
	}
	bands := []image.Rectangle{
		image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+width),
		image.Rect(box.Min.X, box.Max.Y-width, box.Max.X, box.Max.Y),
		image.Rect(box.Min.X, box.Min.Y, box.Min.X+width, box.Max.Y),
		image.Rect(box.Max.X-width, box.Min.Y, box.Max.X, box.Max.Y),
	}
	for _, band := range bands {
		draw.Draw(img, band.Intersect(bounds), src, image.Point{}, draw.Src)
	}
}

// drawText renders text with its top-left corner at pt, pushed back inside the image when it would start above it.
func drawText(img draw.Image, text string, pt image.Point, fontFace font.Face) {
	bounds := img.Bounds()
	if pt.Y < bounds.Min.Y {
		pt.Y = bounds.Min.Y
	}
	if pt.X < bounds.Min.X {
		pt.X = bounds.Min.X
	}
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(BoxColor),
		Face: fontFace,
		Dot:  fixed.Point26_6{X: fixed.I(pt.X), Y: fixed.I(pt.Y) + fontFace.Metrics().Ascent},
	}
	drawer.DrawString(text)
}
