package annotate

import (
	"context"
	"fmt"
	"image/draw"
	"io"

	"gitlab.com/web-doodle/face-annotator/pkg/face"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// The sample images processed when none are given.
var DefaultImages = []string{
	"images/face1.jpg",
	"images/face2.jpg",
	"images/faces.jpg",
}

// Count is the number of faces detected in one image.
type Count struct {
	Image string
	Faces int
}

// Annotator runs detection on each image in turn, draws the results and saves a copy.
type Annotator struct {
	Detector  face.Detector
	Out       io.Writer
	Font      font.Face
	OutputDir string
	Prefix    string
}

// Run processes imagePaths strictly in order. The first error stops the run and no summary is returned.
func (a *Annotator) Run(ctx context.Context, imagePaths []string) ([]Count, error) {
	summary := make([]Count, 0, len(imagePaths))
	for _, imagePath := range imagePaths {
		fmt.Fprintf(a.Out, "--- Processing %s ---\n", imagePath)
		faces, err := a.Process(ctx, imagePath)
		if err != nil {
			return nil, err
		}
		summary = append(summary, Count{Image: imagePath, Faces: faces})
	}
	return summary, nil
}

// Process detects, annotates and saves a single image, returning the number of faces found.
func (a *Annotator) Process(ctx context.Context, imagePath string) (int, error) {
	records, err := a.Detector.Detect(ctx, imagePath)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		a.noFaces(imagePath)
		return 0, nil
	}
	fmt.Fprintf(a.Out, "%d face(s) detected in %s.\n\n", len(records), imagePath)

	img, err := Open(imagePath)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", imagePath, err)
	}
	a.Annotate(img, imagePath, records)

	prefix := a.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	outputFile, err := Save(img, imagePath, a.OutputDir, prefix)
	if err != nil {
		return 0, fmt.Errorf("save annotated %s: %w", imagePath, err)
	}
	fmt.Fprintf(a.Out, "Annotated image saved as %s\n\n", outputFile)
	return len(records), nil
}

// Annotate draws every record onto img and prints its attributes.
// With no records img is left untouched.
func (a *Annotator) Annotate(img draw.Image, imagePath string, records []face.Record) {
	if len(records) == 0 {
		a.noFaces(imagePath)
		return
	}
	fontFace := a.Font
	if fontFace == nil {
		fontFace = basicfont.Face7x13
	}
	labels := Draw(img, records, fontFace)
	for i, record := range records {
		fmt.Fprint(a.Out, FormatAttributes(labels[i], record.Attributes))
	}
}

func (a *Annotator) noFaces(imagePath string) {
	fmt.Fprintf(a.Out, "No faces detected in %s.\n", imagePath)
}

// FormatAttributes renders the attribute block printed for one face.
func FormatAttributes(label string, attrs face.Attributes) string {
	return fmt.Sprintf("%s:\n - Glasses: %s\n - Blur Level: %s\n - Occlusion: %s\n\n",
		label, attrs.Glasses, attrs.Blur, attrs.Occlusion)
}
