package annotate

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const DefaultPrefix = "detected_"

// Open decodes the image at imagePath into a mutable copy.
// EXIF orientation is ignored so the raster matches the frame the detector boxes refer to.
func Open(imagePath string) (*image.NRGBA, error) {
	img, err := imaging.Open(imagePath)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// OutputPath prefixes the base name of imagePath and places it in outputDir.
func OutputPath(imagePath, outputDir, prefix string) string {
	return filepath.Join(outputDir, prefix+filepath.Base(imagePath))
}

// Save writes img to its output path, in the format implied by the extension.
// An existing file at that path is overwritten.
func Save(img image.Image, imagePath, outputDir, prefix string) (string, error) {
	outputFile := OutputPath(imagePath, outputDir, prefix)
	if err := imaging.Save(img, outputFile); err != nil {
		return "", err
	}
	return outputFile, nil
}
