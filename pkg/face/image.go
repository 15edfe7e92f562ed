package face

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// Formats accepted by the detection services.
var acceptedFormats = []string{"image/jpeg", "image/png", "image/gif", "image/bmp"}

// ReadImage loads the raw bytes of an image and checks that its content is an accepted format.
func ReadImage(imagePath string) ([]byte, error) {
	imgBytes, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}
	mtype := mimetype.Detect(imgBytes)
	for _, accepted := range acceptedFormats {
		if mtype.Is(accepted) {
			return imgBytes, nil
		}
	}
	return nil, fmt.Errorf("%s: unsupported image format %s", imagePath, mtype.String())
}
