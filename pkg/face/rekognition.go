package face

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"
	"github.com/disintegration/imaging"
)

// RekognitionAPI is the subset of the Rekognition client used for detection.
type RekognitionAPI interface {
	DetectFaces(ctx context.Context, params *rekognition.DetectFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectFacesOutput, error)
}

// AWS error codes that mean the credentials were rejected.
var rekognitionAuthCodes = map[string]bool{
	"UnrecognizedClientException": true,
	"InvalidSignatureException":   true,
	"AccessDeniedException":       true,
}

// RekognitionDetector detects faces with AWS Rekognition -- https://pkg.go.dev/github.com/aws/aws-sdk-go-v2/service/rekognition
// Rekognition reports no per-region occlusion, so Occlusion is always empty.
type RekognitionDetector struct {
	Client RekognitionAPI
}

func NewRekognitionDetector(client RekognitionAPI) *RekognitionDetector {
	return &RekognitionDetector{Client: client}
}

func (d *RekognitionDetector) Detect(ctx context.Context, imagePath string) ([]Record, error) {
	imgBytes, err := ReadImage(imagePath)
	if err != nil {
		return nil, err
	}
	// Rekognition measures boxes after applying EXIF orientation. Re-encoding without EXIF
	// keeps the ratios in the stored, unrotated frame.
	img, err := imaging.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", imagePath, err)
	}
	uploadBytes, err := imageToBytes(img)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", imagePath, err)
	}
	bounds := img.Bounds()

	output, err := d.Client.DetectFaces(ctx, &rekognition.DetectFacesInput{
		Image: &types.Image{
			Bytes: uploadBytes,
		},
		Attributes: []types.Attribute{types.AttributeAll},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && rekognitionAuthCodes[apiErr.ErrorCode()] {
			return nil, &AuthorizationError{Provider: ProviderRekognition, Message: apiErr.ErrorMessage()}
		}
		return nil, fmt.Errorf("detect faces in %s: %w", imagePath, err)
	}

	records := make([]Record, 0, len(output.FaceDetails))
	for _, detail := range output.FaceDetails {
		records = append(records, Record{
			Rectangle: scaleBoundingBox(detail.BoundingBox, bounds.Dx(), bounds.Dy()),
			Attributes: Attributes{
				Glasses: glassesFromDetail(detail),
				Blur:    blurFromQuality(detail.Quality),
			},
		})
	}
	return records, nil
}

func imageToBytes(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Bounding boxes are ratios of the overall image size.
func scaleBoundingBox(box *types.BoundingBox, width, height int) Rect {
	if box == nil {
		return Rect{}
	}
	ratio := func(v *float32, size int) int {
		if v == nil {
			return 0
		}
		return int(*v * float32(size))
	}
	return Rect{
		Left:   ratio(box.Left, width),
		Top:    ratio(box.Top, height),
		Width:  ratio(box.Width, width),
		Height: ratio(box.Height, height),
	}
}

func glassesFromDetail(detail types.FaceDetail) Glasses {
	if detail.Sunglasses != nil && detail.Sunglasses.Value {
		return Sunglasses
	}
	if detail.Eyeglasses != nil && detail.Eyeglasses.Value {
		return ReadingGlasses
	}
	return NoGlasses
}

// Sharpness is 0-100, higher is sharper.
func blurFromQuality(quality *types.ImageQuality) BlurLevel {
	if quality == nil || quality.Sharpness == nil {
		return ""
	}
	switch sharpness := *quality.Sharpness; {
	case sharpness >= 66:
		return BlurLow
	case sharpness >= 33:
		return BlurMedium
	default:
		return BlurHigh
	}
}
