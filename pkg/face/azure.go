package face

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	ProviderAzure       = "Azure Face API"
	ProviderRekognition = "AWS Rekognition"
)

// AzureDetector calls the Azure Face "detect" operation -- https://learn.microsoft.com/rest/api/face/
type AzureDetector struct {
	Endpoint   string
	Key        string
	HTTPClient *http.Client
}

func NewAzureDetector(endpoint, key string) *AzureDetector {
	return &AzureDetector{
		Endpoint:   strings.TrimSuffix(endpoint, "/"),
		Key:        key,
		HTTPClient: http.DefaultClient,
	}
}

type azureFace struct {
	FaceRectangle  Rect `json:"faceRectangle"`
	FaceAttributes struct {
		Glasses Glasses `json:"glasses"`
		Blur    *struct {
			BlurLevel string  `json:"blurLevel"`
			Value     float64 `json:"value"`
		} `json:"blur"`
		Occlusion struct {
			ForeheadOccluded bool `json:"foreheadOccluded"`
			EyeOccluded      bool `json:"eyeOccluded"`
			MouthOccluded    bool `json:"mouthOccluded"`
		} `json:"occlusion"`
	} `json:"faceAttributes"`
}

type azureError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (d *AzureDetector) detectURL() string {
	query := url.Values{}
	query.Set("returnFaceId", "false")
	query.Set("returnFaceAttributes", strings.Join(RequestedAttributes, ","))
	return d.Endpoint + "/face/v1.0/detect?" + query.Encode()
}

func (d *AzureDetector) Detect(ctx context.Context, imagePath string) ([]Record, error) {
	imgBytes, err := ReadImage(imagePath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.detectURL(), bytes.NewReader(imgBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", d.Key)

	client := d.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detect faces in %s: %w", imagePath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read detect response for %s: %w", imagePath, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, azureFailure(resp.StatusCode, body)
	}

	var faces []azureFace
	if err := json.Unmarshal(body, &faces); err != nil {
		return nil, fmt.Errorf("decode detect response for %s: %w", imagePath, err)
	}
	records := make([]Record, 0, len(faces))
	for _, f := range faces {
		record := Record{
			Rectangle: f.FaceRectangle,
			Attributes: Attributes{
				Glasses: f.FaceAttributes.Glasses,
				Occlusion: Occlusion{
					Forehead: f.FaceAttributes.Occlusion.ForeheadOccluded,
					Eye:      f.FaceAttributes.Occlusion.EyeOccluded,
					Mouth:    f.FaceAttributes.Occlusion.MouthOccluded,
				},
			},
		}
		if f.FaceAttributes.Blur != nil {
			record.Attributes.Blur = blurLevelFromAzure(f.FaceAttributes.Blur.BlurLevel)
		}
		records = append(records, record)
	}
	return records, nil
}

func blurLevelFromAzure(level string) BlurLevel {
	switch strings.ToLower(level) {
	case "low":
		return BlurLow
	case "medium":
		return BlurMedium
	case "high":
		return BlurHigh
	}
	return BlurLevel(level)
}

// azureFailure turns a non-200 response into an error, singling out rejected keys.
func azureFailure(status int, body []byte) error {
	var apiErr azureError
	_ = json.Unmarshal(body, &apiErr)
	message := apiErr.Error.Message
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if status == http.StatusUnauthorized || apiErr.Error.Code == strconv.Itoa(http.StatusUnauthorized) ||
		strings.Contains(strings.ToLower(message), "invalid subscription key") {
		return &AuthorizationError{Provider: ProviderAzure, Status: status, Message: message}
	}
	return fmt.Errorf("%s returned %d (%s): %s", ProviderAzure, status, apiErr.Error.Code, message)
}
