package face

import (
	"context"
	"time"

	"go.uber.org/ratelimit"
)

type limitedDetector struct {
	Detector
	limiter ratelimit.Limiter
}

// Limited caps the detector at perMinute calls. A non-positive rate returns d unchanged.
func Limited(d Detector, perMinute int) Detector {
	if perMinute <= 0 {
		return d
	}
	return &limitedDetector{
		Detector: d,
		limiter:  ratelimit.New(perMinute, ratelimit.Per(time.Minute)),
	}
}

func (d *limitedDetector) Detect(ctx context.Context, imagePath string) ([]Record, error) {
	d.limiter.Take()
	return d.Detector.Detect(ctx, imagePath)
}
