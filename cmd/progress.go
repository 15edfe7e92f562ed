package main

import (
	"context"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"gitlab.com/web-doodle/face-annotator/pkg/face"
)

// spinningDetector shows a spinner while a detection request is in flight.
type spinningDetector struct {
	face.Detector
	spinner *spinner.Spinner
}

func newSpinningDetector(d face.Detector, w io.Writer) *spinningDetector {
	return &spinningDetector{
		Detector: d,
		spinner:  spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w)),
	}
}

func (d *spinningDetector) Detect(ctx context.Context, imagePath string) ([]face.Record, error) {
	d.spinner.Suffix = " Detecting faces in " + imagePath
	d.spinner.Start()
	defer d.spinner.Stop()
	return d.Detector.Detect(ctx, imagePath)
}
