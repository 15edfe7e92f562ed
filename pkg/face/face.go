// Package face holds the face records returned by a remote detection service and the
// detectors that produce them.
package face

import (
	"context"
	"strings"

	"github.com/samber/lo"
)

// Detector submits one image to a face detection service.
// Records are returned in the order the service reported them.
type Detector interface {
	Detect(ctx context.Context, imagePath string) ([]Record, error)
}

// The attribute kinds requested from the service on every call.
var RequestedAttributes = []string{"glasses", "blur", "occlusion"}

type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Glasses string

const (
	NoGlasses       Glasses = "NoGlasses"
	ReadingGlasses  Glasses = "ReadingGlasses"
	Sunglasses      Glasses = "Sunglasses"
	SwimmingGoggles Glasses = "SwimmingGoggles"
)

func (g Glasses) String() string {
	if g == "" {
		return string(NoGlasses)
	}
	return string(g)
}

type BlurLevel string

const (
	BlurLow    BlurLevel = "Low"
	BlurMedium BlurLevel = "Medium"
	BlurHigh   BlurLevel = "High"
)

func (b BlurLevel) String() string {
	if b == "" {
		return "None"
	}
	return string(b)
}

// Region is one named facial area and whether it is obscured.
type Region struct {
	Name     string
	Occluded bool
}

type Occlusion struct {
	Forehead bool
	Eye      bool
	Mouth    bool
}

// Regions lists the occlusion flags in a fixed order.
func (o Occlusion) Regions() []Region {
	return []Region{
		{Name: "forehead", Occluded: o.Forehead},
		{Name: "eye", Occluded: o.Eye},
		{Name: "mouth", Occluded: o.Mouth},
	}
}

// String joins the occluded region names, or returns "None".
func (o Occlusion) String() string {
	occluded := lo.FilterMap(o.Regions(), func(r Region, _ int) (string, bool) {
		return r.Name, r.Occluded
	})
	if len(occluded) == 0 {
		return "None"
	}
	return strings.Join(occluded, ", ")
}

type Attributes struct {
	Glasses   Glasses
	Blur      BlurLevel
	Occlusion Occlusion
}

// Record is a single detected face.
type Record struct {
	Rectangle  Rect
	Attributes Attributes
}
