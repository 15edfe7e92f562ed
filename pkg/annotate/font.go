package annotate

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	DefaultFontFile = "arial.ttf"
	DefaultFontSize = 20
	// Reported when the built-in face is used.
	BuiltinFontName = "basicfont 7x13"
)

// ResolveFont loads the TrueType/OpenType font at fontPath.
// Any failure falls back to the built-in 7x13 bitmap face. The second return names the face used.
func ResolveFont(fontPath string, size float64) (font.Face, string) {
	if fontPath != "" {
		if fontFace, err := loadFont(fontPath, size); err == nil {
			return fontFace, fontPath
		}
	}
	return basicfont.Face7x13, BuiltinFontName
}

func loadFont(fontPath string, size float64) (font.Face, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
