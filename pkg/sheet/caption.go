// caption.go - Thumbnail captions rendered with the embedded Go Regular
// font via golang.org/x/image/font.
package sheet

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var captionColor = color.RGBA{220, 220, 220, 255}

// captionFace builds the fixed-size caption face.
func captionFace() (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// drawCaption centers text under a thumbnail cell, trimming from the right
// until it fits the cell width.
func drawCaption(img *image.RGBA, face font.Face, text string, x, baseline, cellW int) {
	for len(text) > 1 && font.MeasureString(face, text).Ceil() > cellW {
		text = text[:len(text)-1]
	}

	width := font.MeasureString(face, text).Ceil()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot:  fixed.P(x+(cellW-width)/2, baseline),
	}
	drawer.DrawString(text)
}
