//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Theme bundles the fonts and palette shared by every scene so widgets carry
// no package-level state.
type Theme struct {
	TitleFace font.Face
	LabelFace font.Face
	TileFace  font.Face
	SmallFace font.Face

	Background   color.RGBA
	BackgroundLo color.RGBA
	TileFill     color.RGBA
	TileText     color.RGBA
	PanelFill    color.RGBA
	ButtonFill   color.RGBA
	ButtonHover  color.RGBA
	Text         color.RGBA
	Accent       color.RGBA
}

// NewTheme parses the bundled Go Regular font and builds the sized faces.
func NewTheme() (*Theme, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ui: parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	th := &Theme{
		Background:   color.RGBA{R: 38, G: 48, B: 74, A: 255},
		BackgroundLo: color.RGBA{R: 18, G: 22, B: 38, A: 255},
		TileFill:     color.RGBA{R: 238, G: 228, B: 218, A: 255},
		TileText:     color.RGBA{R: 60, G: 58, B: 50, A: 255},
		PanelFill:    color.RGBA{R: 28, G: 34, B: 54, A: 235},
		ButtonFill:   color.RGBA{R: 86, G: 112, B: 164, A: 255},
		ButtonHover:  color.RGBA{R: 112, G: 142, B: 198, A: 255},
		Text:         color.RGBA{R: 235, G: 238, B: 245, A: 255},
		Accent:       color.RGBA{R: 255, G: 202, B: 76, A: 255},
	}
	if th.TitleFace, err = face(36); err != nil {
		return nil, err
	}
	if th.LabelFace, err = face(20); err != nil {
		return nil, err
	}
	if th.TileFace, err = face(28); err != nil {
		return nil, err
	}
	if th.SmallFace, err = face(14); err != nil {
		return nil, err
	}
	return th, nil
}
