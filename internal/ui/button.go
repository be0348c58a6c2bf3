//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a centered label. A click counts when
// the primary mouse button is both pressed and released inside the rect.
type Button struct {
	X, Y, W, H float64
	Label      string

	theme   *Theme
	pressed bool
}

// NewButton constructs a button anchored at (x, y).
func NewButton(theme *Theme, label string, x, y, w, h float64) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, theme: theme}
}

// Contains reports whether (x, y) lies inside the button rect.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Update tracks mouse state and reports whether the button was clicked this
// frame.
func (b *Button) Update() bool {
	cx, cy := ebiten.CursorPosition()
	inside := b.Contains(float64(cx), float64(cy))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && inside
		b.pressed = false
		return clicked
	}
	return false
}

// Draw renders the button with a hover highlight.
func (b *Button) Draw(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	fill := b.theme.ButtonFill
	if b.Contains(float64(cx), float64(cy)) {
		fill = b.theme.ButtonHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, true)
	DrawCenteredText(screen, b.Label, b.theme.LabelFace, b.X+b.W/2, b.Y+b.H/2, b.theme.Text)
}

// DrawCenteredText draws s with its bounding box centered on (cx, cy).
func DrawCenteredText(dst *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := int(cx) - bounds.Min.X - bounds.Dx()/2
	y := int(cy) - bounds.Min.Y - bounds.Dy()/2
	text.Draw(dst, s, face, x, y, clr)
}
