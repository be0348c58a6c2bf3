//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Dialog is a modal panel with a title, body lines and a row of buttons.
type Dialog struct {
	X, Y, W, H float64
	Title      string
	Lines      []string
	Buttons    []*Button

	theme *Theme
}

// NewDialog constructs a dialog centered horizontally on the given panel
// rect and lays its buttons out in a single row along the bottom edge.
func NewDialog(theme *Theme, title string, x, y, w, h float64) *Dialog {
	return &Dialog{X: x, Y: y, W: w, H: h, Title: title, theme: theme}
}

// AddButton appends a button to the bottom row and returns it so the caller
// can poll clicks.
func (d *Dialog) AddButton(label string) *Button {
	b := NewButton(d.theme, label, 0, 0, 120, 36)
	d.Buttons = append(d.Buttons, b)
	d.layoutButtons()
	return b
}

func (d *Dialog) layoutButtons() {
	const gap = 16.0
	n := float64(len(d.Buttons))
	total := n*120 + (n-1)*gap
	x := d.X + (d.W-total)/2
	y := d.Y + d.H - 36 - 20
	for _, b := range d.Buttons {
		b.X, b.Y = x, y
		x += 120 + gap
	}
}

// Update polls the buttons and returns the index of the clicked one, or -1.
func (d *Dialog) Update() int {
	for i, b := range d.Buttons {
		if b.Update() {
			return i
		}
	}
	return -1
}

// Draw renders the panel, title, body lines and buttons.
func (d *Dialog) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), d.theme.PanelFill, true)
	DrawCenteredText(screen, d.Title, d.theme.TitleFace, d.X+d.W/2, d.Y+44, d.theme.Accent)
	y := d.Y + 96
	for _, line := range d.Lines {
		DrawCenteredText(screen, line, d.theme.LabelFace, d.X+d.W/2, y, d.theme.Text)
		y += 30
	}
	for _, b := range d.Buttons {
		b.Draw(screen)
	}
}
