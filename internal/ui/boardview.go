//go:build ebiten

package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"numslide/internal/puzzle"
)

// BoardView draws a board's tiles at their current pixel positions. It reads
// tile state only; all mutation stays with the board. Reading mid-slide
// positions is safe because ebiten drives Update and Draw from one
// goroutine.
type BoardView struct {
	theme *Theme
}

// NewBoardView constructs a view using the shared theme.
func NewBoardView(theme *Theme) *BoardView {
	return &BoardView{theme: theme}
}

// Draw renders every non-blank tile as a filled square with its number
// centered on it.
func (v *BoardView) Draw(screen *ebiten.Image, b *puzzle.Board) {
	for _, t := range b.Tiles() {
		if t.Value == 0 {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(t.X), float32(t.Y), float32(t.Size), float32(t.Size),
			v.theme.TileFill, true)
		DrawCenteredText(screen, strconv.Itoa(t.Value), v.theme.TileFace,
			t.X+t.Size/2, t.Y+t.Size/2, v.theme.TileText)
	}
}
