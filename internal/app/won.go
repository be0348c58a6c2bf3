//go:build ebiten

package app

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"numslide/internal/score"
	"numslide/internal/ui"
)

type wonScene struct {
	size   int
	dialog *ui.Dialog
}

func newWonScene(g *Game, tr Transition) *wonScene {
	const w, h = 360.0, 280.0
	d := ui.NewDialog(g.theme, "Solved!", (ScreenW-w)/2, (ScreenH-h)/2, w, h)
	stars := score.Stars(tr.Size, tr.Elapsed)
	d.Lines = []string{
		strings.Repeat("* ", stars) + strings.Repeat("- ", score.MaxStars-stars),
		fmt.Sprintf("time  %02d:%02d", int(tr.Elapsed.Seconds())/60, int(tr.Elapsed.Seconds())%60),
		fmt.Sprintf("moves  %d", tr.Moves),
	}
	d.AddButton("Play again")
	d.AddButton("Menu")
	return &wonScene{size: tr.Size, dialog: d}
}

func (s *wonScene) Update(g *Game) (Transition, error) {
	switch s.dialog.Update() {
	case 0:
		return Transition{To: ScenePlay, Size: s.size}, nil
	case 1:
		return Transition{To: SceneMenu}, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return Transition{To: ScenePlay, Size: s.size}, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return Transition{To: SceneMenu}, nil
	}
	return Transition{}, nil
}

func (s *wonScene) Draw(screen *ebiten.Image) {
	s.dialog.Draw(screen)
}
