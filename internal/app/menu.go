//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"numslide/internal/ui"
)

type menuScene struct {
	theme   *ui.Theme
	classic *ui.Button
	large   *ui.Button
}

func newMenuScene(g *Game) *menuScene {
	const w, h = 200.0, 48.0
	x := (ScreenW - w) / 2
	return &menuScene{
		theme:   g.theme,
		classic: ui.NewButton(g.theme, "4 x 4", x, 280, w, h),
		large:   ui.NewButton(g.theme, "5 x 5", x, 348, w, h),
	}
}

func (s *menuScene) Update(g *Game) (Transition, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return Transition{}, ebiten.Termination
	}
	if s.classic.Update() {
		return Transition{To: ScenePlay, Size: 4}, nil
	}
	if s.large.Update() {
		return Transition{To: ScenePlay, Size: 5}, nil
	}
	return Transition{}, nil
}

func (s *menuScene) Draw(screen *ebiten.Image) {
	ui.DrawCenteredText(screen, "numslide", s.theme.TitleFace, ScreenW/2, 160, s.theme.Accent)
	ui.DrawCenteredText(screen, "slide the tiles into order", s.theme.LabelFace, ScreenW/2, 208, s.theme.Text)
	s.classic.Draw(screen)
	s.large.Draw(screen)
	ui.DrawCenteredText(screen, "Q or Esc quits", s.theme.SmallFace, ScreenW/2, ScreenH-32, s.theme.Text)
}
