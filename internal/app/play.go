//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"numslide/internal/core"
	"numslide/internal/puzzle"
	"numslide/internal/ui"
)

const (
	boardMargin = 24.0
	boardTop    = 120.0
	blockGap    = 8.0
)

type playScene struct {
	size  int
	board *puzzle.Board
	view  *ui.BoardView
	watch *core.Stopwatch
	theme *ui.Theme

	// timing flips when the opening shuffle drains and the clock starts.
	timing bool
}

// boardLayout fits a size-wide board into the logical screen.
func boardLayout(size int) puzzle.Layout {
	block := (ScreenW - 2*boardMargin - blockGap*float64(size-1)) / float64(size)
	return puzzle.Layout{X: boardMargin, Y: boardTop, BlockSize: block, BlockGap: blockGap}
}

func newPlayScene(g *Game, size int) (*playScene, error) {
	board, err := puzzle.NewBoard(size, boardLayout(size))
	if err != nil {
		return nil, err
	}
	if g.cfg.Seed != 0 {
		board.SetSeed(g.cfg.Seed)
	}
	board.SetSoundPlayer(g.sounds)
	board.Shuffle(-1)
	return &playScene{
		size:  size,
		board: board,
		view:  ui.NewBoardView(g.theme),
		watch: core.NewStopwatch(),
		theme: g.theme,
	}, nil
}

func (s *playScene) Update(g *Game) (Transition, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !s.board.Shuffling() {
			s.board.Destroy()
			return Transition{To: SceneMenu}, nil
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !s.board.Shuffling() {
		s.board.Reset()
		s.board.Shuffle(-1)
		s.watch.Reset()
		s.timing = false
	}

	s.board.Step(tick())
	if s.board.Shuffling() {
		return Transition{}, nil
	}
	if !s.timing {
		s.watch.Start()
		s.timing = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		x, y := float64(cx), float64(cy)
		if s.board.Contains(x, y) {
			s.board.MoveAtPosition(x, y, true)
		}
	}

	if s.board.MoveCount() > 0 && !s.board.Animating() && s.board.CheckWin() {
		s.watch.Stop()
		moves := s.board.MoveCount()
		elapsed := s.watch.Elapsed()
		s.board.Destroy()
		return Transition{To: SceneWon, Size: s.size, Moves: moves, Elapsed: elapsed}, nil
	}
	return Transition{}, nil
}

func (s *playScene) Draw(screen *ebiten.Image) {
	ui.DrawCenteredText(screen, fmt.Sprintf("%d x %d", s.size, s.size), s.theme.TitleFace, ScreenW/2, 48, s.theme.Accent)
	ui.DrawCenteredText(screen, s.watch.Formatted(), s.theme.LabelFace, ScreenW/4, 90, s.theme.Text)
	ui.DrawCenteredText(screen, fmt.Sprintf("moves %d", s.board.MoveCount()), s.theme.LabelFace, 3*ScreenW/4, 90, s.theme.Text)
	s.view.Draw(screen, s.board)
	hint := "R shuffles again, Esc returns to the menu"
	if s.board.Shuffling() {
		hint = "shuffling..."
	}
	ui.DrawCenteredText(screen, hint, s.theme.SmallFace, ScreenW/2, ScreenH-32, s.theme.Text)
}
