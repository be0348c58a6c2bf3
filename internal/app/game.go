//go:build ebiten

package app

import (
	"fmt"
	"time"

	"numslide/internal/render"
	"numslide/internal/sound"
	"numslide/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Logical screen size; the window scales it by Config.Scale.
const (
	ScreenW = 480
	ScreenH = 640
)

// Scene is one screen of the game. Update returns a typed transition
// request (zero value to stay) so scene switching needs no event names.
type Scene interface {
	Update(g *Game) (Transition, error)
	Draw(screen *ebiten.Image)
}

// Game owns the active scene and the services shared across scenes, and
// adapts them to the ebiten.Game interface.
type Game struct {
	cfg        *Config
	theme      *ui.Theme
	sounds     *sound.Bank
	background *render.Gradient
	scene      Scene
}

// New constructs the Game and its shared services. The starting scene is
// the menu, or a board directly when cfg.Size is set.
func New(cfg *Config) (*Game, error) {
	theme, err := ui.NewTheme()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:        cfg,
		theme:      theme,
		sounds:     sound.NewBank(cfg.Mute),
		background: render.NewGradient(ScreenW, ScreenH, theme.Background, theme.BackgroundLo),
	}
	if cfg.Size != 0 {
		if err := g.apply(Transition{To: ScenePlay, Size: cfg.Size}); err != nil {
			return nil, err
		}
	} else {
		g.scene = newMenuScene(g)
	}
	return g, nil
}

// apply installs the scene a transition requests.
func (g *Game) apply(tr Transition) error {
	switch tr.To {
	case SceneMenu:
		g.scene = newMenuScene(g)
	case ScenePlay:
		play, err := newPlayScene(g, tr.Size)
		if err != nil {
			return err
		}
		g.scene = play
	case SceneWon:
		g.scene = newWonScene(g, tr)
	default:
		return fmt.Errorf("app: unknown scene %d", tr.To)
	}
	return nil
}

// Update advances the active scene and applies its transition, if any.
func (g *Game) Update() error {
	tr, err := g.scene.Update(g)
	if err != nil {
		return err
	}
	if tr.To != SceneNone {
		return g.apply(tr)
	}
	return nil
}

// Draw renders the shared background and the active scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.background.Draw(screen)
	g.scene.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}

// tick returns the wall-clock span of one Update call at the configured
// tick rate; it is the dt fed to the board's cooperative Step.
func tick() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
