package pendulum

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws an FPS/TPS and status line in the top-left corner.
	ShowFPS bool
	// PauseOnBlur pauses the animation while the window is not focused.
	PauseOnBlur bool
	// SpeedStep is added or removed by the + and - keys. Defaults to 0.25.
	SpeedStep float64
	// ExitOnScriptDone closes the window once an attached script finishes.
	ExitOnScriptDone bool
}

// Run opens a window and drives scene until the window is closed or Esc is
// pressed. Keys: Space pauses, R regenerates, C clears, S screenshots,
// + and - change speed.
func Run(scene *Scene, cfg RunConfig) error {
	if scene == nil {
		return errors.New("run: nil scene")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("run: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.SpeedStep <= 0 {
		cfg.SpeedStep = 0.25
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &gameShell{scene: scene, cfg: cfg}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run")
	}
	return nil
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene  *Scene
	cfg    RunConfig
	canvas *Canvas

	// blurPaused is set when the window lost focus while running, so that
	// regaining focus only resumes pauses we caused.
	blurPaused bool
}

func (g *gameShell) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.PauseOnBlur {
		g.handleFocus(ebiten.IsFocused())
	}
	if err := g.handleKeys(); err != nil {
		return err
	}

	g.scene.Update(1.0 / float64(ebiten.TPS()))

	if g.cfg.ExitOnScriptDone && g.scene.script != nil && g.scene.script.Done() &&
		g.scene.PendingScreenshots() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *gameShell) handleFocus(focused bool) {
	switch {
	case !focused && !g.scene.Paused():
		g.scene.Pause()
		g.blurPaused = true
	case focused && g.blurPaused:
		g.scene.Resume()
		g.blurPaused = false
	}
}

func (g *gameShell) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.blurPaused = false
		if g.scene.Paused() {
			g.scene.Resume()
		} else {
			g.scene.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.scene.Regenerate(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.scene.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.scene.Screenshot("manual")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		_ = g.scene.SetSpeed(g.scene.Speed() + g.cfg.SpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		_ = g.scene.SetSpeed(max(g.scene.Speed()-g.cfg.SpeedStep, 0))
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	g.scene.Draw(g.canvas)
	screen.DrawImage(g.canvas.Image(), nil)
	g.scene.FlushScreenshots(g.canvas.Image())

	if g.cfg.ShowFPS {
		status := "running"
		if g.scene.Paused() {
			status = "paused"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f\nspeed: %.2f  %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.scene.Speed(), status))
	}
}

// Layout keeps the canvas at the window's size. A resize discards the
// canvas contents, so the trails restart on a fresh surface.
func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if g.canvas == nil {
		g.canvas = NewCanvas(w, h)
		g.scene.Clear()
	} else if w != g.canvas.Width() || h != g.canvas.Height() {
		g.canvas.Resize(w, h)
		g.scene.Clear()
	}
	return w, h
}
