// Package game provides the ebiten loop that runs the current Scene.
package game

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/motion2d/internal/application/scene"
	"github.com/younwookim/motion2d/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	exit    sync.Once
}

// New creates a Game sized and clocked from display. The initial scene's
// OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	g := &Game{
		current: initialScene,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      display.FrameDT(),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Closing the window ends the loop with ebiten.Termination.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the fixed step passed to scenes.
func (g *Game) DT() float64 {
	return g.dt
}

// Shutdown exits the current scene. It is safe to call more than once.
func (g *Game) Shutdown() {
	g.exit.Do(g.current.OnExit)
}
