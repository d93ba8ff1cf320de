//go:build cgo

// Package viewer shows the playground in a desktop window.
//
// Left click or the right arrow key switches to the next space, the left
// arrow goes back, R regenerates the current space and the digit keys 1-9
// select a space directly.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/internal/playground"
)

// Run opens a window showing pg's first space and blocks until the window
// closes.
func Run(pg *playground.Playground) error {
	g := &game{pg: pg, size: pg.Config().Canvas.Size}
	scene, err := pg.Express()
	if err != nil {
		return err
	}
	if err := g.show(scene); err != nil {
		return err
	}

	ebiten.SetWindowSize(g.size, g.size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

type game struct {
	pg    *playground.Playground
	size  int
	scene *geonym.Scene
	img   *ebiten.Image
}

func (g *game) show(scene *geonym.Scene) error {
	rendered, err := g.pg.Image(scene)
	if err != nil {
		return err
	}
	if g.img != nil {
		g.img.Deallocate()
	}
	g.img = ebiten.NewImageFromImage(rendered)
	g.scene = scene
	ebiten.SetWindowTitle("geonym · " + scene.Space.Descriptor().Title)
	return nil
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func poll() (playground.Action, int) {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		return playground.Next, 0
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		return playground.Previous, 0
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return playground.Regenerate, 0
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return playground.Select, i
		}
	}
	return playground.None, 0
}

func (g *game) Update() error {
	a, index := poll()
	scene, err := g.pg.Navigate(a, index, g.scene)
	if err != nil || scene == nil {
		return err
	}
	return g.show(scene)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
