//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wavebg/internal/render"
	"wavebg/internal/scene"
	"wavebg/internal/typewriter"
	"wavebg/internal/ui"
)

// Scene time advances by this much per tick, independent of the tick rate.
const timeStep = 0.01

// Game drives a wave scene through the ebiten.Game interface: one frame in
// flight, input applied between frames.
type Game struct {
	scene   *scene.Scene
	painter *render.Painter
	hud     *ui.HUD
	banner  *ui.Banner

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided scene. tw may be nil to run
// without the banner.
func New(s *scene.Scene, tw *typewriter.Writer, tps int) *Game {
	return &Game{
		scene:   s,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(s),
		banner:  ui.NewBanner(tw, tps),
	}
}

// Update handles input and advances the animation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.scene.ToggleMouse()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reseed(time.Now().UnixNano())
	}

	x, y := ebiten.CursorPosition()
	g.scene.SetPointer(float64(x), float64(y))

	g.hud.Update()
	g.banner.Update()

	if !g.paused || g.tickOnce {
		g.scene.Advance(timeStep)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the scene buffer and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.scene.Size()
	g.painter.Blit(screen, w, h, g.scene.Render())
	g.banner.Draw(screen)
	g.hud.Draw(screen)
}

// Layout resizes the scene to the window and renders at native resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return g.scene.Size()
}
