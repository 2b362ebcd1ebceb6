package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"starfield/internal/config"
	"starfield/internal/entity"
	"starfield/internal/overlay"
	"starfield/internal/render/canvas"
	"starfield/internal/scene"
)

// WheelStep is how many page pixels one wheel notch scrolls.
const WheelStep = 60.0

// Game hosts the scene and the page chrome in an ebiten window.
type Game struct {
	scene    *scene.Scene
	burst    *entity.Burst
	scroll   *overlay.ScrollTop
	counters []*overlay.Counter
	statsAt  float64

	ready     bool
	showStats bool
}

func NewGame(cfg *config.Config, rng *rand.Rand) *Game {
	g := &Game{
		scene:   scene.New(cfg.Scene(), rng),
		burst:   entity.NewBurst(rng, 3),
		scroll:  overlay.NewScrollTop(cfg.Page.Height),
		statsAt: cfg.Page.StatsAt,
	}
	for _, label := range cfg.Page.Stats {
		g.counters = append(g.counters, overlay.NewCounter(label))
	}
	return g
}

// Update: Logic (TPS)
func (g *Game) Update() error {
	if !g.ready {
		return nil
	}

	// 1. Input
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showStats = !g.showStats
	}
	g.handleScroll()

	// 2. Simulation
	g.scene.Advance()
	g.burst.Update()
	g.scroll.Update()
	for _, c := range g.counters {
		c.Update()
	}
	return nil
}

func (g *Game) handleScroll() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scroll.ScrollBy(-wy * WheelStep)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) || (ctrl && inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)) {
		g.scroll.ToTop()
	}

	mx, my := ebiten.CursorPosition()
	over := g.scroll.Visible() && g.scroll.Contains(float64(mx), float64(my))
	if g.scroll.Hover(over) {
		g.burst.Emit(g.scroll.Center())
	}
	if over && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.scroll.Click()
	}

	_, h := g.scene.Size()
	if g.scroll.Offset()+float64(h) >= g.statsAt {
		for _, c := range g.counters {
			c.Start()
		}
	}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.ready {
		return
	}
	surface := canvas.New(screen)

	// 1. Background, stars, comets
	g.scene.Render(surface)

	// 2. Page chrome
	g.drawScrollTop(screen)
	g.burst.Draw(surface)
	g.drawCounters(screen)

	if g.showStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  frame %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.scene.Frames()))
	}
}

// Layout: the canvas always matches the window, like a full-page canvas
// tracking the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	g.scroll.SetViewport(float64(outsideWidth), float64(outsideHeight))
	if !g.ready {
		g.scene.Initialize()
		g.ready = true
	}
	return outsideWidth, outsideHeight
}
