package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/skyscene/pkg/compositor"
	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/game"
	"github.com/gonewx/skyscene/pkg/render"
	"github.com/gonewx/skyscene/pkg/types"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// Game drives the scene selector from the ebiten frame clock and maps
// keys to scene transitions:
//
//	1-7  select classification
//	D    toggle day/night
//	I    cycle intensity
//	A    toggle animation
type Game struct {
	selector  *compositor.SceneSelector
	warmStart *game.WarmStartManager

	class     types.Classification
	day       bool
	intensity types.Intensity

	ticks int
	w, h  int
}

// Update advances the logical clock and handles scene-switch keys.
func (g *Game) Update() error {
	g.ticks++

	keys := [...]ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
		ebiten.Key5, ebiten.Key6, ebiten.Key7,
	}
	for i, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			g.class = types.ClassificationClear + types.Classification(i)
			g.applyScene()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.day = !g.day
		g.applyScene()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.intensity = (g.intensity + 1) % 3
		g.applyScene()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.selector.SetAnimationEnabled(!g.selector.AnimationEnabled())
		g.warmStart.SetAnimationEnabled(g.selector.AnimationEnabled())
		g.persist()
	}
	return nil
}

func (g *Game) applyScene() {
	g.selector.SetScene(g.class, g.day, g.intensity, float64(g.w), float64(g.h))
	g.warmStart.SetScene(g.class, g.day, g.intensity)
	g.persist()
}

func (g *Game) persist() {
	if err := g.warmStart.Save(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
}

// Draw renders the sky background and replays the frame's draw list.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor(g.class, g.day))
	t := float64(g.ticks) / 60.0
	render.Draw(screen, g.selector.RenderFrame(t))
}

// Layout keeps the selector's canvas in sync with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.selector.Resize(float64(g.w), float64(g.h))
	}
	return g.w, g.h
}

// skyColor is the backdrop under the layer stack.
func skyColor(c types.Classification, day bool) color.RGBA {
	if !day {
		return color.RGBA{R: 0x10, G: 0x16, B: 0x24, A: 0xff}
	}
	switch c {
	case types.ClassificationOvercast, types.ClassificationFog:
		return color.RGBA{R: 0x8d, G: 0x99, B: 0xa8, A: 0xff}
	case types.ClassificationRain:
		return color.RGBA{R: 0x5d, G: 0x6b, B: 0x7e, A: 0xff}
	case types.ClassificationThunderstorm:
		return color.RGBA{R: 0x3a, G: 0x42, B: 0x52, A: 0xff}
	case types.ClassificationSnow:
		return color.RGBA{R: 0x9f, G: 0xad, B: 0xbf, A: 0xff}
	default:
		return color.RGBA{R: 0x6e, G: 0xa8, B: 0xd8, A: 0xff}
	}
}

func main() {
	gdataManager, err := gdata.Open(gdata.Config{AppName: "skyscene"})
	if err != nil {
		log.Printf("[Main] Warning: persistence unavailable: %v", err)
		gdataManager = nil
	}
	warmStart := game.NewWarmStartManager(gdataManager)

	selector := compositor.NewSceneSelector(config.MustLoad(), 1)
	class, day, intensity := warmStart.State().Scene()
	selector.SetAnimationEnabled(warmStart.State().AnimationEnabled)
	selector.SetScene(class, day, intensity, screenWidth, screenHeight)

	g := &Game{
		selector:  selector,
		warmStart: warmStart,
		class:     class,
		day:       day,
		intensity: intensity,
		w:         screenWidth,
		h:         screenHeight,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("skyscene")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
