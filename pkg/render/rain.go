package render

import (
	"math"

	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/scene"
)

// Ripple and splash cycles are transient secondary effects, not tied to
// any particular falling streak. Each participating element carries its
// own (start, duration, interval) repeating window derived from its
// generation-time phase, so the effects stay pure functions of time.
const (
	rippleDuration = 0.7
	splashDuration = 0.45
	splashGravity  = 2.6
)

// RainLayer renders slanted falling streaks plus, for the near tier,
// ground ripples and parabolic splash bursts.
type RainLayer struct {
	layerBase
}

// Render draws the streak pass, then the secondary effect passes.
func (l *RainLayer) Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry) {
	var ws float64
	if wind != nil {
		ws = wind.Sample(t)
	}

	width := 1.0
	if l.cfg.DepthTier() == config.TierNear {
		width = 1.6
	}

	for i := range l.elems {
		el := &l.elems[i]
		ds, ok := scene.EvaluateAt(el, t, wind, geom)
		if ok {
			tilt := el.Slant + ws*0.004
			op := ds.Opacity * l.opacity
			dst.Line(ds.X, ds.Y, ds.X+tilt*el.Size, ds.Y+el.Size, width, el.Color, op)
		}

		if l.cfg.Ripples && el.ID%3 == 0 {
			l.renderRipple(dst, el, t, geom)
		}
		if l.cfg.Splashes && el.ID%5 == 0 {
			l.renderSplash(dst, el, t, geom)
		}
	}
}

// effectWindow returns the normalized progress of an element's repeating
// secondary-effect window, or false while the window is closed.
func effectWindow(el *scene.Element, t, duration float64) (float64, bool) {
	if t < el.StartTime {
		return 0, false
	}
	interval := duration + 0.9 + (el.Phase/(2*math.Pi))*1.8
	offset := math.Mod(t-el.StartTime, interval)
	if offset >= duration {
		return 0, false
	}
	return offset / duration, true
}

// groundPoint is the fixed impact location of an element's secondary
// effects, spread across the lower band of the canvas.
func groundPoint(el *scene.Element, geom scene.Geometry) (float64, float64) {
	frac := math.Mod(el.BaseX/math.Max(geom.W, 1), 1)
	if frac < 0 {
		frac += 1
	}
	x := frac * geom.W
	y := geom.H - 2 - math.Mod(el.BaseY, 14)
	return x, y
}

func (l *RainLayer) renderRipple(dst *DrawList, el *scene.Element, t float64, geom scene.Geometry) {
	prog, open := effectWindow(el, t, rippleDuration)
	if !open {
		return
	}
	gx, gy := groundPoint(el, geom)
	radius := el.Size * (0.3 + prog*1.4)
	op := (1 - prog) * el.OpacityMax * l.opacity * 0.6
	dst.StrokeCircle(gx, gy, radius, 1, el.Color, op)
}

func (l *RainLayer) renderSplash(dst *DrawList, el *scene.Element, t float64, geom scene.Geometry) {
	if len(el.Satellites) == 0 {
		return
	}
	prog, open := effectWindow(el, t, splashDuration)
	if !open {
		return
	}
	gx, gy := groundPoint(el, geom)
	op := (1 - prog) * el.OpacityMax * l.opacity * 0.8
	for _, sat := range el.Satellites {
		px := gx + sat.DX*el.Size*prog*1.3
		py := gy + (sat.DY*prog+splashGravity*prog*prog)*el.Size*0.6
		if py > gy {
			continue
		}
		dst.FillCircle(px, py, el.Size*0.09*(0.5+sat.Scale), el.Color, op)
	}
}
