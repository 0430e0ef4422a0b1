package render

import (
	"image/color"
	"math"

	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/scene"
)

// CelestialLayer renders the sun or moon ambient body. It has no element
// collection; the body is a single fixture whose glow breathes on the
// shared clock. Mixed classifications composite this layer at reduced
// opacity atop their cloud stack.
type CelestialLayer struct {
	layerBase
	day bool
}

// Render draws the sun (day) or the moon (night).
func (l *CelestialLayer) Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry) {
	if geom.Zero() {
		return
	}
	cx, cy := geom.W*0.78, geom.H*0.22
	r := math.Min(geom.W, geom.H) * 0.075
	breath := 1 + 0.05*math.Sin(t*0.12*2*math.Pi)

	clr := l.bodyColor()
	op := l.cfg.Opacity.Max * l.opacity

	if l.day {
		l.renderSun(dst, t, cx, cy, r*breath, clr, op)
		return
	}
	l.renderMoon(dst, cx, cy, r*breath, clr, op)
}

func (l *CelestialLayer) bodyColor() color.RGBA {
	idx := 0
	if !l.day {
		idx = 1
	}
	if idx < len(l.cfg.Palette) {
		if c, err := config.ParseColor(l.cfg.Palette[idx]); err == nil {
			return c
		}
	}
	return color.RGBA{R: 0xff, G: 0xd7, B: 0x5e, A: 0xff}
}

func (l *CelestialLayer) renderSun(dst *DrawList, t, cx, cy, r float64, clr color.RGBA, op float64) {
	dst.FillCircle(cx, cy, r*2.6, clr, op*0.12)
	dst.FillCircle(cx, cy, r*1.6, clr, op*0.28)
	dst.FillCircle(cx, cy, r, clr, op)
	dst.FillCircle(cx-r*0.25, cy-r*0.25, r*0.4, lighten(clr, 0.5), op*0.9)

	// Slowly rotating ray fan.
	for k := 0; k < 8; k++ {
		a := t*0.08*2*math.Pi/8 + float64(k)*math.Pi/4
		in, out := r*1.45, r*1.95
		dst.Line(cx+math.Cos(a)*in, cy+math.Sin(a)*in, cx+math.Cos(a)*out, cy+math.Sin(a)*out, 2, clr, op*0.55)
	}
}

func (l *CelestialLayer) renderMoon(dst *DrawList, cx, cy, r float64, clr color.RGBA, op float64) {
	dst.FillCircle(cx, cy, r*2.0, clr, op*0.1)
	dst.FillCircle(cx, cy, r, clr, op)
	// Offset shadow disc carves the crescent.
	shadow := color.RGBA{R: 0x10, G: 0x16, B: 0x24, A: 0xff}
	dst.FillCircle(cx+r*0.38, cy-r*0.2, r*0.86, shadow, op*0.92)
}
