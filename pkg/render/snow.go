package render

import (
	"image/color"
	"math"

	"github.com/gonewx/skyscene/pkg/scene"
)

// SnowLayer renders frozen precipitation. Each element draws one of the
// catalog shapes as a small vector path rotated by its own spin; heavy
// intensity adds a decorative vortex overlay independent of any element.
type SnowLayer struct {
	layerBase
	vortex bool
}

// Render draws every visible flake and, when enabled, the vortex arms.
func (l *SnowLayer) Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry) {
	for i := range l.elems {
		el := &l.elems[i]
		ds, ok := scene.EvaluateAt(el, t, wind, geom)
		if !ok {
			continue
		}
		op := ds.Opacity * l.opacity
		r := el.Size * 0.5 * ds.Scale

		switch el.Variant {
		case scene.VariantCrystal:
			l.spokes(dst, ds.X, ds.Y, r, ds.Rotation, 6, el, op)
		case scene.VariantStar:
			l.spokes(dst, ds.X, ds.Y, r, ds.Rotation, 5, el, op)
		case scene.VariantHexagon:
			l.hexagon(dst, ds.X, ds.Y, r, ds.Rotation, el, op)
		case scene.VariantDendrite:
			l.dendrite(dst, ds.X, ds.Y, r, ds.Rotation, el, op)
		default:
			dst.FillCircle(ds.X, ds.Y, r, el.Color, op)
		}
	}

	if l.vortex {
		l.renderVortex(dst, t, geom)
	}
}

func (l *SnowLayer) spokes(dst *DrawList, x, y, r, rot float64, n int, el *scene.Element, op float64) {
	for k := 0; k < n; k++ {
		a := rot + float64(k)*2*math.Pi/float64(n)
		dx, dy := math.Cos(a)*r, math.Sin(a)*r
		dst.Line(x-dx, y-dy, x+dx, y+dy, 1, el.Color, op)
	}
	dst.FillCircle(x, y, r*0.22, el.Color, op)
}

func (l *SnowLayer) hexagon(dst *DrawList, x, y, r, rot float64, el *scene.Element, op float64) {
	mark := dst.MarkPoints()
	for k := 0; k <= 6; k++ {
		a := rot + float64(k)*math.Pi/3
		dst.AddPoint(x+math.Cos(a)*r, y+math.Sin(a)*r)
	}
	dst.Polyline(mark, 1, el.Color, op)
}

func (l *SnowLayer) dendrite(dst *DrawList, x, y, r, rot float64, el *scene.Element, op float64) {
	for k := 0; k < 6; k++ {
		a := rot + float64(k)*math.Pi/3
		tipX, tipY := x+math.Cos(a)*r, y+math.Sin(a)*r
		dst.Line(x, y, tipX, tipY, 1, el.Color, op)

		// Side branches at 60% of the spoke, angled off both sides.
		bx, by := x+math.Cos(a)*r*0.6, y+math.Sin(a)*r*0.6
		for _, da := range [2]float64{0.6, -0.6} {
			dst.Line(bx, by, bx+math.Cos(a+da)*r*0.3, by+math.Sin(a+da)*r*0.3, 1, el.Color, op*0.85)
		}
	}
}

// renderVortex draws logarithmic-spiral arms rotating around a fixed
// canvas-relative center. Purely decorative: no element state involved.
func (l *SnowLayer) renderVortex(dst *DrawList, t float64, geom scene.Geometry) {
	cx, cy := geom.W*0.55, geom.H*0.38
	maxR := math.Min(geom.W, geom.H) * 0.32
	clr := color.RGBA{R: 0xf4, G: 0xf9, B: 0xff, A: 0xff}
	if len(l.elems) > 0 {
		clr = lighten(l.elems[0].Color, 0.2)
	}

	const arms = 3
	for arm := 0; arm < arms; arm++ {
		base := t*0.55 + float64(arm)*2*math.Pi/arms
		mark := dst.MarkPoints()
		for theta := 0.0; theta < 4*math.Pi; theta += 0.25 {
			r := 2.2 * math.Exp(0.19*theta)
			if r > maxR {
				break
			}
			dst.AddPoint(cx+math.Cos(theta+base)*r, cy+math.Sin(theta+base)*r)
		}
		dst.Polyline(mark, 1.4, clr, 0.22*l.opacity)
	}
}
