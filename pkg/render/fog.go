package render

import (
	"math"

	"github.com/gonewx/skyscene/pkg/scene"
)

// FogLayer renders drifting tendril bands. Each element is one tendril;
// its satellites are the nodes of the band, and each node bobs on its
// own phase offset so the band curls instead of sliding rigidly.
type FogLayer struct {
	layerBase
}

// Render draws each tendril as a run of overlapping soft circles.
func (l *FogLayer) Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry) {
	step := l.cfg.Curvature.Mid()
	if step == 0 {
		step = 0.5
	}

	for i := range l.elems {
		el := &l.elems[i]
		ds, ok := scene.EvaluateAt(el, t, wind, geom)
		if !ok {
			continue
		}
		op := ds.Opacity * l.opacity
		age := t - el.StartTime

		if len(el.Satellites) == 0 {
			dst.FillCircle(ds.X, ds.Y, el.Size*0.5, el.Color, op)
			continue
		}
		for j, sat := range el.Satellites {
			curl := math.Sin(age*el.Frequency*2*math.Pi+el.Phase+float64(j)*step) * el.Wobble * 0.5
			dst.FillCircle(ds.X+sat.DX, ds.Y+sat.DY+curl, el.Size*0.45*sat.Scale, el.Color, op)
		}
	}
}
