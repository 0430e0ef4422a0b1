package render

import "github.com/gonewx/skyscene/pkg/scene"

// HazeLayer renders ambient particulate: drifting motes by day, the
// star field by night (a stationary config of the same family). Opacity
// breathing comes from the evaluation function; shimmer adds a bright
// core pass under heavy-intensity profiles (diamond dust).
type HazeLayer struct {
	layerBase
	shimmer bool
}

// Render draws one soft dot per visible element.
func (l *HazeLayer) Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry) {
	for i := range l.elems {
		el := &l.elems[i]
		ds, ok := scene.EvaluateAt(el, t, wind, geom)
		if !ok {
			continue
		}
		op := ds.Opacity * l.opacity
		r := el.Size * ds.Scale
		dst.FillCircle(ds.X, ds.Y, r*1.8, el.Color, op*0.3)
		dst.FillCircle(ds.X, ds.Y, r, el.Color, op)
		if l.shimmer {
			dst.FillCircle(ds.X, ds.Y, r*0.45, lighten(el.Color, 0.6), op)
		}
	}
}
