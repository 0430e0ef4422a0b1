package render

import "github.com/gonewx/skyscene/pkg/scene"

// CloudLayer renders drifting blob clusters. Each element is one cloud;
// its satellites are the blobs of the cluster, generated once and moved
// as a rigid group so the silhouette is stable while it drifts.
type CloudLayer struct {
	layerBase
}

// Render draws every visible cloud in three passes per blob plus a
// cluster-wide halo underneath.
func (l *CloudLayer) Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry) {
	for i := range l.elems {
		el := &l.elems[i]
		ds, ok := scene.EvaluateAt(el, t, wind, geom)
		if !ok {
			continue
		}
		op := ds.Opacity * l.opacity
		r := el.Size * 0.34 * ds.Scale

		// Cluster halo first so blob bodies sit on top of it.
		dst.FillCircle(ds.X, ds.Y, el.Size*0.85, el.Color, op*0.16)

		if len(el.Satellites) == 0 {
			glow(dst, ds.X, ds.Y, r, el.Color, op, el.Tier)
			continue
		}
		for _, sat := range el.Satellites {
			glow(dst, ds.X+sat.DX, ds.Y+sat.DY, r*sat.Scale+el.Size*0.12, el.Color, op, el.Tier)
		}
	}
}
