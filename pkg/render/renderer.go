package render

import (
	"image/color"

	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/scene"
)

// Layer emits the draw commands of one visual layer for one frame.
// Implementations hold their element collection and any layer-owned
// scratch state; Render must not retain dst past the call and must not
// allocate in the steady state.
type Layer interface {
	Name() string
	Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry)
}

// NewLayer builds the renderer for a layer config. Depth tiers are a
// parameterization, not a fork: the same renderer serves far, mid and
// near configs of a family.
func NewLayer(name string, cfg config.LayerConfig, elems []scene.Element, opacity float64, day bool, seed int64, profile config.IntensityProfile) Layer {
	base := layerBase{name: name, cfg: cfg, elems: elems, opacity: opacity}
	switch cfg.Family {
	case config.FamilyCloud:
		return &CloudLayer{layerBase: base}
	case config.FamilyRain:
		return &RainLayer{layerBase: base}
	case config.FamilySnow:
		return &SnowLayer{layerBase: base, vortex: cfg.Vortex && profile.Vortex}
	case config.FamilyFog:
		return &FogLayer{layerBase: base}
	case config.FamilyHaze:
		return &HazeLayer{layerBase: base, shimmer: profile.Shimmer}
	case config.FamilyLightning:
		return &LightningLayer{
			layerBase: base,
			schedule:  scene.NewStrikeSchedule(seed, cfg.StrikeInterval, cfg.StrikeDuration),
		}
	case config.FamilyCelestial:
		return &CelestialLayer{layerBase: base, day: day}
	default:
		return &HazeLayer{layerBase: base}
	}
}

// layerBase carries what every renderer needs: its config, its element
// collection and the stack-level opacity multiplier.
type layerBase struct {
	name    string
	cfg     config.LayerConfig
	elems   []scene.Element
	opacity float64
}

func (b *layerBase) Name() string {
	return b.name
}

// glow emits the standard multi-pass treatment: a wide faint halo, the
// body, and a small bright highlight. Near-tier elements get an extra
// edge stroke.
func glow(dst *DrawList, x, y, r float64, clr color.RGBA, opacity float64, tier config.DepthTier) {
	dst.FillCircle(x, y, r*2.1, clr, opacity*0.22)
	dst.FillCircle(x, y, r, clr, opacity)
	dst.FillCircle(x-r*0.2, y-r*0.24, r*0.38, lighten(clr, 0.45), opacity*0.8)
	if tier == config.TierNear {
		dst.StrokeCircle(x, y, r, 1, lighten(clr, 0.3), opacity*0.5)
	}
}

// lighten mixes a color toward white by k in [0,1].
func lighten(c color.RGBA, k float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*k)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
