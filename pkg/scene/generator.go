package scene

import (
	"image/color"
	"math/rand"

	"github.com/gonewx/skyscene/pkg/config"
)

// Generate produces the element collection for one layer. It is a
// generic sampler: count, ranges and the variant catalog come entirely
// from the layer config, and the output is deterministic for a fixed
// seed. A zero-area canvas yields an empty collection, which renderers
// treat as "nothing to draw".
//
// Base positions cover the canvas plus a margin of one maximum element
// size on every side, so wraparound motion never pops at a boundary.
func Generate(geom Geometry, cfg config.LayerConfig, seed int64) []Element {
	if geom.Zero() || cfg.Count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	margin := cfg.Size.Max

	colors := paletteColors(cfg)
	elements := make([]Element, cfg.Count)
	for i := range elements {
		el := &elements[i]
		el.ID = i
		el.BaseX = sample(rng, config.Range{Min: -margin, Max: geom.W + margin})
		el.BaseY = sample(rng, config.Range{Min: -margin, Max: geom.H + margin})
		el.Size = sample(rng, cfg.Size)
		el.Speed = sample(rng, cfg.Speed)
		el.OpacityMin = cfg.Opacity.Min
		el.OpacityMax = sample(rng, config.Range{Min: cfg.Opacity.Mid(), Max: cfg.Opacity.Max})
		el.Color = colors[rng.Intn(len(colors))]
		el.Phase = sample(rng, config.Range{Min: 0, Max: twoPi})
		el.Frequency = sample(rng, cfg.Frequency)
		el.StartTime = sample(rng, cfg.Stagger)
		el.WindInfluence = sample(rng, cfg.WindInfluence)
		el.SpinRate = sample(rng, cfg.Spin)
		el.Wobble = sample(rng, cfg.Wobble)
		el.Variant = pickVariant(rng, cfg.Variants)
		el.Tier = cfg.DepthTier()
		el.Axis = cfg.Axis
		el.Slant = cfg.Slant
		el.Satellites = generateSatellites(rng, cfg, el.Size)
	}
	return elements
}

func sample(rng *rand.Rand, r config.Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func pickVariant(rng *rand.Rand, catalog []string) Variant {
	if len(catalog) == 0 {
		return VariantDot
	}
	return ParseVariant(catalog[rng.Intn(len(catalog))])
}

func paletteColors(cfg config.LayerConfig) []color.RGBA {
	if len(cfg.Palette) == 0 {
		return []color.RGBA{{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	}
	out := make([]color.RGBA, len(cfg.Palette))
	for i, p := range cfg.Palette {
		out[i] = config.MustColor(p)
	}
	return out
}

// generateSatellites builds the fixed sub-offsets of an element. Cloud
// blobs cluster tightly around the center; fog tendril nodes spread
// horizontally; splash droplets get outward launch offsets. The family
// distinction is carried by the axis/structure flags of the config, not
// by weather knowledge.
func generateSatellites(rng *rand.Rand, cfg config.LayerConfig, size float64) []Satellite {
	if cfg.Blobs.IsZero() {
		return nil
	}
	n := int(sample(rng, cfg.Blobs) + 0.5)
	if n <= 0 {
		return nil
	}
	sats := make([]Satellite, n)
	horizontal := cfg.Axis == config.AxisHorizontal
	for i := range sats {
		if horizontal {
			// Spread along the drift axis for clouds and fog bands.
			sats[i] = Satellite{
				DX:    (float64(i)/float64(n) - 0.5) * size * 1.6 * (0.8 + rng.Float64()*0.4),
				DY:    (rng.Float64() - 0.5) * size * 0.35,
				Scale: 0.45 + rng.Float64()*0.45,
			}
			continue
		}
		// Launch offsets for splash droplets and similar bursts.
		sats[i] = Satellite{
			DX:    (rng.Float64() - 0.5) * 2.4,
			DY:    -(0.8 + rng.Float64()*1.4),
			Scale: 0.2 + rng.Float64()*0.35,
		}
	}
	return sats
}
