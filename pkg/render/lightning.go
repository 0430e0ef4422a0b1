package render

import (
	"image/color"
	"math"

	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/scene"
)

// LightningLayer renders the transient discharge effect. Strikes come
// from a seeded, precomputed schedule; within a strike's window the bolt
// path derives from the strike's own seed, so redrawing any frame of the
// flash yields the same bolt. No randomness happens at draw time.
type LightningLayer struct {
	layerBase
	schedule *scene.StrikeSchedule

	// Branch anchors recorded while tracing the main bolt, emitted
	// afterwards so each polyline's vertex run stays contiguous.
	branches [8]branchAnchor
	nBranch  int
}

type branchAnchor struct {
	x, y float64
}

// Render draws the full-screen flash and the jittered bolt while a
// strike window is open.
func (l *LightningLayer) Render(dst *DrawList, t float64, wind *scene.WindField, geom scene.Geometry) {
	strike, progress, ok := l.schedule.Active(t)
	if !ok || geom.Zero() {
		return
	}

	env := scene.FlashEnvelope(progress)
	flashClr := color.RGBA{R: 0xf6, G: 0xf4, B: 0xff, A: 0xff}
	dst.Flash(flashClr, env*0.22*l.opacity)

	boltClr := l.boltColor()
	boltOp := math.Min(1, env*1.5) * l.cfg.Opacity.Max * l.opacity

	rng := boltRand(strike.Seed)
	l.renderBolt(dst, &rng, geom, boltClr, boltOp)
}

func (l *LightningLayer) boltColor() color.RGBA {
	if len(l.cfg.Palette) > 0 {
		if c, err := config.ParseColor(l.cfg.Palette[0]); err == nil {
			return c
		}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// renderBolt traces a jittered polyline from the cloud band to the
// ground band, drawn twice: a wide faint halo pass under a narrow core
// pass, then short probabilistic branches off recorded anchors.
func (l *LightningLayer) renderBolt(dst *DrawList, rng *boltRand, geom scene.Geometry, clr color.RGBA, op float64) {
	startX := geom.W * (0.3 + rng.Float64()*0.4)
	endY := geom.H * (0.68 + rng.Float64()*0.2)

	const segments = 14
	segH := endY / segments

	l.nBranch = 0
	mark := dst.MarkPoints()
	x, y := startX, 0.0
	dst.AddPoint(x, y)
	for i := 1; i <= segments; i++ {
		// Sine envelope keeps the endpoints anchored and lets the
		// middle of the bolt wander the most.
		envelope := math.Sin(float64(i) / segments * math.Pi)
		if envelope < 0.15 {
			envelope = 0.15
		}
		x += (rng.Float64() - 0.5) * geom.W * 0.07 * envelope
		y += segH
		dst.AddPoint(x, y)

		if rng.Float64() < 0.22 && l.nBranch < len(l.branches) {
			l.branches[l.nBranch] = branchAnchor{x: x, y: y}
			l.nBranch++
		}
	}

	haloEnd := len(dst.pts)
	dst.Polyline(mark, 5.5, lighten(clr, 0.2), op*0.25)

	// Core pass re-emits the same vertices as a fresh run.
	core := dst.MarkPoints()
	for _, p := range dst.pts[mark:haloEnd] {
		dst.AddPoint(p.X, p.Y)
	}
	dst.Polyline(core, 2.2, clr, op)

	for i := 0; i < l.nBranch; i++ {
		l.renderBranch(dst, rng, l.branches[i], segH, clr, op)
	}
}

func (l *LightningLayer) renderBranch(dst *DrawList, rng *boltRand, a branchAnchor, segH float64, clr color.RGBA, op float64) {
	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}
	mark := dst.MarkPoints()
	bx, by := a.x, a.y
	dst.AddPoint(bx, by)
	for j := 0; j < 3; j++ {
		bx += dir * (8 + rng.Float64()*18)
		by += segH * (0.4 + rng.Float64()*0.5)
		dst.AddPoint(bx, by)
	}
	dst.Polyline(mark, 1.3, clr, op*0.55)
}

// boltRand is a tiny xorshift generator used for bolt jitter. A strike
// seeds one on the stack each frame, keeping bolt drawing deterministic
// without the allocation of a full rand.Rand.
type boltRand uint64

// Float64 returns the next value in [0,1).
func (r *boltRand) Float64() float64 {
	x := uint64(*r)
	if x == 0 {
		x = 0x9E3779B97F4A7C15
	}
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*r = boltRand(x)
	return float64(x>>11) / (1 << 53)
}
