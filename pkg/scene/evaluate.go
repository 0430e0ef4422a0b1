package scene

import (
	"math"

	"github.com/gonewx/skyscene/pkg/config"
)

// CycleLength is the loop period of an element traveling across one
// canvas extent. The travel band is the extent plus one element size of
// margin on each side, so the element re-enters its start region exactly
// at the cycle boundary.
func CycleLength(extent, size, speed float64) float64 {
	if speed <= 0 {
		return math.Inf(1)
	}
	return (extent + 2*size) / speed
}

// EvaluateAt computes the draw state of an element at time t. It is a
// pure function of (element, t, wind): no element field is ever written,
// which is what makes restart, scrubbing and deterministic replay free.
//
// The second return value reports visibility. Elements are invisible
// before their start time and when the evaluated position falls outside
// the canvas extent plus one element size of margin; renderers skip
// invisible elements without any bookkeeping.
func EvaluateAt(el *Element, t float64, wind *WindField, geom Geometry) (DrawState, bool) {
	if geom.Zero() || t < el.StartTime {
		return DrawState{}, false
	}
	age := t - el.StartTime

	var ws float64
	if wind != nil {
		ws = wind.Sample(t)
	}

	x, y := el.BaseX, el.BaseY
	switch {
	case el.Axis == config.AxisVertical && el.Speed > 0:
		span := geom.H + 2*el.Size
		cycle := span / el.Speed
		progress := math.Mod(age, cycle)
		y = wrap(el.BaseY+el.Speed*progress, el.Size, span)
		x = el.BaseX + ws*el.Slant + wobble(el, age)
	case el.Axis == config.AxisHorizontal && el.Speed > 0:
		span := geom.W + 2*el.Size
		cycle := span / el.Speed
		progress := math.Mod(age, cycle)
		x = wrap(el.BaseX+el.Speed*progress, el.Size, span)
		y = el.BaseY + wobble(el, age)*0.4
		x += ws * 0.2
	default:
		// Stationary elements still shimmer in place.
		x = el.BaseX + wobble(el, age)*0.3
		y = el.BaseY + math.Cos(age*el.Frequency*twoPi+el.Phase)*el.Wobble*0.15
	}

	// Per-element wind coupling on top of the layer slant. Two elements
	// with identical base speed still diverge because each carries its
	// own influence coefficient.
	x += ws * el.WindInfluence * 0.1

	margin := el.Size
	if x < -margin || x > geom.W+margin || y < -margin || y > geom.H+margin {
		return DrawState{}, false
	}

	osc := math.Sin(age*el.Frequency*twoPi + el.Phase)
	state := DrawState{
		X:        x,
		Y:        y,
		Rotation: el.Phase + age*el.SpinRate,
		Scale:    1 + 0.08*math.Sin(age*el.Frequency*math.Pi+el.Phase),
		Opacity:  el.OpacityMin + (el.OpacityMax-el.OpacityMin)*(0.5+0.5*osc),
	}
	return state, true
}

// wrap maps a traveled coordinate into [-margin, span-margin), the band
// covering the canvas extent plus margins.
func wrap(v, margin, span float64) float64 {
	m := math.Mod(v+margin, span)
	if m < 0 {
		m += span
	}
	return m - margin
}

func wobble(el *Element, age float64) float64 {
	if el.Wobble == 0 {
		return 0
	}
	return math.Sin(age*el.Frequency*twoPi+el.Phase) * el.Wobble
}
