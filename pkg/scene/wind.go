package scene

import "math"

const twoPi = 2 * math.Pi

// harmonic is one sinusoid of the wind superposition.
type harmonic struct {
	amp   float64
	freq  float64
	phase float64
}

// WindField is the single shared wind process of a scene. Every layer
// samples the same field, which is what makes rain slant the direction
// clouds drift. The field is a sum of three low-frequency sinusoids, so
// it is smooth by construction; gusting is expressed by scaling the
// coefficients, never by swapping the function, which keeps the sample
// continuous across an intensity change.
type WindField struct {
	harmonics [3]harmonic
	gain      float64
	baseline  float64
}

// NewWindField builds the field with its phase baseline at the given
// scene start time. The harmonic table is fixed; gain is the intensity
// profile's wind multiplier.
func NewWindField(gain, baseline float64) *WindField {
	if gain <= 0 {
		gain = 1
	}
	return &WindField{
		harmonics: [3]harmonic{
			{amp: 6.0, freq: 0.11, phase: 0.0},
			{amp: 3.2, freq: 0.23, phase: 1.7},
			{amp: 1.4, freq: 0.47, phase: 4.1},
		},
		gain:     gain,
		baseline: baseline,
	}
}

// Sample returns the scalar wind offset at time t, in pixels.
func (w *WindField) Sample(t float64) float64 {
	tt := t - w.baseline
	var sum float64
	for _, h := range w.harmonics {
		sum += math.Sin(tt*h.freq*twoPi+h.phase) * h.amp
	}
	return sum * w.gain
}

// Vector decomposes the scalar sample into a 2D skew for layers that
// need a directional component. The vertical part is deliberately small:
// wind mostly pushes sideways.
func (w *WindField) Vector(t float64) (dx, dy float64) {
	s := w.Sample(t)
	return s, s * 0.18
}

// SetGain rescales the sinusoid coefficients for a new intensity tier.
func (w *WindField) SetGain(gain float64) {
	if gain <= 0 {
		gain = 1
	}
	w.gain = gain
}

// Gain returns the current coefficient multiplier.
func (w *WindField) Gain() float64 {
	return w.gain
}

// Rebase moves the phase baseline to t. Used when a scene restarts so
// the new element collections and the wind start from a common origin.
func (w *WindField) Rebase(t float64) {
	w.baseline = t
}
