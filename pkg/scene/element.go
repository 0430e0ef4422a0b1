// Package scene implements the animation core: immutable animated
// elements, the seeded element generator, the shared wind field and the
// pure time-evaluation functions. Nothing in this package mutates state
// per frame; a frame is a closed-form function of the caller's clock.
package scene

import (
	"image/color"

	"github.com/gonewx/skyscene/pkg/config"
)

// Variant is the enumerated sub-shape of an element, fixed at generation.
type Variant uint8

const (
	// VariantDot is a plain filled circle.
	VariantDot Variant = iota
	// VariantCrystal is a six-spoke snow crystal.
	VariantCrystal
	// VariantStar is a five-spoke star.
	VariantStar
	// VariantHexagon is a hexagon outline.
	VariantHexagon
	// VariantDendrite is a six-spoke crystal with side branches.
	VariantDendrite
)

// ParseVariant maps a config catalog name to a Variant. Unknown names
// degrade to the dot shape so a table typo never breaks a scene.
func ParseVariant(name string) Variant {
	switch name {
	case "crystal":
		return VariantCrystal
	case "star":
		return VariantStar
	case "hexagon":
		return VariantHexagon
	case "dendrite":
		return VariantDendrite
	default:
		return VariantDot
	}
}

// Satellite is a fixed sub-offset attached to an element: a blob within
// a cloud cluster, a droplet of a splash burst, a node of a fog tendril.
type Satellite struct {
	DX, DY float64
	Scale  float64
}

// Element is one animated unit within a layer. All fields are set at
// generation time and never change afterwards; the draw state at time t
// is EvaluateAt(element, t, wind, geometry).
type Element struct {
	ID int

	BaseX, BaseY float64
	Size         float64
	Speed        float64

	OpacityMin float64
	OpacityMax float64
	Color      color.RGBA

	// Phase and Frequency desynchronize periodic motion between
	// siblings; every wobble, shimmer and breathing effect derives
	// from these two values.
	Phase     float64
	Frequency float64

	// StartTime staggers element entry; an element is invisible for
	// t < StartTime.
	StartTime float64

	WindInfluence float64
	SpinRate      float64
	Wobble        float64

	Variant Variant
	Tier    config.DepthTier

	// Motion rule, copied from the layer config so evaluation needs
	// only the element itself.
	Axis  config.MotionAxis
	Slant float64

	Satellites []Satellite
}

// DrawState is the instantaneous transform of an element at some time.
type DrawState struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	Opacity  float64
}

// Geometry is the canvas extent evaluation wraps positions against.
type Geometry struct {
	W, H float64
}

// Zero reports whether the canvas has no drawable area.
func (g Geometry) Zero() bool {
	return g.W <= 0 || g.H <= 0
}
