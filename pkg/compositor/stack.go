// Package compositor owns scene selection: the static layer stack table
// per classification, and the SceneSelector state machine that rebuilds
// element collections when the classification, intensity or canvas
// changes and renders the active stack bottom-to-top each frame.
package compositor

import "github.com/gonewx/skyscene/pkg/types"

// LayerRef names one layer config in a stack, with the stack-level
// opacity it composites at. Order in the slice is bottom-to-top.
type LayerRef struct {
	Name    string
	Opacity float64
}

type stackKey struct {
	class types.Classification
	day   bool
}

// stacks is the static compositing table. Mixed classifications overlay
// the celestial ambient layer at reduced opacity atop their cloud stack
// rather than defining a separate classification.
var stacks = map[stackKey][]LayerRef{
	{types.ClassificationClear, true}: {
		{Name: "haze-day", Opacity: 1},
		{Name: "celestial", Opacity: 1},
	},
	{types.ClassificationClear, false}: {
		{Name: "stars", Opacity: 1},
		{Name: "celestial", Opacity: 1},
	},
	{types.ClassificationPartlyCloudy, true}: {
		{Name: "cloud-far", Opacity: 1},
		{Name: "cloud-mid", Opacity: 0.9},
		{Name: "celestial", Opacity: 0.6},
	},
	{types.ClassificationPartlyCloudy, false}: {
		{Name: "stars", Opacity: 0.8},
		{Name: "cloud-far", Opacity: 1},
		{Name: "cloud-mid", Opacity: 0.9},
		{Name: "celestial", Opacity: 0.6},
	},
	{types.ClassificationOvercast, true}: {
		{Name: "cloud-far", Opacity: 1},
		{Name: "cloud-mid", Opacity: 1},
		{Name: "cloud-near", Opacity: 1},
	},
	{types.ClassificationOvercast, false}: {
		{Name: "cloud-far", Opacity: 1},
		{Name: "cloud-mid", Opacity: 1},
		{Name: "cloud-near", Opacity: 0.9},
	},
	{types.ClassificationRain, true}: {
		{Name: "cloud-mid", Opacity: 0.9},
		{Name: "rain-far", Opacity: 1},
		{Name: "rain-near", Opacity: 1},
	},
	{types.ClassificationRain, false}: {
		{Name: "cloud-mid", Opacity: 0.8},
		{Name: "rain-far", Opacity: 1},
		{Name: "rain-near", Opacity: 1},
	},
	{types.ClassificationSnow, true}: {
		{Name: "cloud-mid", Opacity: 0.8},
		{Name: "snow-far", Opacity: 1},
		{Name: "snow-near", Opacity: 1},
	},
	{types.ClassificationSnow, false}: {
		{Name: "cloud-mid", Opacity: 0.7},
		{Name: "snow-far", Opacity: 1},
		{Name: "snow-near", Opacity: 1},
	},
	{types.ClassificationThunderstorm, true}: {
		{Name: "cloud-storm", Opacity: 1},
		{Name: "rain-far", Opacity: 1},
		{Name: "rain-near", Opacity: 1},
		{Name: "lightning", Opacity: 1},
	},
	{types.ClassificationThunderstorm, false}: {
		{Name: "cloud-storm", Opacity: 1},
		{Name: "rain-far", Opacity: 1},
		{Name: "rain-near", Opacity: 1},
		{Name: "lightning", Opacity: 1},
	},
	{types.ClassificationFog, true}: {
		{Name: "fog-far", Opacity: 1},
		{Name: "fog-near", Opacity: 1},
	},
	{types.ClassificationFog, false}: {
		{Name: "fog-far", Opacity: 1},
		{Name: "fog-near", Opacity: 0.9},
	},
}

// StackFor returns the compositing order for a classification. An
// unmapped classification falls back to the clear/day stack so the
// display never goes blank on bad input.
func StackFor(c types.Classification, day bool) []LayerRef {
	if s, ok := stacks[stackKey{class: c, day: day}]; ok {
		return s
	}
	return stacks[stackKey{class: types.ClassificationClear, day: true}]
}
