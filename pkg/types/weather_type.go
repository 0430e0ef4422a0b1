// Package types defines the shared base types of the scene core.
// It depends on no other package in this module, so every layer of the
// pipeline can exchange classifications without import cycles.
package types

import "fmt"

// Classification is the seven-way weather classification that drives
// scene selection. It is the only weather knowledge the animation core
// has; fetching and mapping raw observations to a Classification is an
// external concern.
type Classification int

const (
	// ClassificationUnknown is the zero value; no scene has been selected.
	ClassificationUnknown Classification = iota
	// ClassificationClear is a cloudless sky.
	ClassificationClear
	// ClassificationPartlyCloudy overlays the clear-sky ambient scene
	// with a reduced set of cloud layers.
	ClassificationPartlyCloudy
	// ClassificationOvercast is a fully clouded sky with no precipitation.
	ClassificationOvercast
	// ClassificationRain is liquid precipitation.
	ClassificationRain
	// ClassificationSnow is frozen precipitation.
	ClassificationSnow
	// ClassificationThunderstorm is heavy rain plus transient discharge.
	ClassificationThunderstorm
	// ClassificationFog is fog or mist.
	ClassificationFog
)

// String returns the lowercase name used in config tables and persistence.
func (c Classification) String() string {
	switch c {
	case ClassificationClear:
		return "clear"
	case ClassificationPartlyCloudy:
		return "partly-cloudy"
	case ClassificationOvercast:
		return "overcast"
	case ClassificationRain:
		return "rain"
	case ClassificationSnow:
		return "snow"
	case ClassificationThunderstorm:
		return "thunderstorm"
	case ClassificationFog:
		return "fog"
	default:
		return "unknown"
	}
}

// Valid reports whether c names one of the seven defined classifications.
func (c Classification) Valid() bool {
	return c > ClassificationUnknown && c <= ClassificationFog
}

// ParseClassification converts a stored name back to a Classification.
// Unknown names yield an error so callers can decide on a fallback.
func ParseClassification(s string) (Classification, error) {
	for c := ClassificationClear; c <= ClassificationFog; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return ClassificationUnknown, fmt.Errorf("unknown classification %q", s)
}

// Classifications returns all defined classifications in declaration order.
func Classifications() []Classification {
	out := make([]Classification, 0, 7)
	for c := ClassificationClear; c <= ClassificationFog; c++ {
		out = append(out, c)
	}
	return out
}

// Intensity is the tier that scales element counts, speeds and wind gain
// for a classification's layer stack.
type Intensity int

const (
	// IntensityLight is the faintest tier.
	IntensityLight Intensity = iota
	// IntensityModerate is the default tier.
	IntensityModerate
	// IntensityHeavy enables secondary effects (lightning, vortex, shimmer).
	IntensityHeavy
)

// String returns the lowercase name used in config tables and persistence.
func (i Intensity) String() string {
	switch i {
	case IntensityLight:
		return "light"
	case IntensityModerate:
		return "moderate"
	case IntensityHeavy:
		return "heavy"
	default:
		return "moderate"
	}
}

// ParseIntensity converts a stored name back to an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	switch s {
	case "light":
		return IntensityLight, nil
	case "moderate":
		return IntensityModerate, nil
	case "heavy":
		return IntensityHeavy, nil
	}
	return IntensityModerate, fmt.Errorf("unknown intensity %q", s)
}
