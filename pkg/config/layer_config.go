// Package config holds the parameter tables that map a weather
// classification and intensity tier to concrete layer generation rules.
// Tables are loaded from an embedded YAML document; the animation core
// itself has no weather-specific constants.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gonewx/skyscene/pkg/types"
)

// LayerFamily names one visual effect family. Each family has its own
// renderer; depth tiers within a family are a parameterization of the
// same renderer, not separate code paths.
type LayerFamily string

const (
	FamilyCloud     LayerFamily = "cloud"
	FamilyRain      LayerFamily = "rain"
	FamilySnow      LayerFamily = "snow"
	FamilyFog       LayerFamily = "fog"
	FamilyHaze      LayerFamily = "haze"
	FamilyLightning LayerFamily = "lightning"
	FamilyCelestial LayerFamily = "celestial"
)

// DepthTier selects far/mid/near parameter sets for a family.
type DepthTier int

const (
	TierFar DepthTier = iota
	TierMid
	TierNear
)

// MotionAxis is the primary travel direction of a layer's elements.
type MotionAxis string

const (
	// AxisVertical moves elements top to bottom (precipitation).
	AxisVertical MotionAxis = "vertical"
	// AxisHorizontal moves elements left to right (cloud drift, fog).
	AxisHorizontal MotionAxis = "horizontal"
	// AxisNone keeps elements at their base position (haze, stars).
	AxisNone MotionAxis = "none"
)

// LayerConfig declares the generation rules for one layer. One config
// exists per (family × depth tier) entry in the profile tables; intensity
// scaling is applied on top via Scaled.
type LayerConfig struct {
	Name   string      `yaml:"-"`
	Family LayerFamily `yaml:"family"`
	Tier   string      `yaml:"tier"`

	Count int `yaml:"count"`

	Size          Range `yaml:"size"`
	Speed         Range `yaml:"speed"`
	Opacity       Range `yaml:"opacity"`
	Frequency     Range `yaml:"frequency"`
	WindInfluence Range `yaml:"windInfluence"`
	Spin          Range `yaml:"spin"`
	Wobble        Range `yaml:"wobble"`
	Stagger       Range `yaml:"stagger"`

	Palette  []string `yaml:"palette"`
	Variants []string `yaml:"variants"`

	Axis  MotionAxis `yaml:"axis"`
	Slant float64    `yaml:"slant"`

	// Blobs is the per-element satellite count (cloud blobs per cloud,
	// droplets per splash burst, nodes per fog tendril).
	Blobs Range `yaml:"blobs"`

	// Family-specific structural parameters.
	Ripples   bool  `yaml:"ripples"`
	Splashes  bool  `yaml:"splashes"`
	Vortex    bool  `yaml:"vortex"`
	Curvature Range `yaml:"curvature"`

	// Lightning timing (FamilyLightning only).
	StrikeInterval Range `yaml:"strikeInterval"`
	StrikeDuration Range `yaml:"strikeDuration"`
}

// DepthTier resolves the YAML tier name. Unknown names default to far,
// the faintest parameterization.
func (c LayerConfig) DepthTier() DepthTier {
	switch c.Tier {
	case "near":
		return TierNear
	case "mid":
		return TierMid
	default:
		return TierFar
	}
}

// Validate checks the structural fields a renderer depends on.
func (c LayerConfig) Validate() error {
	if c.Family == "" {
		return fmt.Errorf("layer %q: missing family", c.Name)
	}
	if c.Count < 0 {
		return fmt.Errorf("layer %q: negative count %d", c.Name, c.Count)
	}
	if c.Family != FamilyLightning && c.Family != FamilyCelestial && c.Count == 0 {
		return fmt.Errorf("layer %q: zero element count", c.Name)
	}
	for _, p := range c.Palette {
		if _, err := ParseColor(p); err != nil {
			return fmt.Errorf("layer %q: %w", c.Name, err)
		}
	}
	return nil
}

// Scaled returns a copy with the intensity profile's multipliers applied.
// The scaling never replaces a rule, only stretches it, so a mid-scene
// intensity change keeps the same visual structure.
func (c LayerConfig) Scaled(p IntensityProfile) LayerConfig {
	out := c
	out.Count = int(float64(c.Count)*p.CountScale + 0.5)
	out.Speed = c.Speed.Scale(p.SpeedScale)
	out.Opacity = Range{
		Min: clamp01(c.Opacity.Min * p.OpacityScale),
		Max: clamp01(c.Opacity.Max * p.OpacityScale),
	}
	return out
}

// IntensityProfile scales a layer stack for one intensity tier and gates
// the secondary effects that only appear under severe weather.
type IntensityProfile struct {
	CountScale   float64 `yaml:"countScale"`
	SpeedScale   float64 `yaml:"speedScale"`
	OpacityScale float64 `yaml:"opacityScale"`
	WindGain     float64 `yaml:"windGain"`

	Lightning bool `yaml:"lightning"`
	Vortex    bool `yaml:"vortex"`
	Shimmer   bool `yaml:"shimmer"`
}

// DefaultProfile is the moderate tier used when a table lookup fails.
func DefaultProfile() IntensityProfile {
	return IntensityProfile{
		CountScale:   1.0,
		SpeedScale:   1.0,
		OpacityScale: 1.0,
		WindGain:     1.0,
	}
}

// ProfileFor never fails: unknown tiers map to the moderate profile.
func (s *ProfileSet) ProfileFor(i types.Intensity) IntensityProfile {
	if p, ok := s.Profiles[i.String()]; ok {
		return p
	}
	return DefaultProfile()
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex color.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := color.RGBA{A: 0xff}
	if len(h) == 8 {
		c.A = uint8(v & 0xff)
		v >>= 8
	}
	c.B = uint8(v & 0xff)
	c.G = uint8((v >> 8) & 0xff)
	c.R = uint8((v >> 16) & 0xff)
	return c, nil
}

// MustColor is ParseColor for compiled-in palettes.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
