package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range is a closed numeric interval sampled during element generation.
// In YAML a range is written either as a bare scalar ("1.5", fixed value)
// or in bracket form ("[0.7 0.9]", uniform between min and max).
type Range struct {
	Min float64
	Max float64
}

// ParseRange parses a range string.
// Supported formats:
//   - Fixed value: "1500" → {1500, 1500}
//   - Range: "[0.7 0.9]" → {0.7, 0.9}
//   - Single-value range: "[0.7]" → {0.7, 0.7}
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(inner)
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range value %q: %w", s, err)
			}
			return Range{Min: v, Max: v}, nil
		case 2:
			lo, err1 := strconv.ParseFloat(parts[0], 64)
			hi, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				return Range{}, fmt.Errorf("invalid range bounds %q", s)
			}
			if hi < lo {
				lo, hi = hi, lo
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("range %q must hold one or two values", s)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid scalar %q: %w", s, err)
	}
	return Range{Min: v, Max: v}, nil
}

// UnmarshalYAML accepts both scalar and bracket range notation.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("range must be a string node: %w", err)
	}
	parsed, err := ParseRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML renders the bracket form so tables round-trip.
func (r Range) MarshalYAML() (interface{}, error) {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64), nil
	}
	return fmt.Sprintf("[%g %g]", r.Min, r.Max), nil
}

// Lerp maps u in [0,1] onto the interval.
func (r Range) Lerp(u float64) float64 {
	return r.Min + (r.Max-r.Min)*u
}

// Mid returns the interval midpoint.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Scale multiplies both bounds by k.
func (r Range) Scale(k float64) Range {
	return Range{Min: r.Min * k, Max: r.Max * k}
}

// IsZero reports whether the range was left unset.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}
