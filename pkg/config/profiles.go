package config

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML []byte

// ProfileSet is the loaded parameter table: intensity profiles plus every
// named layer configuration the scene selector can reference.
type ProfileSet struct {
	Profiles map[string]IntensityProfile `yaml:"profiles"`
	Layers   map[string]LayerConfig      `yaml:"layers"`
}

// Load parses the embedded profile tables and validates every layer.
func Load() (*ProfileSet, error) {
	return Parse(profilesYAML)
}

// Parse builds a ProfileSet from a YAML document. Exposed separately so
// tests and external tables can reuse the same validation path.
func Parse(data []byte) (*ProfileSet, error) {
	var set ProfileSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse profile tables: %w", err)
	}
	if len(set.Layers) == 0 {
		return nil, fmt.Errorf("profile tables contain no layers")
	}
	for name, layer := range set.Layers {
		layer.Name = name
		if err := layer.Validate(); err != nil {
			return nil, err
		}
		set.Layers[name] = layer
	}
	for _, tier := range []string{"light", "moderate", "heavy"} {
		if _, ok := set.Profiles[tier]; !ok {
			return nil, fmt.Errorf("profile tables missing %q intensity tier", tier)
		}
	}
	return &set, nil
}

// MustLoad is Load for program startup, where a broken embedded table is
// a build defect rather than a runtime condition.
func MustLoad() *ProfileSet {
	set, err := Load()
	if err != nil {
		panic(err)
	}
	return set
}

// Layer returns the named layer config.
func (s *ProfileSet) Layer(name string) (LayerConfig, bool) {
	cfg, ok := s.Layers[name]
	return cfg, ok
}

// LayerNames returns all layer names in sorted order.
func (s *ProfileSet) LayerNames() []string {
	names := make([]string, 0, len(s.Layers))
	for name := range s.Layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
