// Package game holds the application-side glue around the animation
// core: persisted display state for warm start.
package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/skyscene/pkg/types"
)

// DisplayState is what the app restores on launch: the last selected
// scene and the animation toggle. The weather subsystem will overwrite
// the classification as soon as fresh data arrives; until then the warm
// start avoids a blank first frame.
type DisplayState struct {
	Classification   string `yaml:"classification"`
	Day              bool   `yaml:"day"`
	Intensity        string `yaml:"intensity"`
	AnimationEnabled bool   `yaml:"animationEnabled"`
}

// DefaultDisplayState is a clear day with animation on.
func DefaultDisplayState() *DisplayState {
	return &DisplayState{
		Classification:   types.ClassificationClear.String(),
		Day:              true,
		Intensity:        types.IntensityModerate.String(),
		AnimationEnabled: true,
	}
}

// Scene decodes the persisted strings, falling back to the defaults for
// anything unparseable.
func (d *DisplayState) Scene() (types.Classification, bool, types.Intensity) {
	c, err := types.ParseClassification(d.Classification)
	if err != nil {
		c = types.ClassificationClear
	}
	i, err := types.ParseIntensity(d.Intensity)
	if err != nil {
		i = types.IntensityModerate
	}
	return c, d.Day, i
}

// Storage path constants.
const (
	displayObject   = "display"
	displayProperty = "last-scene"
)

// WarmStartManager loads and saves the display state through gdata.
// A nil gdata manager degrades to memory-only state, never an error.
type WarmStartManager struct {
	gdataManager *gdata.Manager
	state        *DisplayState
}

// NewWarmStartManager creates the manager and tries to load a previous
// state. Load failure is not fatal; the defaults apply.
func NewWarmStartManager(gdataManager *gdata.Manager) *WarmStartManager {
	m := &WarmStartManager{
		gdataManager: gdataManager,
		state:        DefaultDisplayState(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[WarmStart] Warning: failed to load display state: %v (using defaults)", err)
	}
	return m
}

// Load reads the persisted state, if any.
func (m *WarmStartManager) Load() error {
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(displayObject, displayProperty) {
		return nil
	}
	data, err := m.gdataManager.LoadObjectProp(displayObject, displayProperty)
	if err != nil {
		return fmt.Errorf("failed to load display state: %w", err)
	}
	var loaded DisplayState
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal display state: %w", err)
	}
	m.state = &loaded
	return nil
}

// Save persists the current state. Nil manager is a silent no-op.
func (m *WarmStartManager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(m.state)
	if err != nil {
		return fmt.Errorf("failed to marshal display state: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(displayObject, displayProperty, data); err != nil {
		return fmt.Errorf("failed to save display state: %w", err)
	}
	return nil
}

// State returns the in-memory display state.
func (m *WarmStartManager) State() *DisplayState {
	return m.state
}

// SetScene records a scene selection in memory; call Save to persist.
func (m *WarmStartManager) SetScene(c types.Classification, day bool, intensity types.Intensity) {
	m.state.Classification = c.String()
	m.state.Day = day
	m.state.Intensity = intensity.String()
}

// SetAnimationEnabled records the animation toggle in memory.
func (m *WarmStartManager) SetAnimationEnabled(enabled bool) {
	m.state.AnimationEnabled = enabled
}
