package compositor

import (
	"log"

	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/render"
	"github.com/gonewx/skyscene/pkg/scene"
	"github.com/gonewx/skyscene/pkg/types"
)

// SceneSelector maps (classification, day flag, intensity) to an
// ordered layer list and keeps the element collections in sync with the
// canvas. Its only state is the current configuration, the generated
// collections, and the shared wind field; per-frame motion is entirely
// the evaluation functions' business.
//
// Rebuilds are guarded by a monotonically increasing generation token:
// a build result is committed only if no newer configuration arrived
// while it was produced (last-writer-wins), so a frame never mixes
// collections from two configurations.
type SceneSelector struct {
	profiles *config.ProfileSet
	seed     int64

	class     types.Classification
	day       bool
	intensity types.Intensity
	hasScene  bool

	geom  scene.Geometry
	token uint64

	layers []render.Layer
	wind   *scene.WindField
	list   render.DrawList

	animEnabled bool
	frozenT     float64
	frozenValid bool

	lastT float64
}

// NewSceneSelector builds an idle selector: nothing renders until the
// first SetScene. The seed makes every generated collection reproducible.
func NewSceneSelector(profiles *config.ProfileSet, seed int64) *SceneSelector {
	if seed == 0 {
		seed = 1
	}
	return &SceneSelector{
		profiles:    profiles,
		seed:        seed,
		animEnabled: true,
		wind:        scene.NewWindField(1, 0),
	}
}

// SetScene transitions to a new configuration. Any field change
// discards the current collections, looks up the new stack and
// regenerates at the current canvas size. An invalid classification is
// logged and handled by the clear/day fallback stack.
func (s *SceneSelector) SetScene(c types.Classification, day bool, intensity types.Intensity, w, h float64) {
	if !c.Valid() {
		log.Printf("[SceneSelector] unknown classification %d, falling back to clear/day stack", c)
	}

	sceneChanged := c != s.class || day != s.day || !s.hasScene
	s.class = c
	s.day = day
	s.intensity = intensity
	s.geom = scene.Geometry{W: w, H: h}
	s.hasScene = true

	profile := s.profiles.ProfileFor(intensity)
	if sceneChanged {
		// New scene: restart the wind phase baseline alongside the
		// fresh collections.
		s.wind = scene.NewWindField(profile.WindGain, s.lastT)
	} else {
		// Intensity-only change: rescale the coefficients so the wind
		// sample stays continuous mid-scene.
		s.wind.SetGain(profile.WindGain)
	}

	tok := s.nextToken()
	s.commit(tok, s.build(tok))
}

// Resize regenerates collections for a new canvas extent without
// touching the rest of the configuration.
func (s *SceneSelector) Resize(w, h float64) {
	if !s.hasScene {
		s.geom = scene.Geometry{W: w, H: h}
		return
	}
	if w == s.geom.W && h == s.geom.H {
		return
	}
	s.geom = scene.Geometry{W: w, H: h}
	tok := s.nextToken()
	s.commit(tok, s.build(tok))
}

// SetAnimationEnabled freezes or resumes the clock. While disabled the
// selector renders a single static frame per configuration by reusing
// the time of the first frame after the freeze.
func (s *SceneSelector) SetAnimationEnabled(enabled bool) {
	if s.animEnabled == enabled {
		return
	}
	s.animEnabled = enabled
	s.frozenValid = false
}

// AnimationEnabled reports the current freeze state.
func (s *SceneSelector) AnimationEnabled() bool {
	return s.animEnabled
}

// RenderFrame evaluates every active layer at time t and returns the
// draw list. The list is owned by the selector and reused; it is valid
// until the next call. Callable at any t, monotonic or not.
func (s *SceneSelector) RenderFrame(t float64) *render.DrawList {
	s.lastT = t
	s.list.Reset()
	if !s.hasScene || s.geom.Zero() {
		return &s.list
	}
	if !s.animEnabled {
		if !s.frozenValid {
			s.frozenT = t
			s.frozenValid = true
		}
		t = s.frozenT
	}
	for _, layer := range s.layers {
		layer.Render(&s.list, t, s.wind, s.geom)
	}
	return &s.list
}

// ActiveLayerNames lists the committed stack bottom-to-top.
func (s *SceneSelector) ActiveLayerNames() []string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.Name()
	}
	return names
}

// Classification returns the current classification.
func (s *SceneSelector) Classification() types.Classification {
	return s.class
}

// nextToken bumps the generation token. Results built for an older
// token are stale and must not be committed.
func (s *SceneSelector) nextToken() uint64 {
	s.token++
	return s.token
}

// build generates the element collections and renderers for the current
// configuration. It reads the configuration once at entry; the token
// identifies which configuration the result belongs to.
func (s *SceneSelector) build(tok uint64) []render.Layer {
	if s.geom.Zero() {
		return nil
	}
	profile := s.profiles.ProfileFor(s.intensity)
	refs := StackFor(s.class, s.day)

	built := make([]render.Layer, 0, len(refs))
	for i, ref := range refs {
		cfg, ok := s.profiles.Layer(ref.Name)
		if !ok {
			log.Printf("[SceneSelector] stack references unknown layer %q, skipping", ref.Name)
			continue
		}
		if cfg.Family == config.FamilyLightning && !profile.Lightning {
			continue
		}
		scaled := cfg.Scaled(profile)
		layerSeed := s.seed + int64(i)*7919 + hashName(ref.Name)
		elems := scene.Generate(s.geom, scaled, layerSeed)
		built = append(built, render.NewLayer(ref.Name, scaled, elems, ref.Opacity, s.day, layerSeed, profile))
	}
	return built
}

// commit swaps in a build result wholesale, unless a newer configuration
// superseded it while it was produced.
func (s *SceneSelector) commit(tok uint64, built []render.Layer) {
	if tok != s.token {
		log.Printf("[SceneSelector] discarding stale generation (token %d, current %d)", tok, s.token)
		return
	}
	s.layers = built
}

// hashName folds a layer name into the seed so two layers of the same
// stack never share element streams.
func hashName(name string) int64 {
	var h int64
	for _, r := range name {
		h = h*131 + int64(r)
	}
	return h
}
