package render

import (
	"math"
	"reflect"
	"testing"

	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/scene"
)

func rainConfig() config.LayerConfig {
	return config.LayerConfig{
		Name:          "rain-near",
		Family:        config.FamilyRain,
		Tier:          "near",
		Count:         80,
		Size:          config.Range{Min: 12, Max: 22},
		Speed:         config.Range{Min: 500, Max: 700},
		Opacity:       config.Range{Min: 0.35, Max: 0.6},
		Frequency:     config.Range{Min: 1, Max: 2},
		WindInfluence: config.Range{Min: 8, Max: 16},
		Palette:       []string{"#b7cde4"},
		Axis:          config.AxisVertical,
		Slant:         0.4,
		Ripples:       true,
		Splashes:      true,
		Blobs:         config.Range{Min: 3, Max: 5},
	}
}

func snowConfig() config.LayerConfig {
	return config.LayerConfig{
		Name:      "snow-near",
		Family:    config.FamilySnow,
		Tier:      "near",
		Count:     40,
		Size:      config.Range{Min: 6, Max: 12},
		Speed:     config.Range{Min: 40, Max: 80},
		Opacity:   config.Range{Min: 0.5, Max: 0.9},
		Frequency: config.Range{Min: 0.3, Max: 0.8},
		Wobble:    config.Range{Min: 4, Max: 10},
		Palette:   []string{"#f4f9ff"},
		Variants:  []string{"crystal", "star", "hexagon", "dendrite", "dot"},
		Axis:      config.AxisVertical,
		Vortex:    true,
	}
}

func lightningConfig() config.LayerConfig {
	return config.LayerConfig{
		Name:           "lightning",
		Family:         config.FamilyLightning,
		Opacity:        config.Range{Min: 0.8, Max: 1},
		Palette:        []string{"#f2ecff"},
		StrikeInterval: config.Range{Min: 2.5, Max: 7},
		StrikeDuration: config.Range{Min: 0.18, Max: 0.4},
	}
}

func buildLayer(t *testing.T, cfg config.LayerConfig, geom scene.Geometry, seed int64) Layer {
	t.Helper()
	elems := scene.Generate(geom, cfg, seed)
	return NewLayer(cfg.Name, cfg, elems, 1, false, seed, config.DefaultProfile())
}

// checkCommands asserts every emitted command is finite and within
// opacity bounds.
func checkCommands(t *testing.T, dst *DrawList) {
	t.Helper()
	for i, c := range dst.Commands() {
		for _, v := range []float64{c.X, c.Y, c.X2, c.Y2, c.R, c.W, c.H, c.Opacity} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("command %d has non-finite field: %+v", i, c)
			}
		}
		if c.Opacity <= 0 || c.Opacity > 1.001 {
			t.Fatalf("command %d opacity %v out of range", i, c.Opacity)
		}
		if c.Op == OpPolyline {
			for _, p := range dst.Points(c) {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) {
					t.Fatalf("command %d has non-finite vertex", i)
				}
			}
		}
	}
}

// TestRainLayerRender sweeps a heavy-rain layer over time and checks
// the command stream stays sane.
func TestRainLayerRender(t *testing.T) {
	geom := scene.Geometry{W: 400, H: 800}
	layer := buildLayer(t, rainConfig(), geom, 21)
	wind := scene.NewWindField(1.8, 0)

	var dst DrawList
	for tt := 0.0; tt <= 6.0; tt += 0.25 {
		dst.Reset()
		layer.Render(&dst, tt, wind, geom)
		if dst.Len() == 0 {
			t.Fatalf("rain layer emitted nothing at t=%v", tt)
		}
		checkCommands(t, &dst)
	}
}

// TestSnowLayerVariants verifies every catalog shape renders and the
// vortex overlay emits its polyline arms.
func TestSnowLayerVariants(t *testing.T) {
	geom := scene.Geometry{W: 400, H: 800}
	cfg := snowConfig()
	profile := config.DefaultProfile()
	profile.Vortex = true
	elems := scene.Generate(geom, cfg, 4)
	layer := NewLayer(cfg.Name, cfg, elems, 1, false, 4, profile)

	var dst DrawList
	layer.Render(&dst, 2.0, scene.NewWindField(1, 0), geom)
	if dst.Len() == 0 {
		t.Fatal("snow layer emitted nothing")
	}
	checkCommands(t, &dst)

	polylines := 0
	for _, c := range dst.Commands() {
		if c.Op == OpPolyline {
			polylines++
		}
	}
	// Hexagon flakes emit polylines and the vortex adds three arms.
	if polylines < 3 {
		t.Errorf("Expected at least the 3 vortex arms, got %d polylines", polylines)
	}
}

// TestLightningDeterministic verifies redrawing the same instant yields
// an identical command stream: the bolt is a function of time, not of
// draw order.
func TestLightningDeterministic(t *testing.T) {
	geom := scene.Geometry{W: 400, H: 800}
	cfg := lightningConfig()
	a := NewLayer(cfg.Name, cfg, nil, 1, false, 17, config.DefaultProfile())
	b := NewLayer(cfg.Name, cfg, nil, 1, false, 17, config.DefaultProfile())

	sched := a.(*LightningLayer).schedule
	active := -1.0
	for tt := 0.0; tt < sched.Period(); tt += 0.01 {
		if _, _, ok := sched.Active(tt); ok {
			active = tt
			break
		}
	}
	if active < 0 {
		t.Fatal("no strike in a full schedule period")
	}

	var da, db DrawList
	a.Render(&da, active, nil, geom)
	b.Render(&db, active, nil, geom)
	if da.Len() == 0 {
		t.Fatal("active strike emitted nothing")
	}
	if !reflect.DeepEqual(da.cmds, db.cmds) || !reflect.DeepEqual(da.pts, db.pts) {
		t.Fatal("two renders of the same instant differ")
	}

	// The first command of a strike frame is the full-screen flash.
	if da.Commands()[0].Op != OpFlash {
		t.Errorf("first command is %v, want flash", da.Commands()[0].Op)
	}
	checkCommands(t, &da)
}

func TestLightningQuietBetweenStrikes(t *testing.T) {
	geom := scene.Geometry{W: 400, H: 800}
	cfg := lightningConfig()
	layer := NewLayer(cfg.Name, cfg, nil, 1, false, 9, config.DefaultProfile())
	sched := layer.(*LightningLayer).schedule

	quiet := -1.0
	for tt := 0.0; tt < sched.Period(); tt += 0.01 {
		if _, _, ok := sched.Active(tt); !ok {
			quiet = tt
			break
		}
	}
	if quiet < 0 {
		t.Fatal("schedule has no gap")
	}
	var dst DrawList
	layer.Render(&dst, quiet, nil, geom)
	if dst.Len() != 0 {
		t.Errorf("quiet frame emitted %d commands", dst.Len())
	}
}

// TestLayersEmptyCollections verifies every family tolerates an empty
// element collection.
func TestLayersEmptyCollections(t *testing.T) {
	geom := scene.Geometry{W: 400, H: 800}
	families := []config.LayerFamily{
		config.FamilyCloud, config.FamilyRain, config.FamilySnow,
		config.FamilyFog, config.FamilyHaze, config.FamilyCelestial,
	}
	for _, fam := range families {
		cfg := config.LayerConfig{Name: string(fam), Family: fam, Opacity: config.Range{Min: 0.5, Max: 1}}
		layer := NewLayer(cfg.Name, cfg, nil, 1, true, 1, config.DefaultProfile())
		var dst DrawList
		layer.Render(&dst, 1.0, scene.NewWindField(1, 0), geom)
		checkCommands(t, &dst)
	}
}

func TestCelestialDayNight(t *testing.T) {
	geom := scene.Geometry{W: 400, H: 800}
	cfg := config.LayerConfig{
		Name:    "celestial",
		Family:  config.FamilyCelestial,
		Opacity: config.Range{Min: 0.6, Max: 1},
		Palette: []string{"#ffd27f", "#e8ecf4"},
	}

	var day, night DrawList
	NewLayer(cfg.Name, cfg, nil, 1, true, 1, config.DefaultProfile()).Render(&day, 1, nil, geom)
	NewLayer(cfg.Name, cfg, nil, 1, false, 1, config.DefaultProfile()).Render(&night, 1, nil, geom)
	if day.Len() == 0 || night.Len() == 0 {
		t.Fatal("celestial layer emitted nothing")
	}
	if reflect.DeepEqual(day.cmds, night.cmds) {
		t.Error("day and night bodies render identically")
	}
	checkCommands(t, &day)
	checkCommands(t, &night)
}

func TestBoltRandRange(t *testing.T) {
	r := boltRand(99)
	prev := -1.0
	same := 0
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("sample %v outside [0,1)", v)
		}
		if v == prev {
			same++
		}
		prev = v
	}
	if same > 0 {
		t.Errorf("%d consecutive duplicate samples", same)
	}
}

func TestBoltRandZeroSeed(t *testing.T) {
	r := boltRand(0)
	if v := r.Float64(); v < 0 || v >= 1 {
		t.Fatalf("zero-seeded sample %v outside [0,1)", v)
	}
}
