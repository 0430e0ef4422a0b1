package scene

import (
	"math"
	"reflect"
	"testing"

	"github.com/gonewx/skyscene/pkg/config"
)

func testLayerConfig() config.LayerConfig {
	return config.LayerConfig{
		Name:          "test-rain",
		Family:        config.FamilyRain,
		Tier:          "near",
		Count:         300,
		Size:          config.Range{Min: 10, Max: 20},
		Speed:         config.Range{Min: 400, Max: 600},
		Opacity:       config.Range{Min: 0.3, Max: 0.6},
		Frequency:     config.Range{Min: 1, Max: 2},
		WindInfluence: config.Range{Min: 10, Max: 20},
		Wobble:        config.Range{Min: 0, Max: 1.5},
		Stagger:       config.Range{Min: 0, Max: 1},
		Palette:       []string{"#b7cde4", "#a3beda"},
		Axis:          config.AxisVertical,
		Slant:         0.45,
		Blobs:         config.Range{Min: 3, Max: 5},
	}
}

// TestGenerateDeterministic verifies a fixed seed reproduces the exact
// same collection.
func TestGenerateDeterministic(t *testing.T) {
	geom := Geometry{W: 400, H: 800}
	cfg := testLayerConfig()

	a := Generate(geom, cfg, 42)
	b := Generate(geom, cfg, 42)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different collections")
	}

	c := Generate(geom, cfg, 43)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical collections")
	}
}

// TestGenerateZeroCanvas verifies degenerate extents yield an empty
// collection rather than a fault.
func TestGenerateZeroCanvas(t *testing.T) {
	cfg := testLayerConfig()
	for _, geom := range []Geometry{{W: 0, H: 0}, {W: -10, H: 100}, {W: 100, H: 0}} {
		if got := Generate(geom, cfg, 1); len(got) != 0 {
			t.Errorf("Generate(%+v) returned %d elements, want 0", geom, len(got))
		}
	}
}

func TestGenerateCount(t *testing.T) {
	elems := Generate(Geometry{W: 400, H: 800}, testLayerConfig(), 7)
	if len(elems) != 300 {
		t.Fatalf("Expected 300 elements, got %d", len(elems))
	}
	for i, el := range elems {
		if el.ID != i {
			t.Fatalf("element %d has ID %d", i, el.ID)
		}
	}
}

// TestGenerateAttributeBounds verifies sampled attributes land inside
// their configured ranges and within the margined canvas band.
func TestGenerateAttributeBounds(t *testing.T) {
	geom := Geometry{W: 400, H: 800}
	cfg := testLayerConfig()
	margin := cfg.Size.Max

	for _, el := range Generate(geom, cfg, 99) {
		if el.BaseX < -margin || el.BaseX > geom.W+margin {
			t.Fatalf("BaseX %v outside margined band", el.BaseX)
		}
		if el.BaseY < -margin || el.BaseY > geom.H+margin {
			t.Fatalf("BaseY %v outside margined band", el.BaseY)
		}
		if el.Size < cfg.Size.Min || el.Size > cfg.Size.Max {
			t.Fatalf("Size %v outside %+v", el.Size, cfg.Size)
		}
		if el.Speed < cfg.Speed.Min || el.Speed > cfg.Speed.Max {
			t.Fatalf("Speed %v outside %+v", el.Speed, cfg.Speed)
		}
		if el.OpacityMax < el.OpacityMin || el.OpacityMax > cfg.Opacity.Max {
			t.Fatalf("opacity range [%v %v] invalid", el.OpacityMin, el.OpacityMax)
		}
		if el.Phase < 0 || el.Phase >= 2*math.Pi {
			t.Fatalf("Phase %v outside [0, 2π)", el.Phase)
		}
		if len(el.Satellites) < 3 || len(el.Satellites) > 5 {
			t.Fatalf("satellite count %d outside blobs range", len(el.Satellites))
		}
	}
}

// TestGenerateBoundaryCoverage verifies base positions cover the whole
// canvas without permanent gaps wider than one element diameter.
func TestGenerateBoundaryCoverage(t *testing.T) {
	geom := Geometry{W: 400, H: 800}
	cfg := testLayerConfig()
	elems := Generate(geom, cfg, 5)

	// Bucket the canvas into cells of one max diameter and require
	// every column of cells to be touched over a full cycle; vertical
	// travel sweeps each column, so column coverage implies area
	// coverage for a falling layer.
	cell := cfg.Size.Max * 2
	cols := int(geom.W/cell) + 1
	seen := make([]bool, cols)
	for _, el := range elems {
		col := int((el.BaseX + cfg.Size.Max) / cell)
		if col >= 0 && col < cols {
			seen[col] = true
		}
	}
	for i, s := range seen {
		if !s {
			t.Errorf("column band %d has no elements", i)
		}
	}
}

func TestGenerateVariantsFromCatalog(t *testing.T) {
	cfg := testLayerConfig()
	cfg.Variants = []string{"crystal", "star"}
	for _, el := range Generate(Geometry{W: 100, H: 100}, cfg, 3) {
		if el.Variant != VariantCrystal && el.Variant != VariantStar {
			t.Fatalf("variant %v not in catalog", el.Variant)
		}
	}
}
