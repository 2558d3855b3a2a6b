package mandel

import (
	"math"
	"testing"
)

func TestRegionView(t *testing.T) {
	v := SeahorseValley.View(500, 200, 200)
	if err := v.Validate(); err != nil {
		t.Fatalf("landmark view invalid: %v", err)
	}
	if math.Abs(v.Size-0.1) > 1e-12 {
		t.Errorf("size = %v, want the region's larger edge 0.1", v.Size)
	}
	// The square must be centered on the region.
	cx := real(v.Corner) + v.Size/2
	cy := imag(v.Corner) + v.Size/2
	if math.Abs(cx-(-0.75)) > 1e-12 || math.Abs(cy-0.1) > 1e-12 {
		t.Errorf("view center = (%v, %v), want (-0.75, 0.1)", cx, cy)
	}
}

func TestLandmarksValid(t *testing.T) {
	for name, region := range Landmarks {
		v := region.View(100, 50, 200)
		if err := v.Validate(); err != nil {
			t.Errorf("landmark %q yields invalid view: %v", name, err)
		}
	}
}
