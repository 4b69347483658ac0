package geodist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wayfind/geodist"
)

// within asserts |got-want| <= tol.
func within(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.1f; want %.1f ± %.1f", what, got, want, tol)
	}
}

func TestHaversine_KnownDistances(t *testing.T) {
	// Identical points.
	if d := geodist.Haversine(48.8566, 2.3522, 48.8566, 2.3522); d != 0 {
		t.Errorf("zero-span distance = %g; want 0", d)
	}

	// One degree of latitude ≈ 111.19 km anywhere.
	within(t, geodist.Haversine(0, 0, 1, 0), 111_195, 50, "1° latitude")

	// One degree of longitude at the equator is the same arc.
	within(t, geodist.Haversine(0, 0, 0, 1), 111_195, 50, "1° longitude at equator")

	// Paris → Berlin, a classic reference span (~878 km).
	within(t, geodist.Haversine(48.8566, 2.3522, 52.5200, 13.4050), 878_000, 2_000, "Paris→Berlin")
}

func TestHaversine_Symmetry(t *testing.T) {
	ab := geodist.Haversine(40.7128, -74.0060, 34.0522, -118.2437)
	ba := geodist.Haversine(34.0522, -118.2437, 40.7128, -74.0060)
	if math.Abs(ab-ba) > 1e-6 {
		t.Errorf("asymmetric: %.6f vs %.6f", ab, ba)
	}
}

func TestEquirectangular_CloseToHaversineOnShortSpans(t *testing.T) {
	// Two junctions ~1.5 km apart in central Berlin.
	lat1, lon1 := 52.5200, 13.4050
	lat2, lon2 := 52.5300, 13.4150

	h := geodist.Haversine(lat1, lon1, lat2, lon2)
	e := geodist.Equirectangular(lat1, lon1, lat2, lon2)
	if rel := math.Abs(h-e) / h; rel > 0.001 {
		t.Errorf("relative error %.5f over a city span; want < 0.001 (haversine %.1f, equirectangular %.1f)", rel, h, e)
	}
}
