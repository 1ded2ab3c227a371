package geo

import "testing"

func TestHaversineKm(t *testing.T) {
	// One degree of longitude on the equator ~ 111.19 km
	d := HaversineKm(0, 0, 0, 1)
	if d < 110.69 || d > 111.69 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := HaversineKm(-6.2, 106.816, -6.9175, 107.6191)
	b := HaversineKm(-6.9175, 107.6191, -6.2, 106.816)
	if a != b {
		t.Fatalf("expected symmetric distance, got %v and %v", a, b)
	}
}

func TestHaversineKmZero(t *testing.T) {
	if d := HaversineKm(10, 20, 10, 20); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}

func TestLineStringWKT(t *testing.T) {
	wkt := LineStringWKT([][2]float64{{20, 10}, {21, 11}})
	if wkt != "LINESTRING(20 10, 21 11)" {
		t.Fatalf("unexpected wkt: %q", wkt)
	}
}

func TestLineStringWKTFractional(t *testing.T) {
	wkt := LineStringWKT([][2]float64{{106.816, -6.2}, {107.6191, -6.9175}})
	if wkt != "LINESTRING(106.816 -6.2, 107.6191 -6.9175)" {
		t.Fatalf("unexpected wkt: %q", wkt)
	}
}

func TestLineStringWKTTooShort(t *testing.T) {
	if wkt := LineStringWKT([][2]float64{{20, 10}}); wkt != "" {
		t.Fatalf("expected empty wkt, got %q", wkt)
	}
	if wkt := LineStringWKT(nil); wkt != "" {
		t.Fatalf("expected empty wkt, got %q", wkt)
	}
}
