package spatial

import (
	"math"
	"testing"
)

func TestHaversineMilesZeroDistance(t *testing.T) {
	if d := HaversineMiles(0, 0, 0, 0); d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
	if d := HaversineMiles(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
}

func TestHaversineMilesNewYorkToLosAngeles(t *testing.T) {
	d := HaversineMiles(40.7128, -74.0060, 34.0522, -118.2437)
	if math.Abs(d-2446) > 6 {
		t.Errorf("NYC to LA = %v miles, want ~2446", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := HaversineMiles(51.5074, -0.1278, 48.8566, 2.3522)
	b := HaversineMiles(48.8566, 2.3522, 51.5074, -0.1278)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}
