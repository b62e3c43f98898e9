package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMiles is the sphere radius used for great-circle distances.
const EarthRadiusMiles = 3959.0

// HaversineMiles calculates the great-circle distance between two points in
// miles using spherical geometry (equivalent to the haversine formula with
// Earth radius 3959 mi).
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMiles
}
