// Package geodist provides great-circle distance helpers over WGS-84
// coordinates, in meters.
//
// Haversine is the reference formula and the default A* heuristic in
// this module: the great-circle distance between two points never
// exceeds any road path between them, so the heuristic is admissible as
// long as edge lengths are in meters. Equirectangular is a cheaper
// approximation adequate for short spans (city-scale graphs).
package geodist

import "math"

// EarthRadiusMeters is the mean Earth radius used by both formulas.
const EarthRadiusMeters = 6_371_000.0

// Haversine returns the great-circle distance in meters between two
// WGS-84 points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := radians(lat1)
	φ2 := radians(lat2)
	dφ := radians(lat2 - lat1)
	dλ := radians(lon2 - lon1)

	a := math.Sin(dφ/2)*math.Sin(dφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(dλ/2)*math.Sin(dλ/2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Equirectangular returns an approximate distance in meters between two
// WGS-84 points given in degrees. It is accurate for short spans and
// costs one sqrt instead of the trigonometry of Haversine; use Haversine
// where admissibility of a heuristic must hold exactly.
func Equirectangular(lat1, lon1, lat2, lon2 float64) float64 {
	x := radians(lon2-lon1) * math.Cos(radians(lat1+lat2)/2)
	y := radians(lat2 - lat1)

	return EarthRadiusMeters * math.Sqrt(x*x+y*y)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
