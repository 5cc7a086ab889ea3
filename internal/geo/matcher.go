// Package geo resolves raw device coordinates to the nearest prayer-time
// zone. Pure functions over a fixed coordinate table; safe for concurrent use.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// DefaultZone is returned if the coordinate table is ever empty. It should
// never happen with the compiled-in table; it just removes a failure path.
const DefaultZone = "WLY01"

// Nearest returns the code of the zone whose reference point is closest to
// the given coordinates. No distance threshold applies: a reading far outside
// the covered area still resolves to the closest zone. Ties break to the
// first minimum in table order, so the result is deterministic.
func Nearest(lat, lng float64) string {
	best := DefaultZone
	bestDist := math.Inf(1)
	for _, zc := range zoneCoords {
		d := Haversine(lat, lng, zc.lat, zc.lng)
		if d < bestDist {
			best = zc.code
			bestDist = d
		}
	}
	return best
}

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
