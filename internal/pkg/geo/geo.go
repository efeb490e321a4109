package geo

import "math"

// Fence is a named circular region used to validate attendance locations.
type Fence struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// Distance menghitung jarak antara dua titik koordinat dalam Meter (Haversine).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // Jari-jari bumi dalam Meter

	// Konversi ke Radian
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	// Rumus Haversine
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// WithinAny reports whether the point falls inside at least one fence.
// An empty fence list always returns false.
func WithinAny(lat, lon float64, fences []Fence) bool {
	for _, fence := range fences {
		distanceMeters := Distance(lat, lon, fence.Latitude, fence.Longitude)
		if distanceMeters <= fence.RadiusMeters {
			return true
		}
	}
	return false
}
