package geo

import "math"

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between
// two coordinates (haversine). Any input of exactly 0 is treated as
// "coordinate not provided" and short-circuits to 0; this mirrors how
// clients omit location data, it is not a numeric edge case.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == 0 || lon1 == 0 || lat2 == 0 || lon2 == 0 {
		return 0
	}

	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to one decimal place for API responses.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
