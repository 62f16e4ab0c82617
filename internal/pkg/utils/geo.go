package utils

import (
	"math"
	"strconv"
	"strings"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ParseCoordinates разбирает координаты, хранящиеся строками.
// ok=false если хотя бы одна часть пустая, не число или вне допустимого диапазона.
func ParseCoordinates(lat, lon string) (float64, float64, bool) {
	lat = strings.TrimSpace(lat)
	lon = strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return 0, 0, false
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return 0, 0, false
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return 0, 0, false
	}
	if math.IsNaN(latF) || math.IsNaN(lonF) || !ValidateCoordinates(latF, lonF) {
		return 0, 0, false
	}

	return latF, lonF, true
}
