package domain

import "time"

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Extend расширяет рамку так, чтобы она содержала точку
func (b *BoundingBox) Extend(p Point) {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lon < b.MinLon {
		b.MinLon = p.Lon
	}
	if p.Lon > b.MaxLon {
		b.MaxLon = p.Lon
	}
}

// Contains проверяет попадание точки в рамку (границы включительно)
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Center возвращает центр рамки
func (b BoundingBox) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Statistics - агрегированная статистика по контенту портала
type Statistics struct {
	Categories       int            `json:"categories"`
	Listings         ListingStats   `json:"listings"`
	Routes           RouteStats     `json:"routes"`
	MediaByType      map[string]int `json:"media_by_type"`
	ListingsByRegion map[string]int `json:"listings_by_region"`
	LastUpdated      time.Time      `json:"last_updated"`
}

// ListingStats статистика по объектам каталога
type ListingStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Featured int `json:"featured"`
	Views    int `json:"views"`
}

// RouteStats статистика по маршрутам
type RouteStats struct {
	Total int `json:"total"`
	Stops int `json:"stops"`
	Views int `json:"views"`
}
