package domain

import (
	"sort"

	"github.com/tourism-portal/internal/pkg/utils"
)

// Marker colours
const (
	MarkerColorDefault   = "#2c7be5"
	MarkerColorHighlight = "#e67e22"
)

// Waypoint - маркер остановки на карте
type Waypoint struct {
	StopID      int64   `json:"stop_id"`
	Day         int     `json:"day"`
	Order       int     `json:"order"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Color       string  `json:"color"`
	Highlighted bool    `json:"highlighted"`
}

// DayPath - линия одного дня
type DayPath struct {
	Day    int     `json:"day"`
	Points []Point `json:"points"`
}

// RouteMap - данные для отрисовки маршрута на карте
type RouteMap struct {
	Waypoints       []Waypoint   `json:"waypoints"`
	Path            []Point      `json:"path"`
	DayPaths        []DayPath    `json:"day_paths"`
	Bounds          *BoundingBox `json:"bounds"`
	Center          *Point       `json:"center"`
	SelectedDay     int          `json:"selected_day"`
	TotalDistanceKm float64      `json:"total_distance_km"`
}

// BuildRouteMap строит маркеры и линии по остановкам.
// Остановки без валидных координат на карту не попадают.
// selectedDay=0 означает, что ни один день не выделен.
func BuildRouteMap(stops []Stop, selectedDay int) RouteMap {
	ordered := make([]Stop, len(stops))
	copy(ordered, stops)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DayNumber != ordered[j].DayNumber {
			return ordered[i].DayNumber < ordered[j].DayNumber
		}
		return ordered[i].StopOrder < ordered[j].StopOrder
	})

	m := RouteMap{
		Waypoints:   make([]Waypoint, 0, len(ordered)),
		Path:        make([]Point, 0, len(ordered)),
		DayPaths:    make([]DayPath, 0),
		SelectedDay: selectedDay,
	}

	var bounds BoundingBox
	for _, s := range ordered {
		lat, lon, ok := utils.ParseCoordinates(s.Latitude, s.Longitude)
		if !ok {
			continue
		}

		highlighted := selectedDay != 0 && s.DayNumber == selectedDay
		color := MarkerColorDefault
		if highlighted {
			color = MarkerColorHighlight
		}

		p := Point{Lat: lat, Lon: lon}
		if len(m.Path) == 0 {
			bounds = BoundingBox{MinLat: lat, MinLon: lon, MaxLat: lat, MaxLon: lon}
		} else {
			bounds.Extend(p)
			prev := m.Path[len(m.Path)-1]
			m.TotalDistanceKm += utils.HaversineDistance(prev.Lat, prev.Lon, lat, lon)
		}

		m.Waypoints = append(m.Waypoints, Waypoint{
			StopID:      s.ID,
			Day:         s.DayNumber,
			Order:       s.StopOrder,
			Name:        s.Name,
			Lat:         lat,
			Lon:         lon,
			Color:       color,
			Highlighted: highlighted,
		})
		m.Path = append(m.Path, p)

		if n := len(m.DayPaths); n == 0 || m.DayPaths[n-1].Day != s.DayNumber {
			m.DayPaths = append(m.DayPaths, DayPath{Day: s.DayNumber})
		}
		last := &m.DayPaths[len(m.DayPaths)-1]
		last.Points = append(last.Points, p)
	}

	if len(m.Path) > 0 {
		center := bounds.Center()
		m.Bounds = &bounds
		m.Center = &center
	}

	return m
}
