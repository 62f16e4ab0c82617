package domain

import (
	"sort"
	"strings"
	"time"
)

// Difficulty - сложность маршрута
type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

// IsValid проверяет значение сложности
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		return true
	default:
		return false
	}
}

// Route - многодневный маршрут
type Route struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Slug             string     `json:"slug" db:"slug"`
	Description      string     `json:"description" db:"description"`
	ShortDescription string     `json:"short_description" db:"short_description"`
	Duration         int        `json:"duration" db:"duration"`
	Difficulty       Difficulty `json:"difficulty" db:"difficulty"`
	StartLocation    string     `json:"start_location" db:"start_location"`
	EndLocation      string     `json:"end_location" db:"end_location"`
	Distance         int        `json:"distance" db:"distance"`
	Highlights       StringList `json:"highlights" db:"highlights"`
	CoverImage       string     `json:"cover_image" db:"cover_image"`
	VideoURL         string     `json:"video_url" db:"video_url"`
	ViewCount        int        `json:"view_count" db:"view_count"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// Stop - остановка маршрута. Координаты хранятся строками и могут быть пустыми.
type Stop struct {
	ID          int64      `json:"id" db:"id"`
	RouteID     int64      `json:"route_id" db:"route_id"`
	DayNumber   int        `json:"day_number" db:"day_number"`
	StopOrder   int        `json:"stop_order" db:"stop_order"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Latitude    string     `json:"latitude" db:"latitude"`
	Longitude   string     `json:"longitude" db:"longitude"`
	Duration    string     `json:"duration" db:"duration"`
	Activities  StringList `json:"activities" db:"activities"`
	Tips        string     `json:"tips" db:"tips"`
	Image       string     `json:"image" db:"image"`
}

// RouteFilter - фильтр маршрутов. nil/пустое поле означает отсутствие условия.
type RouteFilter struct {
	Duration      *int
	Difficulty    Difficulty
	StartLocation string
}

// Matches проверяет маршрут по всем условиям фильтра
func (f RouteFilter) Matches(r Route) bool {
	if f.Duration != nil && r.Duration != *f.Duration {
		return false
	}
	if f.Difficulty != "" && r.Difficulty != f.Difficulty {
		return false
	}
	if start := strings.ToLower(strings.TrimSpace(f.StartLocation)); start != "" {
		if !strings.Contains(strings.ToLower(r.StartLocation), start) {
			return false
		}
	}
	return true
}

// FilterRoutes возвращает подходящие маршруты, сохраняя их относительный порядок
func FilterRoutes(routes []Route, filter RouteFilter) []Route {
	result := make([]Route, 0, len(routes))
	for _, r := range routes {
		if filter.Matches(r) {
			result = append(result, r)
		}
	}
	return result
}

// DayItinerary - остановки одного дня
type DayItinerary struct {
	Day   int    `json:"day"`
	Stops []Stop `json:"stops"`
}

// GroupStopsByDay группирует остановки по дням.
// Дни идут по возрастанию номера, остановки внутри дня по StopOrder
// (при равном порядке сохраняется исходная последовательность).
func GroupStopsByDay(stops []Stop) []DayItinerary {
	byDay := make(map[int][]Stop)
	for _, s := range stops {
		byDay[s.DayNumber] = append(byDay[s.DayNumber], s)
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	result := make([]DayItinerary, 0, len(days))
	for _, day := range days {
		dayStops := byDay[day]
		sort.SliceStable(dayStops, func(i, j int) bool {
			return dayStops[i].StopOrder < dayStops[j].StopOrder
		})
		result = append(result, DayItinerary{Day: day, Stops: dayStops})
	}
	return result
}

// Itinerary - маршрут с программой по дням
type Itinerary struct {
	Route Route          `json:"route"`
	Days  []DayItinerary `json:"days"`
}
