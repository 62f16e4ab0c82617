package domain

import "time"

// Category - категория каталога (отели, рестораны, достопримечательности)
type Category struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description" db:"description"`
	Icon         string    `json:"icon" db:"icon"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Known category slugs
const (
	CategoryAccommodation = "accommodation"
	CategoryRestaurants   = "restaurants"
	CategoryAttractions   = "attractions"
	CategoryTours         = "tours"
	CategoryActivities    = "activities"
	CategoryShopping      = "shopping"
)

// DefaultCategoryIcon иконка для категорий вне фиксированного набора
const DefaultCategoryIcon = "map-pin"

// CategoryIcon возвращает иконку для известного slug категории
func CategoryIcon(slug string) string {
	switch slug {
	case CategoryAccommodation:
		return "bed"
	case CategoryRestaurants:
		return "utensils"
	case CategoryAttractions:
		return "landmark"
	case CategoryTours:
		return "compass"
	case CategoryActivities:
		return "mountain"
	case CategoryShopping:
		return "shopping-bag"
	default:
		return DefaultCategoryIcon
	}
}

// DisplayIcon - иконка из записи, либо иконка по slug
func (c Category) DisplayIcon() string {
	if c.Icon != "" {
		return c.Icon
	}
	return CategoryIcon(c.Slug)
}
