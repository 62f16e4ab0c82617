package domain

import (
	"strings"
	"time"
)

// Listing - объект каталога (отель, ресторан, достопримечательность)
type Listing struct {
	ID               int64      `json:"id" db:"id"`
	CategoryID       int64      `json:"category_id" db:"category_id"`
	Name             string     `json:"name" db:"name"`
	Slug             string     `json:"slug" db:"slug"`
	Description      string     `json:"description" db:"description"`
	ShortDescription string     `json:"short_description" db:"short_description"`
	Location         string     `json:"location" db:"location"`
	Region           string     `json:"region" db:"region"`
	Address          string     `json:"address" db:"address"`
	Phone            string     `json:"phone" db:"phone"`
	Email            string     `json:"email" db:"email"`
	Website          string     `json:"website" db:"website"`
	PriceRange       string     `json:"price_range" db:"price_range"`
	Features         StringList `json:"features" db:"features"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	IsFeatured       bool       `json:"is_featured" db:"is_featured"`
	ViewCount        int        `json:"view_count" db:"view_count"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// ListingFilter - фильтр списка объектов. Все заданные условия объединяются через AND.
type ListingFilter struct {
	CategoryID      *int64
	Region          string
	Search          string
	Featured        *bool
	IncludeInactive bool
}

// IsEmpty проверяет отсутствие условий
func (f ListingFilter) IsEmpty() bool {
	return f.CategoryID == nil && f.Region == "" && f.Search == "" && f.Featured == nil
}

// MatchesSearch - регистронезависимый поиск подстроки в названии и описании
func (l Listing) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), term) ||
		strings.Contains(strings.ToLower(l.Description), term)
}

// MatchesRegion проверяет принадлежность объекта региону.
// Совпадение по тексту региона либо по региону, определённому справочником
// из поля region (а если оно пустое, из location).
func (l Listing) MatchesRegion(region string, registry *RegionRegistry) bool {
	region = strings.TrimSpace(region)
	if region == "" {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(l.Region), region) {
		return true
	}
	if registry == nil {
		return false
	}

	wanted, ok := resolveRegionID(region, registry)
	if !ok {
		return false
	}

	source := l.Region
	if strings.TrimSpace(source) == "" {
		source = l.Location
	}
	got, ok := resolveRegionID(source, registry)
	return ok && got == wanted
}

// Matches применяет все условия фильтра
func (f ListingFilter) Matches(l Listing, registry *RegionRegistry) bool {
	if !f.IncludeInactive && !l.IsActive {
		return false
	}
	if f.CategoryID != nil && l.CategoryID != *f.CategoryID {
		return false
	}
	if f.Featured != nil && l.IsFeatured != *f.Featured {
		return false
	}
	if !l.MatchesSearch(f.Search) {
		return false
	}
	return l.MatchesRegion(f.Region, registry)
}

// FilterListings возвращает подходящие объекты в исходном порядке
func FilterListings(listings []Listing, filter ListingFilter, registry *RegionRegistry) []Listing {
	result := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if filter.Matches(l, registry) {
			result = append(result, l)
		}
	}
	return result
}

func resolveRegionID(text string, registry *RegionRegistry) (string, bool) {
	if region, ok := registry.RegionByID(text); ok {
		return region.ID, true
	}
	return registry.RegionFromLocation(text)
}
