package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/usecase/dto"
)

// ListingQuery - параметры списка объектов
type ListingQuery struct {
	CategoryID *int64
	Region     string
	Search     string
	Featured   *bool
}

func (q ListingQuery) values() url.Values {
	v := url.Values{}
	if q.CategoryID != nil {
		v.Set("categoryId", strconv.FormatInt(*q.CategoryID, 10))
	}
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if s := strings.TrimSpace(q.Region); s != "" {
		v.Set("region", s)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	return v
}

// RouteQuery - параметры списка маршрутов
type RouteQuery struct {
	Duration      *int
	Difficulty    domain.Difficulty
	StartLocation string
}

func (q RouteQuery) values() url.Values {
	v := url.Values{}
	if q.Duration != nil {
		v.Set("duration", strconv.Itoa(*q.Duration))
	}
	if q.Difficulty != "" {
		v.Set("difficulty", string(q.Difficulty))
	}
	if s := strings.TrimSpace(q.StartLocation); s != "" {
		v.Set("startLocation", s)
	}
	return v
}

func (c *Client) Regions(ctx context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	err := c.query(ctx, resourceRegions, "/regions", nil, &regions)
	return regions, err
}

func (c *Client) Region(ctx context.Context, id string) (*domain.Region, error) {
	var region domain.Region
	if err := c.query(ctx, resourceRegions, "/regions/"+url.PathEscape(id), nil, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

// ResolveRegion определяет регион по названию места
func (c *Client) ResolveRegion(ctx context.Context, location string) (*dto.RegionResolveResponse, error) {
	var resp dto.RegionResolveResponse
	if err := c.query(ctx, resourceRegions, "/regions/resolve", url.Values{"location": {location}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var categories []dto.CategoryResponse
	err := c.query(ctx, resourceCategories, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) Category(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	var category dto.CategoryResponse
	if err := c.query(ctx, resourceCategories, "/categories/"+url.PathEscape(slug), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Listings возвращает активные объекты по фильтру
func (c *Client) Listings(ctx context.Context, q ListingQuery) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := c.query(ctx, resourceListings, "/listings", q.values(), &listings)
	return listings, err
}

func (c *Client) Listing(ctx context.Context, slug string) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.query(ctx, resourceListings, "/listings/"+url.PathEscape(slug), nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *Client) ListingMedia(ctx context.Context, listingID int64) ([]dto.MediaResponse, error) {
	var media []dto.MediaResponse
	err := c.query(ctx, resourceMedia, fmt.Sprintf("/listings/%d/media", listingID), nil, &media)
	return media, err
}

func (c *Client) Routes(ctx context.Context, q RouteQuery) ([]domain.Route, error) {
	var routes []domain.Route
	err := c.query(ctx, resourceRoutes, "/routes", q.values(), &routes)
	return routes, err
}

func (c *Client) Route(ctx context.Context, slug string) (*domain.Route, error) {
	var route domain.Route
	if err := c.query(ctx, resourceRoutes, "/routes/"+url.PathEscape(slug), nil, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

func (c *Client) RouteStops(ctx context.Context, routeID int64) ([]domain.Stop, error) {
	var stops []domain.Stop
	err := c.query(ctx, resourceRoutes, fmt.Sprintf("/routes/%d/stops", routeID), nil, &stops)
	return stops, err
}

func (c *Client) Itinerary(ctx context.Context, slug string) (*domain.Itinerary, error) {
	var itinerary domain.Itinerary
	if err := c.query(ctx, resourceRoutes, "/routes/"+url.PathEscape(slug)+"/itinerary", nil, &itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// RouteMap - данные карты маршрута; day > 0 выделяет остановки дня
func (c *Client) RouteMap(ctx context.Context, slug string, day int) (*domain.RouteMap, error) {
	var params url.Values
	if day > 0 {
		params = url.Values{"day": {strconv.Itoa(day)}}
	}

	var m domain.RouteMap
	if err := c.query(ctx, resourceRoutes, "/routes/"+url.PathEscape(slug)+"/map", params, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) Stats(ctx context.Context) (*domain.Statistics, error) {
	var stats domain.Statistics
	if err := c.query(ctx, resourceStats, "/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SendChatMessage не кэшируется
func (c *Client) SendChatMessage(ctx context.Context, req dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	var resp dto.ChatMessageResponse
	if err := c.do(ctx, http.MethodPost, "/chatbot/messages", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SubmitContact(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	var resp dto.ContactResponse
	if err := c.do(ctx, http.MethodPost, "/contact", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
