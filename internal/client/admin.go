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

// ConfirmFunc спрашивает подтверждение удаления. false отменяет удаление.
type ConfirmFunc func(resource string, id int64) bool

// MediaQuery - фильтр админского списка медиа
type MediaQuery struct {
	ListingIDs []int64
	Type       domain.MediaType
}

func (q MediaQuery) values() url.Values {
	v := url.Values{}
	if len(q.ListingIDs) > 0 {
		ids := make([]string, 0, len(q.ListingIDs))
		for _, id := range q.ListingIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		v.Set("listingIds", strings.Join(ids, ","))
	}
	if q.Type != "" {
		v.Set("type", string(q.Type))
	}
	return v
}

// Какие ресурсы кэша затрагивает изменение
var (
	categoryDependents = []string{resourceCategories, resourceListings, resourceStats}
	listingDependents  = []string{resourceListings, resourceMedia, resourceStats}
	mediaDependents    = []string{resourceMedia, resourceStats}
)

func (c *Client) AdminCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var categories []dto.CategoryResponse
	err := c.query(ctx, resourceCategories, "/admin/categories", nil, &categories)
	return categories, err
}

func (c *Client) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*domain.Category, error) {
	var category domain.Category
	if err := c.mutate(ctx, http.MethodPost, "/admin/categories", req, &category, categoryDependents); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (*domain.Category, error) {
	var category domain.Category
	if err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("/admin/categories/%d", id), req, &category, categoryDependents); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return c.remove(ctx, resourceCategories, id, confirm, categoryDependents)
}

// AdminListings - все объекты, включая неактивные
func (c *Client) AdminListings(ctx context.Context, q ListingQuery) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := c.query(ctx, resourceListings, "/admin/listings", q.values(), &listings)
	return listings, err
}

func (c *Client) CreateListing(ctx context.Context, req dto.ListingRequest) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.mutate(ctx, http.MethodPost, "/admin/listings", req, &listing, listingDependents); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *Client) UpdateListing(ctx context.Context, id int64, req dto.ListingRequest) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("/admin/listings/%d", id), req, &listing, listingDependents); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *Client) DeleteListing(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return c.remove(ctx, resourceListings, id, confirm, listingDependents)
}

func (c *Client) AdminMedia(ctx context.Context, q MediaQuery) ([]dto.MediaResponse, error) {
	var media []dto.MediaResponse
	err := c.query(ctx, resourceMedia, "/admin/media", q.values(), &media)
	return media, err
}

func (c *Client) CreateMedia(ctx context.Context, req dto.MediaRequest) (*domain.Media, error) {
	var media domain.Media
	if err := c.mutate(ctx, http.MethodPost, "/admin/media", req, &media, mediaDependents); err != nil {
		return nil, err
	}
	return &media, nil
}

func (c *Client) DeleteMedia(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return c.remove(ctx, resourceMedia, id, confirm, mediaDependents)
}

func (c *Client) mutate(ctx context.Context, method, path string, body, out interface{}, dependents []string) error {
	if err := c.do(ctx, method, path, nil, body, out); err != nil {
		return err
	}
	c.Invalidate(dependents...)
	return nil
}

// remove удаляет запись только после подтверждения и отправляет confirm=true
func (c *Client) remove(ctx context.Context, resource string, id int64, confirm ConfirmFunc, dependents []string) error {
	if confirm == nil || !confirm(resource, id) {
		return ErrDeleteDeclined
	}

	path := fmt.Sprintf("/admin/%s/%d", resource, id)
	if err := c.do(ctx, http.MethodDelete, path, url.Values{"confirm": {"true"}}, nil, nil); err != nil {
		return err
	}
	c.Invalidate(dependents...)
	return nil
}
