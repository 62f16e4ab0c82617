package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/delivery/http/handler"
	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/pkg/errors"
)

func newListingApp(svc *MockListingService) *fiber.App {
	h := handler.NewListingHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Get("/listings", h.List)
	app.Get("/listings/:id/media", h.GetMedia)
	app.Get("/listings/:slug", h.GetBySlug)
	return app
}

func TestListingHandler_ListParsesFilter(t *testing.T) {
	svc := new(MockListingService)
	app := newListingApp(svc)

	categoryID := int64(2)
	featured := true
	want := domain.ListingFilter{
		CategoryID: &categoryID,
		Featured:   &featured,
		Region:     "Erongo",
		Search:     "beer",
	}
	svc.On("List", mock.Anything, want).Return([]domain.Listing{
		{ID: 1, Name: "Joe's Beerhouse", Slug: "joes-beerhouse"},
	}, nil)

	resp, env := doRequest(t, app, http.MethodGet, "/listings?categoryId=2&featured=true&region=Erongo&search=beer", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listings []domain.Listing
	require.NoError(t, json.Unmarshal(env.Data, &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "joes-beerhouse", listings[0].Slug)
	assert.EqualValues(t, 1, env.Meta["total"])
	svc.AssertExpectations(t)
}

func TestListingHandler_ListRejectsBadParams(t *testing.T) {
	svc := new(MockListingService)
	app := newListingApp(svc)

	resp, env := doRequest(t, app, http.MethodGet, "/listings?categoryId=abc&featured=maybe", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	fields, ok := env.Error.Details["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "categoryId")
	assert.Contains(t, fields, "featured")
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListingHandler_GetBySlugNotFound(t *testing.T) {
	svc := new(MockListingService)
	app := newListingApp(svc)

	svc.On("GetBySlug", mock.Anything, "missing").
		Return(nil, errors.RecoveryPath(errors.ErrListingNotFound, "/listings"))

	resp, env := doRequest(t, app, http.MethodGet, "/listings/missing", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "/listings", env.Error.Details["recovery_path"])
}

func TestListingHandler_GetMediaAddsDisplay(t *testing.T) {
	svc := new(MockListingService)
	app := newListingApp(svc)

	svc.On("GetMedia", mock.Anything, int64(7)).Return([]domain.Media{
		{ID: 1, MediaType: domain.MediaTypeVR, FileURL: "https://cdn.example.com/tour"},
	}, nil)

	resp, env := doRequest(t, app, http.MethodGet, "/listings/7/media", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var media []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &media))
	require.Len(t, media, 1)
	assert.Contains(t, media[0], "display")
}

func TestListingHandler_GetMediaBadID(t *testing.T) {
	svc := new(MockListingService)
	app := newListingApp(svc)

	resp, _ := doRequest(t, app, http.MethodGet, "/listings/0/media", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "GetMedia", mock.Anything, mock.Anything)
}
