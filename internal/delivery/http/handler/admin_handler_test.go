package handler_test

import (
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
	"github.com/tourism-portal/internal/usecase/dto"
)

func newAdminApp(svc *MockAdminService) *fiber.App {
	h := handler.NewAdminHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Get("/admin/categories", h.ListCategories)
	app.Post("/admin/categories", h.CreateCategory)
	app.Put("/admin/categories/:id", h.UpdateCategory)
	app.Delete("/admin/categories/:id", h.DeleteCategory)
	app.Get("/admin/listings", h.ListListings)
	app.Post("/admin/listings", h.CreateListing)
	app.Delete("/admin/listings/:id", h.DeleteListing)
	app.Get("/admin/media", h.ListMedia)
	app.Delete("/admin/media/:id", h.DeleteMedia)
	return app
}

func TestAdminHandler_CreateCategory(t *testing.T) {
	svc := new(MockAdminService)
	app := newAdminApp(svc)

	req := dto.CategoryRequest{Name: "Tours", Slug: "tours"}
	svc.On("CreateCategory", mock.Anything, req).Return(&domain.Category{ID: 9, Name: "Tours", Slug: "tours"}, nil)

	resp, env := doRequest(t, app, http.MethodPost, "/admin/categories", `{"name":"Tours","slug":"tours"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"slug":"tours"`)
	svc.AssertExpectations(t)
}

func TestAdminHandler_CreateCategoryMalformedBody(t *testing.T) {
	svc := new(MockAdminService)
	app := newAdminApp(svc)

	resp, env := doRequest(t, app, http.MethodPost, "/admin/categories", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	svc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestAdminHandler_ValidationErrorEchoesInput(t *testing.T) {
	svc := new(MockAdminService)
	app := newAdminApp(svc)

	req := dto.ListingRequest{Name: "No category"}
	svc.On("CreateListing", mock.Anything, req).Return(nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"fields": map[string]interface{}{"category_id": "is required"},
		"input":  req,
	}))

	resp, env := doRequest(t, app, http.MethodPost, "/admin/listings", `{"name":"No category"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	input, ok := env.Error.Details["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "No category", input["name"])
}

func TestAdminHandler_DeleteRequiresConfirmation(t *testing.T) {
	svc := new(MockAdminService)
	app := newAdminApp(svc)

	svc.On("DeleteListing", mock.Anything, int64(5), false).Return(errors.ErrConfirmationRequired)
	svc.On("DeleteListing", mock.Anything, int64(5), true).Return(nil)

	resp, env := doRequest(t, app, http.MethodDelete, "/admin/listings/5", "")
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFIRMATION_REQUIRED", env.Error.Code)

	resp, _ = doRequest(t, app, http.MethodDelete, "/admin/listings/5?confirm=true", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	svc.AssertExpectations(t)
}

func TestAdminHandler_DeleteCategoryNotFound(t *testing.T) {
	svc := new(MockAdminService)
	app := newAdminApp(svc)

	svc.On("DeleteCategory", mock.Anything, int64(99), true).Return(errors.ErrCategoryNotFound)

	resp, _ := doRequest(t, app, http.MethodDelete, "/admin/categories/99?confirm=true", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminHandler_ListMediaFilter(t *testing.T) {
	svc := new(MockAdminService)
	app := newAdminApp(svc)

	svc.On("ListMedia", mock.Anything, domain.MediaFilter{
		ListingIDs: []int64{1, 2},
		MediaType:  domain.MediaTypePhoto,
	}).Return([]domain.Media{{ID: 3, MediaType: domain.MediaTypePhoto}}, nil)

	resp, env := doRequest(t, app, http.MethodGet, "/admin/media?listingIds=1,2&type=photo", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, env.Meta["total"])

	resp, _ = doRequest(t, app, http.MethodGet, "/admin/media?listingIds=1,x", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	svc.AssertNumberOfCalls(t, "ListMedia", 1)
}
