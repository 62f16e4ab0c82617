package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/usecase"
	"github.com/tourism-portal/internal/usecase/dto"
)

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingService) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) GetMedia(ctx context.Context, listingID int64) ([]domain.Media, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Media), args.Error(1)
}

type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) List(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteService) GetBySlug(ctx context.Context, slug string) (*domain.Route, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteService) GetStops(ctx context.Context, routeID int64) ([]domain.Stop, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stop), args.Error(1)
}

func (m *MockRouteService) Itinerary(ctx context.Context, slug string) (*domain.Itinerary, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func (m *MockRouteService) Map(ctx context.Context, slug string, day int) (*domain.RouteMap, error) {
	args := m.Called(ctx, slug, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteMap), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockAdminService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockAdminService) UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockAdminService) DeleteCategory(ctx context.Context, id int64, confirmed bool) error {
	return m.Called(ctx, id, confirmed).Error(0)
}

func (m *MockAdminService) ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockAdminService) CreateListing(ctx context.Context, req dto.ListingRequest) (*domain.Listing, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockAdminService) UpdateListing(ctx context.Context, id int64, req dto.ListingRequest) (*domain.Listing, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockAdminService) DeleteListing(ctx context.Context, id int64, confirmed bool) error {
	return m.Called(ctx, id, confirmed).Error(0)
}

func (m *MockAdminService) ListMedia(ctx context.Context, filter domain.MediaFilter) ([]domain.Media, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Media), args.Error(1)
}

func (m *MockAdminService) CreateMedia(ctx context.Context, req dto.MediaRequest) (*domain.Media, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func (m *MockAdminService) DeleteMedia(ctx context.Context, id int64, confirmed bool) error {
	return m.Called(ctx, id, confirmed).Error(0)
}

type MockChatbotService struct {
	mock.Mock
}

func (m *MockChatbotService) SendMessage(ctx context.Context, req dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatMessageResponse), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *usecase.Claims) error {
	return m.Called(ctx, claims).Error(0)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ConfirmPasswordReset(ctx context.Context, req dto.PasswordResetConfirmRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContactResponse), args.Error(1)
}
