package handler

import (
	"context"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/usecase"
	"github.com/tourism-portal/internal/usecase/dto"
)

// Интерфейсы use case, которые нужны обработчикам.
// Реализуются структурами из пакета usecase.

type RegionService interface {
	List() []domain.Region
	Get(id string) (*domain.Region, error)
	Resolve(location string) dto.RegionResolveResponse
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

type ListingService interface {
	List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, error)
	GetMedia(ctx context.Context, listingID int64) ([]domain.Media, error)
}

type RouteService interface {
	List(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Route, error)
	GetStops(ctx context.Context, routeID int64) ([]domain.Stop, error)
	Itinerary(ctx context.Context, slug string) (*domain.Itinerary, error)
	Map(ctx context.Context, slug string, day int) (*domain.RouteMap, error)
}

type AdminService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64, confirmed bool) error

	ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	CreateListing(ctx context.Context, req dto.ListingRequest) (*domain.Listing, error)
	UpdateListing(ctx context.Context, id int64, req dto.ListingRequest) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id int64, confirmed bool) error

	ListMedia(ctx context.Context, filter domain.MediaFilter) ([]domain.Media, error)
	CreateMedia(ctx context.Context, req dto.MediaRequest) (*domain.Media, error)
	DeleteMedia(ctx context.Context, id int64, confirmed bool) error
}

type ChatbotService interface {
	SendMessage(ctx context.Context, req dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *usecase.Claims) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, req dto.PasswordResetConfirmRequest) error
}

type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error)
}

type StatsService interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
