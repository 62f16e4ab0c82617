package repository

import (
	"context"

	"github.com/tourism-portal/internal/domain"
)

// ListingRepository определяет методы для работы с объектами каталога
type ListingRepository interface {
	// List возвращает объекты по фильтру. Фильтр по региону применяется уровнем выше
	List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)

	// GetBySlug возвращает объект по slug
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, error)

	// GetByID возвращает объект по ID
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)

	// IncrementViewCount увеличивает счётчик просмотров
	IncrementViewCount(ctx context.Context, id int64) error

	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id int64) error
}
