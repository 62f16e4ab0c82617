package repository

import (
	"context"

	"github.com/tourism-portal/internal/domain"
)

// MediaRepository определяет методы для работы с медиа
type MediaRepository interface {
	// List возвращает медиа по фильтру, новые первыми
	List(ctx context.Context, filter domain.MediaFilter) ([]domain.Media, error)

	// GetByListing возвращает медиа объекта каталога
	GetByListing(ctx context.Context, listingID int64) ([]domain.Media, error)

	Create(ctx context.Context, media *domain.Media) error
	Delete(ctx context.Context, id int64) error
}
