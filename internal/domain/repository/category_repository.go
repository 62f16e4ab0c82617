package repository

import (
	"context"

	"github.com/tourism-portal/internal/domain"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	// List возвращает категории в порядке display_order. activeOnly - только активные
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)

	// GetByID возвращает категорию по ID
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// GetBySlug возвращает категорию по slug
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)

	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}
