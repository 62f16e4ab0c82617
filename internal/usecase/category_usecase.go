package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

// CategoryUseCase - публичное чтение категорий
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

// NewCategoryUseCase создает новый экземпляр CategoryUseCase
func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// List возвращает активные категории
func (uc *CategoryUseCase) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if readCached(ctx, uc.cacheRepo, cacheKeyCategoriesActive, &categories, uc.logger) {
		return categories, nil
	}

	categories, err := uc.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	writeCached(ctx, uc.cacheRepo, cacheKeyCategoriesActive, categories, uc.cacheTTL, uc.logger)
	return categories, nil
}

// GetBySlug возвращает активную категорию по slug
func (uc *CategoryUseCase) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, errors.ErrCategoryNotFound) {
			return nil, errors.RecoveryPath(errors.ErrCategoryNotFound, "/categories")
		}
		return nil, err
	}
	if !category.IsActive {
		return nil, errors.RecoveryPath(errors.ErrCategoryNotFound, "/categories")
	}
	return category, nil
}
