package usecase

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/pkg/validator"
	"github.com/tourism-portal/internal/usecase/dto"
)

// AdminUseCase - CRUD категорий, объектов и медиа.
// После каждого успешного изменения сбрасываются кешированные списки
// затронутого ресурса и статистика, так что следующее чтение идёт в БД.
type AdminUseCase struct {
	categoryRepo repository.CategoryRepository
	listingRepo  repository.ListingRepository
	mediaRepo    repository.MediaRepository
	cacheRepo    repository.CacheRepository
	registry     *domain.RegionRegistry
	logger       *zap.Logger
}

// NewAdminUseCase создает новый экземпляр AdminUseCase
func NewAdminUseCase(
	categoryRepo repository.CategoryRepository,
	listingRepo repository.ListingRepository,
	mediaRepo repository.MediaRepository,
	cacheRepo repository.CacheRepository,
	registry *domain.RegionRegistry,
	logger *zap.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		categoryRepo: categoryRepo,
		listingRepo:  listingRepo,
		mediaRepo:    mediaRepo,
		cacheRepo:    cacheRepo,
		registry:     registry,
		logger:       logger,
	}
}

// ListCategories возвращает все категории, включая неактивные
func (uc *AdminUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("admin list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory создает категорию
func (uc *AdminUseCase) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*domain.Category, error) {
	if err := validator.Validate(req); err != nil {
		return nil, withInput(err, req)
	}

	category := &domain.Category{}
	applyCategoryRequest(category, req)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, withInput(err, req)
	}

	uc.logger.Info("Category created", zap.Int64("id", category.ID), zap.String("slug", category.Slug))
	uc.invalidate(ctx, cachePrefixCategories)
	return category, nil
}

// UpdateCategory полностью заменяет поля категории
func (uc *AdminUseCase) UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (*domain.Category, error) {
	if err := validator.Validate(req); err != nil {
		return nil, withInput(err, req)
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCategoryRequest(category, req)

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, withInput(err, req)
	}

	uc.logger.Info("Category updated", zap.Int64("id", id))
	// Неактивная категория влияет и на публичные списки объектов
	uc.invalidate(ctx, cachePrefixCategories, cachePrefixListings)
	return category, nil
}

// DeleteCategory удаляет категорию. Без подтверждения ничего не меняется.
func (uc *AdminUseCase) DeleteCategory(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return confirmationRequired("category", id)
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Category deleted", zap.Int64("id", id))
	uc.invalidate(ctx, cachePrefixCategories, cachePrefixListings)
	return nil
}

// ListListings возвращает объекты по фильтру, включая неактивные
func (uc *AdminUseCase) ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	filter.IncludeInactive = true

	rows, err := uc.listingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("admin list listings: %w", err)
	}
	return domain.FilterListings(rows, filter, uc.registry), nil
}

// CreateListing создает объект каталога
func (uc *AdminUseCase) CreateListing(ctx context.Context, req dto.ListingRequest) (*domain.Listing, error) {
	if err := validator.Validate(req); err != nil {
		return nil, withInput(err, req)
	}

	listing := &domain.Listing{}
	applyListingRequest(listing, req)

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, withInput(err, req)
	}

	uc.logger.Info("Listing created", zap.Int64("id", listing.ID), zap.String("slug", listing.Slug))
	uc.invalidate(ctx, cachePrefixListings)
	return listing, nil
}

// UpdateListing полностью заменяет поля объекта. Счётчик просмотров сохраняется.
func (uc *AdminUseCase) UpdateListing(ctx context.Context, id int64, req dto.ListingRequest) (*domain.Listing, error) {
	if err := validator.Validate(req); err != nil {
		return nil, withInput(err, req)
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyListingRequest(listing, req)

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, withInput(err, req)
	}

	uc.logger.Info("Listing updated", zap.Int64("id", id))
	uc.invalidate(ctx, cachePrefixListings)
	return listing, nil
}

// DeleteListing удаляет объект вместе с его медиа
func (uc *AdminUseCase) DeleteListing(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return confirmationRequired("listing", id)
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Listing deleted", zap.Int64("id", id))
	uc.invalidate(ctx, cachePrefixListings)
	return nil
}

// ListMedia возвращает медиа по фильтру
func (uc *AdminUseCase) ListMedia(ctx context.Context, filter domain.MediaFilter) ([]domain.Media, error) {
	media, err := uc.mediaRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("admin list media: %w", err)
	}
	return media, nil
}

// CreateMedia регистрирует медиафайл по URL
func (uc *AdminUseCase) CreateMedia(ctx context.Context, req dto.MediaRequest) (*domain.Media, error) {
	if err := validator.Validate(req); err != nil {
		return nil, withInput(err, req)
	}

	mediaType, _ := domain.ParseMediaType(req.MediaType)
	media := &domain.Media{
		ListingID:    req.ListingID,
		MediaType:    mediaType,
		FileURL:      req.FileURL,
		ThumbnailURL: req.ThumbnailURL,
		Title:        req.Title,
		Description:  req.Description,
		FileSize:     req.FileSize,
	}

	if err := uc.mediaRepo.Create(ctx, media); err != nil {
		return nil, withInput(err, req)
	}

	uc.logger.Info("Media created", zap.Int64("id", media.ID), zap.String("type", string(media.MediaType)))
	uc.invalidate(ctx)
	return media, nil
}

// DeleteMedia удаляет медиафайл
func (uc *AdminUseCase) DeleteMedia(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return confirmationRequired("media", id)
	}

	if err := uc.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Media deleted", zap.Int64("id", id))
	uc.invalidate(ctx)
	return nil
}

// invalidate сбрасывает кеш по префиксам и статистику. Ошибки кеша только логируются.
func (uc *AdminUseCase) invalidate(ctx context.Context, prefixes ...string) {
	for _, prefix := range prefixes {
		n, err := uc.cacheRepo.DeleteByPrefix(ctx, prefix)
		if err != nil {
			uc.logger.Warn("Failed to invalidate cache", zap.String("prefix", prefix), zap.Error(err))
			continue
		}
		uc.logger.Debug("Cache invalidated", zap.String("prefix", prefix), zap.Int("keys", n))
	}
	if err := uc.cacheRepo.Delete(ctx, statsCacheKey); err != nil {
		uc.logger.Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}

func applyCategoryRequest(c *domain.Category, req dto.CategoryRequest) {
	c.Name = req.Name
	c.Slug = req.Slug
	c.Description = req.Description
	c.Icon = req.Icon
	c.DisplayOrder = req.DisplayOrder
	c.IsActive = req.IsActive == nil || *req.IsActive
}

func applyListingRequest(l *domain.Listing, req dto.ListingRequest) {
	l.CategoryID = req.CategoryID
	l.Name = req.Name
	l.Slug = req.Slug
	l.Description = req.Description
	l.ShortDescription = req.ShortDescription
	l.Location = req.Location
	l.Region = req.Region
	l.Address = req.Address
	l.Phone = req.Phone
	l.Email = req.Email
	l.Website = req.Website
	l.PriceRange = req.PriceRange
	l.Features = domain.ParseStringList(req.Features)
	l.IsActive = req.IsActive == nil || *req.IsActive
	l.IsFeatured = req.IsFeatured
}

// withInput добавляет исходный запрос к деталям клиентской ошибки, чтобы форма сохранила ввод
func withInput(err error, input interface{}) error {
	appErr, ok := errors.As(err)
	if !ok || appErr.StatusCode >= http.StatusInternalServerError {
		return err
	}
	return appErr.WithDetails(map[string]interface{}{"input": input})
}

func confirmationRequired(resource string, id int64) error {
	return errors.ErrConfirmationRequired.WithDetails(map[string]interface{}{
		"resource": resource,
		"id":       id,
	})
}
