package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

// ListingUseCase - публичное чтение каталога
type ListingUseCase struct {
	listingRepo repository.ListingRepository
	mediaRepo   repository.MediaRepository
	cacheRepo   repository.CacheRepository
	registry    *domain.RegionRegistry
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewListingUseCase создает новый экземпляр ListingUseCase
func NewListingUseCase(
	listingRepo repository.ListingRepository,
	mediaRepo repository.MediaRepository,
	cacheRepo repository.CacheRepository,
	registry *domain.RegionRegistry,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		mediaRepo:   mediaRepo,
		cacheRepo:   cacheRepo,
		registry:    registry,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// List возвращает активные объекты по фильтру.
// БД фильтрует по категории, признаку featured и строке поиска,
// регион проверяется через справочник регионов.
func (uc *ListingUseCase) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	filter.IncludeInactive = false
	key := listingsCacheKey(filter)

	var listings []domain.Listing
	if readCached(ctx, uc.cacheRepo, key, &listings, uc.logger) {
		return listings, nil
	}

	rows, err := uc.listingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	listings = domain.FilterListings(rows, filter, uc.registry)

	writeCached(ctx, uc.cacheRepo, key, listings, uc.cacheTTL, uc.logger)
	return listings, nil
}

// GetBySlug возвращает активный объект и засчитывает просмотр
func (uc *ListingUseCase) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	listing, err := uc.listingRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, errors.ErrListingNotFound) {
			return nil, errors.RecoveryPath(errors.ErrListingNotFound, "/listings")
		}
		return nil, err
	}
	if !listing.IsActive {
		return nil, errors.RecoveryPath(errors.ErrListingNotFound, "/listings")
	}

	// Счётчик просмотров - best effort
	if err := uc.listingRepo.IncrementViewCount(ctx, listing.ID); err != nil {
		uc.logger.Warn("Failed to increment listing views", zap.Int64("listing_id", listing.ID), zap.Error(err))
	} else {
		listing.ViewCount++
	}

	return listing, nil
}

// GetMedia возвращает медиа активного объекта
func (uc *ListingUseCase) GetMedia(ctx context.Context, listingID int64) ([]domain.Media, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, errors.ErrListingNotFound) {
			return nil, errors.RecoveryPath(errors.ErrListingNotFound, "/listings")
		}
		return nil, err
	}
	if !listing.IsActive {
		return nil, errors.RecoveryPath(errors.ErrListingNotFound, "/listings")
	}

	media, err := uc.mediaRepo.GetByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing media: %w", err)
	}
	return media, nil
}

// listingsCacheKey строит детерминированный ключ кеша по фильтру
func listingsCacheKey(filter domain.ListingFilter) string {
	values := url.Values{}
	if filter.CategoryID != nil {
		values.Set("category", strconv.FormatInt(*filter.CategoryID, 10))
	}
	if region := strings.ToLower(strings.TrimSpace(filter.Region)); region != "" {
		values.Set("region", region)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		values.Set("search", search)
	}
	if filter.Featured != nil {
		values.Set("featured", strconv.FormatBool(*filter.Featured))
	}
	return cachePrefixListings + "list?" + values.Encode()
}
