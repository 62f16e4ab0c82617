package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCategoryRepositoryForTest creates a category repository with test database and logger
func NewCategoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CategoryRepository {
	return postgres.NewCategoryRepository(NewDBForTest(db, logger), logger)
}

// NewListingRepositoryForTest creates a listing repository with test database and logger
func NewListingRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ListingRepository {
	return postgres.NewListingRepository(NewDBForTest(db, logger), logger)
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	return postgres.NewRouteRepository(NewDBForTest(db, logger), logger)
}

// NewMediaRepositoryForTest creates a media repository with test database and logger
func NewMediaRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.MediaRepository {
	return postgres.NewMediaRepository(NewDBForTest(db, logger), logger)
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger), logger)
}
