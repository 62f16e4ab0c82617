package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	apperrors "github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/repository/postgres"
)

var listingCols = []string{
	"id", "category_id", "name", "slug", "description", "short_description", "location", "region",
	"address", "phone", "email", "website", "price_range", "features", "is_active", "is_featured",
	"view_count", "created_at", "updated_at",
}

func listingRow(rows *sqlmock.Rows, id int64, name, slug, features string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, 1, name, slug, "desc", "", "Windhoek", "Khomas",
		"", "", "", "", "$$", features, true, false, 0, now, now)
}

func TestListingRepository_List_BuildsConjunctiveFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewListingRepository(db, zap.NewNop())

	categoryID := int64(2)
	featured := true

	mock.ExpectQuery(`WHERE is_active = TRUE AND category_id = \$1 AND is_featured = \$2 AND \(name ILIKE \$3 OR description ILIKE \$3\)`).
		WithArgs(categoryID, featured, `%100\%%`).
		WillReturnRows(listingRow(sqlmock.NewRows(listingCols), 1, "Joe's Beerhouse", "joes-beerhouse", `["WiFi","Parking"]`))

	listings, err := repo.List(context.Background(), domain.ListingFilter{
		CategoryID: &categoryID,
		Featured:   &featured,
		Search:     " 100% ",
	})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, domain.StringList{"WiFi", "Parking"}, listings[0].Features)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_List_MalformedFeaturesDegrade(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewListingRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT .+ FROM listings WHERE is_active = TRUE ORDER BY`).
		WillReturnRows(listingRow(sqlmock.NewRows(listingCols), 1, "Broken", "broken", `["WiFi"`))

	listings, err := repo.List(context.Background(), domain.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.NotNil(t, listings[0].Features)
	assert.Empty(t, listings[0].Features)
}

func TestListingRepository_List_IncludeInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewListingRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT .+ FROM listings ORDER BY is_featured DESC, name`).
		WillReturnRows(sqlmock.NewRows(listingCols))

	listings, err := repo.List(context.Background(), domain.ListingFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewListingRepository(db, zap.NewNop())

	mock.ExpectQuery(`FROM listings WHERE slug = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(listingCols))

	_, err := repo.GetBySlug(context.Background(), "nope")
	assert.True(t, apperrors.Is(err, apperrors.ErrListingNotFound))
}

func TestListingRepository_Create_MapsConstraintErrors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewListingRepository(db, zap.NewNop())

	mock.ExpectQuery(`INSERT INTO listings`).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(`INSERT INTO listings`).WillReturnError(&pgconn.PgError{Code: "23503"})

	listing := &domain.Listing{CategoryID: 77, Name: "Dup", Slug: "dup", Features: domain.StringList{"WiFi"}}

	err := repo.Create(context.Background(), listing)
	assert.True(t, apperrors.Is(err, apperrors.ErrSlugConflict))

	err = repo.Create(context.Background(), listing)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrForeignKey.Code, appErr.Code)
	assert.Equal(t, int64(77), appErr.Details["category_id"])
}

func TestListingRepository_Create_EncodesFeatures(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewListingRepository(db, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO listings`).
		WithArgs(int64(1), "Lodge", "lodge", "", "", "", "", "", "", "", "", "", `["WiFi","Pool"]`, true, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "view_count", "created_at", "updated_at"}).AddRow(5, 0, now, now))

	listing := &domain.Listing{CategoryID: 1, Name: "Lodge", Slug: "lodge", Features: domain.StringList{"WiFi", "Pool"}, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), listing))
	assert.Equal(t, int64(5), listing.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_IncrementViewCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewListingRepository(db, zap.NewNop())

	mock.ExpectExec(`UPDATE listings SET view_count = view_count \+ 1 WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrementViewCount(context.Background(), 8))
	assert.NoError(t, mock.ExpectationsWereMet())
}
