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

var categoryCols = []string{"id", "name", "slug", "description", "icon", "display_order", "is_active", "created_at", "updated_at"}

func TestCategoryRepository_ListActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewCategoryRepository(db, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM categories WHERE is_active = TRUE ORDER BY display_order, name`).
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow(1, "Accommodation", "accommodation", "", "bed", 1, true, now, now).
			AddRow(2, "Restaurants", "restaurants", "", "utensils", 2, true, now, now))

	categories, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "accommodation", categories[0].Slug)
	assert.Equal(t, "utensils", categories[1].Icon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewCategoryRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT .+ FROM categories WHERE slug = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(categoryCols))

	_, err := repo.GetBySlug(context.Background(), "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCategoryNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewCategoryRepository(db, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs("Tours", "tours", "Guided tours", "compass", 4, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(9, now, now))

	category := &domain.Category{Name: "Tours", Slug: "tours", Description: "Guided tours", Icon: "compass", DisplayOrder: 4, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), category))
	assert.Equal(t, int64(9), category.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create_SlugConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewCategoryRepository(db, zap.NewNop())

	mock.ExpectQuery(`INSERT INTO categories`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "categories_slug_key"})

	err := repo.Create(context.Background(), &domain.Category{Name: "Tours", Slug: "tours"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "SLUG_CONFLICT", appErr.Code)
	assert.Equal(t, "tours", appErr.Details["slug"])
}

func TestCategoryRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewCategoryRepository(db, zap.NewNop())

	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.True(t, apperrors.Is(repo.Delete(context.Background(), 4), apperrors.ErrCategoryNotFound))
	assert.True(t, apperrors.Is(repo.Delete(context.Background(), 5), apperrors.ErrForeignKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}
