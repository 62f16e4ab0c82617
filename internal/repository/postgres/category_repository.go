package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

const categoryColumns = `id, name, slug, description, icon, display_order, is_active, created_at, updated_at`

type categoryRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCategoryRepository создает новый экземпляр category repository
func NewCategoryRepository(db *DB, logger *zap.Logger) repository.CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, name`

	categories := make([]domain.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		r.logger.Error("failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	var category domain.Category
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		if isNoRows(err) {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

	var category domain.Category
	if err := r.db.GetContext(ctx, &category, query, slug); err != nil {
		if isNoRows(err) {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category %q: %w", slug, err)
	}

	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (name, slug, description, icon, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		category.Name, category.Slug, category.Description,
		category.Icon, category.DisplayOrder, category.IsActive,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrSlugConflict.WithDetails(map[string]interface{}{"slug": category.Slug})
		}
		r.logger.Error("failed to create category", zap.String("slug", category.Slug), zap.Error(err))
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, icon = $5,
		    display_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
		category.Icon, category.DisplayOrder, category.IsActive,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		switch {
		case isNoRows(err):
			return errors.ErrCategoryNotFound
		case isUniqueViolation(err):
			return errors.ErrSlugConflict.WithDetails(map[string]interface{}{"slug": category.Slug})
		}
		r.logger.Error("failed to update category", zap.Int64("id", category.ID), zap.Error(err))
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrForeignKey.WithMessage("Category still has listings")
		}
		r.logger.Error("failed to delete category", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	if affected == 0 {
		return errors.ErrCategoryNotFound
	}

	return nil
}
