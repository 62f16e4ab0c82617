package postgres

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

const listingColumns = `id, category_id, name, slug, description, short_description, location, region,
	address, phone, email, website, price_range, features, is_active, is_featured, view_count,
	created_at, updated_at`

type listingRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewListingRepository создает новый экземпляр listing repository
func NewListingRepository(db *DB, logger *zap.Logger) repository.ListingRepository {
	return &listingRepository{
		db:     db,
		logger: logger,
	}
}

// List возвращает объекты, подходящие под фильтр. Регион здесь не учитывается:
// сопоставление места с регионом делает справочник регионов.
func (r *listingRepository) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if !filter.IncludeInactive {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY is_featured DESC, name`

	listings := make([]domain.Listing, 0)
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		r.logger.Error("failed to list listings", zap.Error(err))
		return nil, fmt.Errorf("list listings: %w", err)
	}

	return listings, nil
}

func (r *listingRepository) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE slug = $1`

	var listing domain.Listing
	if err := r.db.GetContext(ctx, &listing, query, slug); err != nil {
		if isNoRows(err) {
			return nil, errors.ErrListingNotFound
		}
		return nil, fmt.Errorf("get listing %q: %w", slug, err)
	}

	return &listing, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	var listing domain.Listing
	if err := r.db.GetContext(ctx, &listing, query, id); err != nil {
		if isNoRows(err) {
			return nil, errors.ErrListingNotFound
		}
		return nil, fmt.Errorf("get listing %d: %w", id, err)
	}

	return &listing, nil
}

func (r *listingRepository) IncrementViewCount(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE listings SET view_count = view_count + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("increment listing views %d: %w", id, err)
	}
	return nil
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `
		INSERT INTO listings (category_id, name, slug, description, short_description, location, region,
			address, phone, email, website, price_range, features, is_active, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, view_count, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		listing.CategoryID, listing.Name, listing.Slug, listing.Description, listing.ShortDescription,
		listing.Location, listing.Region, listing.Address, listing.Phone, listing.Email,
		listing.Website, listing.PriceRange, listing.Features, listing.IsActive, listing.IsFeatured,
	).Scan(&listing.ID, &listing.ViewCount, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		return r.mapWriteError(err, listing, "create")
	}

	return nil
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	query := `
		UPDATE listings
		SET category_id = $2, name = $3, slug = $4, description = $5, short_description = $6,
		    location = $7, region = $8, address = $9, phone = $10, email = $11, website = $12,
		    price_range = $13, features = $14, is_active = $15, is_featured = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING view_count, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		listing.ID, listing.CategoryID, listing.Name, listing.Slug, listing.Description,
		listing.ShortDescription, listing.Location, listing.Region, listing.Address, listing.Phone,
		listing.Email, listing.Website, listing.PriceRange, listing.Features, listing.IsActive,
		listing.IsFeatured,
	).Scan(&listing.ViewCount, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return errors.ErrListingNotFound
		}
		return r.mapWriteError(err, listing, "update")
	}

	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete listing", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete listing %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete listing %d: %w", id, err)
	}
	if affected == 0 {
		return errors.ErrListingNotFound
	}

	return nil
}

func (r *listingRepository) mapWriteError(err error, listing *domain.Listing, op string) error {
	switch {
	case isUniqueViolation(err):
		return errors.ErrSlugConflict.WithDetails(map[string]interface{}{"slug": listing.Slug})
	case isForeignKeyViolation(err):
		return errors.ErrForeignKey.WithDetails(map[string]interface{}{"category_id": listing.CategoryID})
	}
	r.logger.Error("failed to write listing", zap.String("op", op), zap.String("slug", listing.Slug), zap.Error(err))
	return fmt.Errorf("%s listing: %w", op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
