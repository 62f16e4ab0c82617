package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

const mediaColumns = `id, listing_id, media_type, file_url, thumbnail_url, title, description, file_size, created_at`

type mediaRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewMediaRepository создает новый экземпляр media repository
func NewMediaRepository(db *DB, logger *zap.Logger) repository.MediaRepository {
	return &mediaRepository{
		db:     db,
		logger: logger,
	}
}

func (r *mediaRepository) List(ctx context.Context, filter domain.MediaFilter) ([]domain.Media, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if len(filter.ListingIDs) > 0 {
		args = append(args, pq.Array(filter.ListingIDs))
		conditions = append(conditions, fmt.Sprintf("listing_id = ANY($%d)", len(args)))
	}
	if filter.MediaType != "" {
		args = append(args, string(filter.MediaType))
		conditions = append(conditions, fmt.Sprintf("media_type = $%d", len(args)))
	}

	query := `SELECT ` + mediaColumns + ` FROM media`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	media := make([]domain.Media, 0)
	if err := r.db.SelectContext(ctx, &media, query, args...); err != nil {
		r.logger.Error("failed to list media", zap.Error(err))
		return nil, fmt.Errorf("list media: %w", err)
	}

	return media, nil
}

func (r *mediaRepository) GetByListing(ctx context.Context, listingID int64) ([]domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE listing_id = $1 ORDER BY created_at, id`

	media := make([]domain.Media, 0)
	if err := r.db.SelectContext(ctx, &media, query, listingID); err != nil {
		return nil, fmt.Errorf("get media for listing %d: %w", listingID, err)
	}

	return media, nil
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (listing_id, media_type, file_url, thumbnail_url, title, description, file_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		media.ListingID, string(media.MediaType), media.FileURL, media.ThumbnailURL,
		media.Title, media.Description, media.FileSize,
	).Scan(&media.ID, &media.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrForeignKey.WithDetails(map[string]interface{}{"listing_id": media.ListingID})
		}
		r.logger.Error("failed to create media", zap.Error(err))
		return fmt.Errorf("create media: %w", err)
	}

	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete media", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete media %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete media %d: %w", id, err)
	}
	if affected == 0 {
		return errors.ErrMediaNotFound
	}

	return nil
}
