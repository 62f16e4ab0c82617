package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// InsertCategory создаёт категорию и возвращает её ID
func InsertCategory(ctx context.Context, db *sqlx.DB, slug, name string) (int64, error) {
	var id int64
	err := db.QueryRowxContext(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`, name, slug,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category %s: %w", slug, err)
	}
	return id, nil
}

// InsertListing создаёт активный объект каталога и возвращает его ID
func InsertListing(ctx context.Context, db *sqlx.DB, categoryID int64, slug, name, location, features string) (int64, error) {
	var id int64
	err := db.QueryRowxContext(ctx,
		`INSERT INTO listings (category_id, name, slug, location, features) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		categoryID, name, slug, location, features,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert listing %s: %w", slug, err)
	}
	return id, nil
}

// RouteIDBySlug возвращает ID маршрута из сид-данных
func RouteIDBySlug(ctx context.Context, db *sqlx.DB, slug string) (int64, error) {
	var id int64
	if err := db.GetContext(ctx, &id, `SELECT id FROM routes WHERE slug = $1`, slug); err != nil {
		return 0, fmt.Errorf("get route id %s: %w", slug, err)
	}
	return id, nil
}
