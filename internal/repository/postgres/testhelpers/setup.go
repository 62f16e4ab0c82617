package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/repository/postgres"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к тестовой базе и применяет встроенные миграции.
// Если база недоступна, тест пропускается.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5433"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "tourism_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", connStr)
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	logger := zap.NewNop()
	if err := postgres.Migrate(postgres.NewDBForTest(db, logger), postgres.MigrateUp, 0, logger); err != nil {
		db.Close()
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return &TestDB{
		DB:     db,
		Logger: logger,
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup удаляет данные, созданные тестами. Сид-данные миграций не трогаются.
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	statements := []string{
		"DELETE FROM media",
		"DELETE FROM listings WHERE slug LIKE 'test-%'",
		"DELETE FROM categories WHERE slug LIKE 'test-%'",
		"DELETE FROM chat_messages",
		"DELETE FROM conversations",
		"DELETE FROM contact_messages",
		"DELETE FROM users WHERE email LIKE '%@test.local'",
	}

	for _, stmt := range statements {
		if _, err := tdb.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("cleanup %q: %w", stmt, err)
		}
	}

	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
