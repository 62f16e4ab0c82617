package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
)

type contactRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewContactRepository создает новый экземпляр contact repository
func NewContactRepository(db *DB, logger *zap.Logger) repository.ContactRepository {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO contact_messages (name, email, subject, message) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		r.logger.Error("failed to store contact message", zap.Error(err))
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}
