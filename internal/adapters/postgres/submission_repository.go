package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// Executor - часть *pgxpool.Pool, которой пользуется репозиторий.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// SubmissionRepository хранит заявки с формы контактов и подписчиков рассылки.
type SubmissionRepository struct {
	db Executor
}

func NewSubmissionRepository(db Executor) (*SubmissionRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("postgres executor cannot be nil")
	}
	return &SubmissionRepository{db: db}, nil
}

func (r *SubmissionRepository) SaveInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "PostgresSubmissionRepository",
		"method":     "SaveInquiry",
		"inquiry_id": inquiry.ID.String(),
	})

	query := `INSERT INTO contact_submissions
		(id, name, email, phone, inquiry_type, property_interest, preferred_date, preferred_time, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		string(inquiry.InquiryType),
		inquiry.PropertyInterest,
		inquiry.PreferredDate,
		inquiry.PreferredTime,
		inquiry.Message,
		inquiry.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save inquiry", err, nil)
		return fmt.Errorf("failed to save inquiry: %w", err)
	}

	repoLogger.Debug("Inquiry saved.", nil)
	return nil
}

// SaveSubscriber сохраняет подписчика. Повторная подписка того же адреса
// не считается ошибкой.
func (r *SubmissionRepository) SaveSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":     "PostgresSubmissionRepository",
		"method":        "SaveSubscriber",
		"subscriber_id": subscriber.ID.String(),
	})

	query := `INSERT INTO newsletter_subscribers (id, email, first_name, subscribed_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, subscriber.ID, subscriber.Email, subscriber.FirstName, subscriber.SubscribedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			repoLogger.Warn("Subscriber already exists, operation considered successful.", nil)
			return nil
		}
		repoLogger.Error("Failed to save subscriber", err, nil)
		return fmt.Errorf("failed to save subscriber: %w", err)
	}

	repoLogger.Debug("Subscriber saved.", nil)
	return nil
}
