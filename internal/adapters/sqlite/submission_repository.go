package sqlite_adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/mattn/go-sqlite3"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		email             TEXT NOT NULL,
		phone             TEXT NOT NULL DEFAULT '',
		inquiry_type      TEXT NOT NULL,
		property_interest TEXT NOT NULL DEFAULT '',
		preferred_date    TEXT NOT NULL DEFAULT '',
		preferred_time    TEXT NOT NULL DEFAULT '',
		message           TEXT NOT NULL,
		created_at        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		first_name    TEXT NOT NULL DEFAULT '',
		subscribed_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS newsletter_subscribers_email_lower_idx ON newsletter_subscribers (lower(email))`,
}

// SubmissionRepository - файловое хранилище заявок для локальной разработки.
type SubmissionRepository struct {
	db *sql.DB
}

// Open открывает (или создает) файл базы и применяет схему.
func Open(ctx context.Context, path string) (*SubmissionRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// sqlite не любит параллельных писателей
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
		}
	}

	return &SubmissionRepository{db: db}, nil
}

func (r *SubmissionRepository) SaveInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "SqliteSubmissionRepository",
		"method":     "SaveInquiry",
		"inquiry_id": inquiry.ID.String(),
	})

	_, err := r.db.ExecContext(ctx, `INSERT INTO contact_submissions
		(id, name, email, phone, inquiry_type, property_interest, preferred_date, preferred_time, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inquiry.ID.String(),
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		string(inquiry.InquiryType),
		inquiry.PropertyInterest,
		inquiry.PreferredDate,
		inquiry.PreferredTime,
		inquiry.Message,
		inquiry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		repoLogger.Error("Failed to save inquiry", err, nil)
		return fmt.Errorf("failed to save inquiry: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) SaveSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":     "SqliteSubmissionRepository",
		"method":        "SaveSubscriber",
		"subscriber_id": subscriber.ID.String(),
	})

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscribers (id, email, first_name, subscribed_at) VALUES (?, ?, ?, ?)`,
		subscriber.ID.String(),
		subscriber.Email,
		subscriber.FirstName,
		subscriber.SubscribedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			repoLogger.Warn("Subscriber already exists, operation considered successful.", nil)
			return nil
		}
		repoLogger.Error("Failed to save subscriber", err, nil)
		return fmt.Errorf("failed to save subscriber: %w", err)
	}
	return nil
}

// CountInquiries используется в тестах и диагностике.
func (r *SubmissionRepository) CountInquiries(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return n, nil
}

func (r *SubmissionRepository) CountSubscribers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return n, nil
}

func (r *SubmissionRepository) Close() error {
	return r.db.Close()
}
