package postgres_adapter

import (
	"context"
	"fmt"
)

// schemaStatements создают таблицы заявок, если их еще нет.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id                UUID PRIMARY KEY,
		name              TEXT NOT NULL,
		email             TEXT NOT NULL,
		phone             TEXT NOT NULL DEFAULT '',
		inquiry_type      TEXT NOT NULL,
		property_interest TEXT NOT NULL DEFAULT '',
		preferred_date    TEXT NOT NULL DEFAULT '',
		preferred_time    TEXT NOT NULL DEFAULT '',
		message           TEXT NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS contact_submissions_created_at_idx ON contact_submissions (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		first_name    TEXT NOT NULL DEFAULT '',
		subscribed_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS newsletter_subscribers_email_lower_idx ON newsletter_subscribers (lower(email))`,
}

// EnsureSchema применяет схему. Операции идемпотентны.
func (r *SubmissionRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
