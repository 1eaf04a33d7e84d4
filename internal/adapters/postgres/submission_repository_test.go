package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"listings-service/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	sql  string
	args []any
}

type fakeExecutor struct {
	calls []execCall
	err   error
}

func (f *fakeExecutor) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: arguments})
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func TestSaveInquiry(t *testing.T) {
	db := &fakeExecutor{}
	repo, err := NewSubmissionRepository(db)
	require.NoError(t, err)

	inquiry := &domain.Inquiry{
		ID:          uuid.New(),
		Name:        "Jane",
		Email:       "jane@example.com",
		InquiryType: domain.InquiryTypeApplication,
		Message:     "Hi",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.SaveInquiry(context.Background(), inquiry))

	require.Len(t, db.calls, 1)
	assert.True(t, strings.Contains(db.calls[0].sql, "INSERT INTO contact_submissions"))
	require.Len(t, db.calls[0].args, 10)
	assert.Equal(t, inquiry.ID, db.calls[0].args[0])
	assert.Equal(t, "application", db.calls[0].args[4])
}

func TestSaveInquiry_Error(t *testing.T) {
	repo, err := NewSubmissionRepository(&fakeExecutor{err: errors.New("connection refused")})
	require.NoError(t, err)

	err = repo.SaveInquiry(context.Background(), &domain.Inquiry{ID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save inquiry")
}

func TestSaveSubscriber_DuplicateIsNotAnError(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})
	repo, err := NewSubmissionRepository(&fakeExecutor{err: dup})
	require.NoError(t, err)

	assert.NoError(t, repo.SaveSubscriber(context.Background(), &domain.Subscriber{ID: uuid.New(), Email: "sam@example.com"}))
}

func TestSaveSubscriber_OtherError(t *testing.T) {
	repo, err := NewSubmissionRepository(&fakeExecutor{err: &pgconn.PgError{Code: "42P01"}})
	require.NoError(t, err)

	assert.Error(t, repo.SaveSubscriber(context.Background(), &domain.Subscriber{ID: uuid.New(), Email: "sam@example.com"}))
}

func TestEnsureSchema(t *testing.T) {
	db := &fakeExecutor{}
	repo, err := NewSubmissionRepository(db)
	require.NoError(t, err)

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.Len(t, db.calls, len(schemaStatements))

	_, err = NewSubmissionRepository(nil)
	assert.Error(t, err)
}
