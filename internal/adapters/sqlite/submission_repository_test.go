package sqlite_adapter

import (
	"context"
	"listings-service/internal/core/domain"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepository(t *testing.T) *SubmissionRepository {
	t.Helper()
	repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "submissions.db"))
	if err != nil && strings.Contains(err.Error(), "cgo") {
		t.Skipf("sqlite driver unavailable: %v", err)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveInquiry(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.SaveInquiry(ctx, &domain.Inquiry{
			ID:          uuid.New(),
			Name:        "Jane",
			Email:       "jane@example.com",
			InquiryType: domain.InquiryTypeGeneral,
			Message:     "Hello",
			CreatedAt:   time.Now(),
		}))
	}

	n, err := repo.CountInquiries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSaveSubscriber_Duplicate(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSubscriber(ctx, &domain.Subscriber{ID: uuid.New(), Email: "sam@example.com", SubscribedAt: time.Now()}))
	require.NoError(t, repo.SaveSubscriber(ctx, &domain.Subscriber{ID: uuid.New(), Email: "sam@example.com", SubscribedAt: time.Now()}))

	n, err := repo.CountSubscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSaveSubscriber_DuplicateIgnoresCase(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSubscriber(ctx, &domain.Subscriber{ID: uuid.New(), Email: "Jane@Example.com", SubscribedAt: time.Now()}))
	require.NoError(t, repo.SaveSubscriber(ctx, &domain.Subscriber{ID: uuid.New(), Email: "jane@example.com", SubscribedAt: time.Now()}))

	n, err := repo.CountSubscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}
