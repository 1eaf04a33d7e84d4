package usecase

import (
	"context"
	"testing"

	"listings-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeNewsletter_SendsWelcomeAndNotice(t *testing.T) {
	mailer := &fakeMailer{enabled: true}
	repo := &fakeRepository{}
	events := &fakeEvents{}
	uc := NewSubscribeNewsletterUseCase(mailer, repo, events, DefaultMailSettings())

	sub, err := uc.Execute(context.Background(), domain.Subscriber{Email: " tenant@example.com ", FirstName: "Sam"})
	require.NoError(t, err)
	assert.Equal(t, "tenant@example.com", sub.Email)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, []string{"tenant@example.com"}, mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].HTML, "Welcome to Russ Rentals, Sam!")
	assert.Contains(t, mailer.sent[0].HTML, "https://russrentals.com/properties")
	assert.Equal(t, []string{"contact@russrentals.com"}, mailer.sent[1].To)
	assert.Equal(t, "New Newsletter Subscriber", mailer.sent[1].Subject)

	assert.Len(t, repo.subscribers, 1)
	assert.Equal(t, 1, events.subscribers)
}

func TestSubscribeNewsletter_RejectsMissingEmail(t *testing.T) {
	mailer := &fakeMailer{enabled: true}
	uc := NewSubscribeNewsletterUseCase(mailer, &fakeRepository{}, &fakeEvents{}, DefaultMailSettings())

	_, err := uc.Execute(context.Background(), domain.Subscriber{FirstName: "Sam"})
	require.ErrorIs(t, err, domain.ErrEmailRequired)
	assert.Empty(t, mailer.sent)
}

func TestSubscribeNewsletter_NotConfigured(t *testing.T) {
	mailer := &fakeMailer{enabled: false}
	uc := NewSubscribeNewsletterUseCase(mailer, &fakeRepository{}, &fakeEvents{}, DefaultMailSettings())

	_, err := uc.Execute(context.Background(), domain.Subscriber{Email: "tenant@example.com"})
	require.ErrorIs(t, err, domain.ErrMailerNotConfigured)
	assert.Empty(t, mailer.sent)
}

func TestSubscribeNewsletter_SendFailure(t *testing.T) {
	mailer := &fakeMailer{enabled: true, failAt: 2}
	uc := NewSubscribeNewsletterUseCase(mailer, &fakeRepository{}, &fakeEvents{}, DefaultMailSettings())

	_, err := uc.Execute(context.Background(), domain.Subscriber{Email: "tenant@example.com"})
	require.ErrorIs(t, err, domain.ErrSendFailed)
	assert.Len(t, mailer.sent, 1)
}
