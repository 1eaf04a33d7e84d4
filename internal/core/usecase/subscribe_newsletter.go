package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/google/uuid"
)

type SubscribeNewsletterUseCase struct {
	mailer     port.MailerPort
	repository port.SubmissionRepositoryPort
	events     port.EventPublisherPort
	settings   MailSettings
	now        func() time.Time
}

func NewSubscribeNewsletterUseCase(mailer port.MailerPort,
	repository port.SubmissionRepositoryPort,
	events port.EventPublisherPort,
	settings MailSettings) *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{
		mailer:     mailer,
		repository: repository,
		events:     events,
		settings:   settings,
		now:        time.Now,
	}
}

// Execute отправляет приветствие подписчику и уведомление оператору.
func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, subscriber domain.Subscriber) (*domain.Subscriber, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SubscribeNewsletter",
	})

	subscriber.Normalize()
	if err := subscriber.Validate(); err != nil {
		ucLogger.Warn("Subscription rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	if !uc.mailer.Enabled() {
		ucLogger.Warn("Email service is not configured, subscription dropped", nil)
		return nil, domain.ErrMailerNotConfigured
	}

	subscriber.ID = uuid.New()
	subscriber.SubscribedAt = uc.now().UTC()
	ucLogger = ucLogger.WithFields(port.Fields{"subscriber_id": subscriber.ID.String()})

	if err := uc.repository.SaveSubscriber(ctx, &subscriber); err != nil {
		ucLogger.Error("Failed to record subscriber, continuing with welcome email", err, nil)
	}

	welcomeMsg, err := welcomeEmail(uc.settings, &subscriber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}
	if err := uc.mailer.Send(ctx, welcomeMsg); err != nil {
		ucLogger.Error("Failed to send welcome email", err, nil)
		return nil, fmt.Errorf("%w: welcome: %v", domain.ErrSendFailed, err)
	}

	noticeMsg, err := subscriberNoticeEmail(uc.settings, &subscriber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}
	if err := uc.mailer.Send(ctx, noticeMsg); err != nil {
		ucLogger.Error("Failed to send subscriber notice to operator", err, nil)
		return nil, fmt.Errorf("%w: operator notice: %v", domain.ErrSendFailed, err)
	}

	if err := uc.events.PublishSubscriberAdded(ctx, &subscriber); err != nil {
		ucLogger.Error("Failed to publish subscriber event", err, nil)
	}

	ucLogger.Info("Subscriber added", nil)
	return &subscriber, nil
}
