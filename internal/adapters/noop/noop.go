// Package noop содержит заглушки для необязательных хранилища и шины событий.
package noop

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

// SubmissionRepository только пишет заявку в лог.
type SubmissionRepository struct{}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{}
}

func (SubmissionRepository) SaveInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	contextkeys.LoggerFromContext(ctx).Debug("Inquiry storage is disabled, skipping.", port.Fields{"inquiry_id": inquiry.ID.String()})
	return nil
}

func (SubmissionRepository) SaveSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	contextkeys.LoggerFromContext(ctx).Debug("Subscriber storage is disabled, skipping.", port.Fields{"subscriber_id": subscriber.ID.String()})
	return nil
}

// EventPublisher отбрасывает события.
type EventPublisher struct{}

func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

func (EventPublisher) PublishInquirySubmitted(ctx context.Context, inquiry *domain.Inquiry) error {
	return nil
}

func (EventPublisher) PublishSubscriberAdded(ctx context.Context, subscriber *domain.Subscriber) error {
	return nil
}
