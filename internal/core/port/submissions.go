package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// SubmissionRepositoryPort сохраняет обращения и подписчиков для истории.
type SubmissionRepositoryPort interface {
	SaveInquiry(ctx context.Context, inquiry *domain.Inquiry) error
	SaveSubscriber(ctx context.Context, subscriber *domain.Subscriber) error
}

// EventPublisherPort уведомляет внешние системы (CRM и т.п.) о новых заявках.
type EventPublisherPort interface {
	PublishInquirySubmitted(ctx context.Context, inquiry *domain.Inquiry) error
	PublishSubscriberAdded(ctx context.Context, subscriber *domain.Subscriber) error
}
