package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type SubmitInquiryUseCase interface {
	Execute(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error)
}

type SubscribeNewsletterUseCase interface {
	Execute(ctx context.Context, subscriber domain.Subscriber) (*domain.Subscriber, error)
}
