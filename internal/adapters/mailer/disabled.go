package mailer

import (
	"context"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

// DisabledMailer подставляется, когда ключ почтового сервиса не задан.
type DisabledMailer struct{}

func NewDisabledMailer() *DisabledMailer {
	return &DisabledMailer{}
}

func (DisabledMailer) Enabled() bool {
	return false
}

func (DisabledMailer) Send(ctx context.Context, msg port.EmailMessage) error {
	return domain.ErrMailerNotConfigured
}
