package auth

import (
	"context"
	"listings-service/internal/core/domain"
)

// DisabledAuthenticator используется, когда провайдер сессий не настроен.
// Все запросы считаются анонимными.
type DisabledAuthenticator struct{}

func NewDisabledAuthenticator() *DisabledAuthenticator {
	return &DisabledAuthenticator{}
}

func (DisabledAuthenticator) Enabled() bool {
	return false
}

func (DisabledAuthenticator) Verify(ctx context.Context, token string) (*domain.Claims, error) {
	return nil, domain.ErrAuthNotConfigured
}
