package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// AuthenticatorPort проверяет токен сессии арендатора, выданный внешним провайдером.
type AuthenticatorPort interface {
	Enabled() bool
	// Verify возвращает domain.ErrAuthNotConfigured или domain.ErrInvalidToken.
	Verify(ctx context.Context, token string) (*domain.Claims, error)
}
