package rest

import (
	"errors"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"net/http"
	"strings"
)

// sessionCookieName - cookie, в которой провайдер сессий хранит токен.
const sessionCookieName = "__session"

type AuthMiddleware struct {
	authenticator port.AuthenticatorPort
}

func NewAuthMiddleware(authenticator port.AuthenticatorPort) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// tokenFromRequest берет токен из cookie, затем из заголовка Authorization.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// OptionalAuth отмечает запрос как аутентифицированный, если токен валиден.
// Анонимные запросы проходят дальше без ошибок.
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !am.authenticator.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		token := tokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := am.authenticator.Verify(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := contextkeys.ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth пропускает только запросы с валидной сессией.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !am.authenticator.Enabled() {
			WriteJSONError(w, http.StatusServiceUnavailable, "Authentication is not configured")
			return
		}

		if claims := contextkeys.ClaimsFromContext(r.Context()); claims != nil {
			next.ServeHTTP(w, r)
			return
		}

		token := tokenFromRequest(r)
		if token == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := am.authenticator.Verify(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrAuthNotConfigured) {
				WriteJSONError(w, http.StatusServiceUnavailable, "Authentication is not configured")
				return
			}
			WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		ctx := contextkeys.ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
