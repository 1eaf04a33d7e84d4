package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Допуск на рассинхронизацию часов с провайдером сессий.
const clockSkewLeeway = 5 * time.Second

// JWTAuthenticator проверяет токены сессий, выпущенные внешним провайдером.
// Поддерживает RS256 (публичный ключ провайдера) или HS256 (общий секрет).
type JWTAuthenticator struct {
	publicKey *rsa.PublicKey
	secret    []byte
}

// sessionClaims - claims токена сессии провайдера.
type sessionClaims struct {
	Email     string `json:"email,omitempty"`
	SessionID string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTAuthenticator - конструктор. Если задан публичный ключ, используется RS256.
func NewJWTAuthenticator(publicKeyPEM, secret string) (*JWTAuthenticator, error) {
	if publicKeyPEM != "" {
		// в переменных окружения переводы строк часто приходят как "\n"
		pem := strings.ReplaceAll(publicKeyPEM, `\n`, "\n")
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, fmt.Errorf("failed to parse JWT public key: %w", err)
		}
		return &JWTAuthenticator{publicKey: key}, nil
	}
	if secret != "" {
		return &JWTAuthenticator{secret: []byte(secret)}, nil
	}
	return nil, fmt.Errorf("JWT public key or secret must be set")
}

func (a *JWTAuthenticator) Enabled() bool {
	return true
}

func (a *JWTAuthenticator) keyFunc(token *jwt.Token) (interface{}, error) {
	if a.publicKey != nil {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return a.secret, nil
}

func (a *JWTAuthenticator) validMethods() []string {
	if a.publicKey != nil {
		return []string{jwt.SigningMethodRS256.Alg()}
	}
	return []string{jwt.SigningMethodHS256.Alg()}
}

// Verify проверяет подпись и сроки токена.
func (a *JWTAuthenticator) Verify(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "JWTAuthenticator",
		"method":    "Verify",
	})

	if tokenString == "" {
		return nil, domain.ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, a.keyFunc,
		jwt.WithValidMethods(a.validMethods()),
		jwt.WithLeeway(clockSkewLeeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Debug("Session token has expired", nil)
		} else {
			logger.Warn("Invalid session token", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		logger.Warn("Session token has no subject", nil)
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{
		UserID:    claims.Subject,
		Email:     claims.Email,
		SessionID: claims.SessionID,
	}, nil
}
