package domain

import "errors"

// Ошибки, которые use case'ы возвращают наружу. REST-слой сопоставляет их
// со статусами через errors.Is.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrNoFeatured          = errors.New("no featured properties")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrEmailRequired       = errors.New("email is required")
	ErrMailerNotConfigured = errors.New("email service not configured")
	ErrSendFailed          = errors.New("failed to send email")
	ErrAuthNotConfigured   = errors.New("authentication not configured")
	ErrInvalidToken        = errors.New("invalid session token")
)
