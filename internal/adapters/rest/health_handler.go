package rest

import (
	"listings-service/internal/core/port"
	"net/http"
)

// NewHealthHandler отдает статус сервиса и какие интеграции включены.
func NewHealthHandler(mailer port.MailerPort, authenticator port.AuthenticatorPort, catalogSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Mailer:  mailer.Enabled(),
			Auth:    authenticator.Enabled(),
			Catalog: catalogSize,
		})
	}
}
