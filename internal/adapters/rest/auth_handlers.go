package rest

import (
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/port"
	"net/http"
)

// AuthSettings - то, что клиенту нужно для виджета входа.
type AuthSettings struct {
	PublishableKey string
	SignInURL      string
	SignUpURL      string
}

type AuthHandler struct {
	authenticator port.AuthenticatorPort
	settings      AuthSettings
}

func NewAuthHandler(authenticator port.AuthenticatorPort, settings AuthSettings) *AuthHandler {
	if settings.SignInURL == "" {
		settings.SignInURL = "/sign-in"
	}
	if settings.SignUpURL == "" {
		settings.SignUpURL = "/sign-up"
	}
	return &AuthHandler{authenticator: authenticator, settings: settings}
}

func (h *AuthHandler) GetAuthConfig(w http.ResponseWriter, r *http.Request) {
	resp := AuthConfigResponse{
		Enabled:   h.authenticator.Enabled(),
		SignInURL: h.settings.SignInURL,
		SignUpURL: h.settings.SignUpURL,
	}
	if resp.Enabled {
		resp.PublishableKey = h.settings.PublishableKey
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// GetSession сообщает, распознал ли OptionalAuth сессию.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		RespondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
		return
	}
	RespondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: true, UserID: claims.UserID})
}

// GetDashboard доступен только под RequireAuth.
func (h *AuthHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	RespondWithJSON(w, http.StatusOK, DashboardResponse{
		UserID:    claims.UserID,
		Email:     claims.Email,
		SessionID: claims.SessionID,
	})
}
