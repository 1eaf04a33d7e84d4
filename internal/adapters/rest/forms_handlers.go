package rest

import (
	"encoding/json"
	"errors"
	"listings-service/internal/contextkeys"
	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	usecases_port "listings-service/internal/core/port/usecases_port"
	"net/http"
	"strings"
)

const (
	msgMailerNotConfigured = "Email service not configured"
	msgInvalidPayload      = "Invalid request payload"
	msgInquiryInvalid      = "Please provide your name, a valid email address and a message."
	msgInquirySent         = "Your message has been sent successfully!"
	msgInquiryFailed       = "Failed to send message. Please try again."
	msgEmailRequired       = "Email is required"
	msgEmailInvalid        = "Please provide a valid email address."
	msgSubscribed          = "Successfully subscribed!"
	msgSubscribeFailed     = "Failed to subscribe. Please try again."
)

type FormsHandler struct {
	submitInquiryUC       usecases_port.SubmitInquiryUseCase
	subscribeNewsletterUC usecases_port.SubscribeNewsletterUseCase
}

func NewFormsHandler(submitInquiryUC usecases_port.SubmitInquiryUseCase,
	subscribeNewsletterUC usecases_port.SubscribeNewsletterUseCase) *FormsHandler {
	return &FormsHandler{
		submitInquiryUC:       submitInquiryUC,
		subscribeNewsletterUC: subscribeNewsletterUC,
	}
}

// SubmitInquiry принимает заявку с формы контактов и отправляет два письма.
func (h *FormsHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitInquiry"})

	body, err := readBody(w, r)
	if err != nil {
		respondForm(w, http.StatusBadRequest, false, msgInvalidPayload)
		return
	}

	var req InquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondForm(w, http.StatusBadRequest, false, msgInvalidPayload)
		return
	}

	if err := contracts.Validate(contracts.InquiryRequest, contracts.V1, body); err != nil {
		logger.Debug("Inquiry payload rejected by schema", port.Fields{"error": err.Error()})
		respondForm(w, http.StatusBadRequest, false, msgInquiryInvalid)
		return
	}

	if _, err := h.submitInquiryUC.Execute(r.Context(), req.toDomain()); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPayload):
			respondForm(w, http.StatusBadRequest, false, msgInquiryInvalid)
		case errors.Is(err, domain.ErrMailerNotConfigured):
			respondForm(w, http.StatusServiceUnavailable, false, msgMailerNotConfigured)
		default:
			respondForm(w, http.StatusInternalServerError, false, msgInquiryFailed)
		}
		return
	}

	respondForm(w, http.StatusOK, true, msgInquirySent)
}

// SubscribeNewsletter подписывает адрес на рассылку.
func (h *FormsHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubscribeNewsletter"})

	body, err := readBody(w, r)
	if err != nil {
		respondForm(w, http.StatusBadRequest, false, msgInvalidPayload)
		return
	}

	var req NewsletterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondForm(w, http.StatusBadRequest, false, msgInvalidPayload)
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		respondForm(w, http.StatusBadRequest, false, msgEmailRequired)
		return
	}

	if err := contracts.Validate(contracts.NewsletterRequest, contracts.V1, body); err != nil {
		logger.Debug("Newsletter payload rejected by schema", port.Fields{"error": err.Error()})
		respondForm(w, http.StatusBadRequest, false, msgEmailInvalid)
		return
	}

	if _, err := h.subscribeNewsletterUC.Execute(r.Context(), req.toDomain()); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRequired):
			respondForm(w, http.StatusBadRequest, false, msgEmailRequired)
		case errors.Is(err, domain.ErrMailerNotConfigured):
			respondForm(w, http.StatusServiceUnavailable, false, msgMailerNotConfigured)
		default:
			respondForm(w, http.StatusInternalServerError, false, msgSubscribeFailed)
		}
		return
	}

	respondForm(w, http.StatusOK, true, msgSubscribed)
}
