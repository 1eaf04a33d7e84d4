package mailer

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/port"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

const DefaultResendBaseURL = "https://api.resend.com"

const traceIDHeader = "X-Trace-ID"

// traceTransport добавляет trace_id запроса в исходящие вызовы Resend.
type traceTransport struct {
	base http.RoundTripper
}

func (t traceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if traceID := contextkeys.TraceIDFromContext(req.Context()); traceID != "" {
		req = req.Clone(req.Context())
		req.Header.Set(traceIDHeader, traceID)
	}
	return t.base.RoundTrip(req)
}

// ResendMailer - клиент транзакционной почты Resend.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer - конструктор клиента. Пустой ключ - ошибка конфигурации,
// для этого случая есть DisabledMailer.
func NewResendMailer(baseURL, apiKey, from string, timeout time.Duration) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key cannot be empty")
	}
	if from == "" {
		return nil, fmt.Errorf("sender address cannot be empty")
	}
	if baseURL == "" {
		baseURL = DefaultResendBaseURL
	}
	// пути SDK относительные, база должна заканчиваться на "/"
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid resend base URL %q: %w", baseURL, err)
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: traceTransport{base: http.DefaultTransport},
	}
	client := resend.NewCustomClient(httpClient, apiKey)
	client.BaseURL = parsed

	return &ResendMailer{client: client, from: from}, nil
}

func (m *ResendMailer) Enabled() bool {
	return true
}

// Send отправляет одно письмо. Повторов нет: ошибку получает вызывающий.
func (m *ResendMailer) Send(ctx context.Context, msg port.EmailMessage) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ResendMailer",
		"subject":   msg.Subject,
	})

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		logger.Error("Email provider rejected message", err, port.Fields{"recipients": len(msg.To)})
		return fmt.Errorf("email provider rejected message: %w", err)
	}

	logger.Debug("Email accepted by provider", port.Fields{"email_id": sent.Id, "recipients": len(msg.To)})
	return nil
}
