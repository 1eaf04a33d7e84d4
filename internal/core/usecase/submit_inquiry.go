package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/google/uuid"
)

type SubmitInquiryUseCase struct {
	mailer     port.MailerPort
	repository port.SubmissionRepositoryPort
	events     port.EventPublisherPort
	settings   MailSettings
	now        func() time.Time
}

func NewSubmitInquiryUseCase(mailer port.MailerPort,
	repository port.SubmissionRepositoryPort,
	events port.EventPublisherPort,
	settings MailSettings) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{
		mailer:     mailer,
		repository: repository,
		events:     events,
		settings:   settings,
		now:        time.Now,
	}
}

// Execute отправляет ровно два письма: оператору и подтверждение отправителю.
// Повторных попыток нет, ошибка любой отправки возвращается как domain.ErrSendFailed.
// Сохранение и публикация события не влияют на результат.
func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "SubmitInquiry",
		"inquiry_type": inquiry.InquiryType,
	})

	inquiry.Normalize()
	if err := inquiry.Validate(); err != nil {
		ucLogger.Warn("Inquiry rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	if !uc.mailer.Enabled() {
		ucLogger.Warn("Email service is not configured, inquiry dropped", nil)
		return nil, domain.ErrMailerNotConfigured
	}

	inquiry.ID = uuid.New()
	inquiry.CreatedAt = uc.now().UTC()
	ucLogger = ucLogger.WithFields(port.Fields{"inquiry_id": inquiry.ID.String()})
	ucLogger.Info("Use case started", nil)

	if err := uc.repository.SaveInquiry(ctx, &inquiry); err != nil {
		ucLogger.Error("Failed to record inquiry, continuing with notification", err, nil)
	}

	operatorMsg, err := operatorInquiryEmail(uc.settings, &inquiry)
	if err != nil {
		ucLogger.Error("Failed to compose operator email", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}
	if err := uc.mailer.Send(ctx, operatorMsg); err != nil {
		ucLogger.Error("Failed to send operator notification", err, nil)
		return nil, fmt.Errorf("%w: operator notification: %v", domain.ErrSendFailed, err)
	}

	confirmationMsg, err := inquiryConfirmationEmail(uc.settings, &inquiry)
	if err != nil {
		ucLogger.Error("Failed to compose confirmation email", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}
	if err := uc.mailer.Send(ctx, confirmationMsg); err != nil {
		ucLogger.Error("Failed to send confirmation to submitter", err, nil)
		return nil, fmt.Errorf("%w: confirmation: %v", domain.ErrSendFailed, err)
	}

	if err := uc.events.PublishInquirySubmitted(ctx, &inquiry); err != nil {
		ucLogger.Error("Failed to publish inquiry event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &inquiry, nil
}
