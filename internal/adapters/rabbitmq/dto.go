package rabbitmq

import (
	"listings-service/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// InquirySubmittedEventDTO - тело события InquirySubmittedEvent/1.0.0.
// Текст сообщения в событие не попадает, он остается в почте и хранилище.
type InquirySubmittedEventDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	InquiryType      string    `json:"inquiry_type"`
	PropertyInterest string    `json:"property_interest,omitempty"`
	PreferredDate    string    `json:"preferred_date,omitempty"`
	PreferredTime    string    `json:"preferred_time,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubscriberAddedEventDTO - тело события SubscriberAddedEvent/1.0.0.
type SubscriberAddedEventDTO struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func toInquirySubmittedDTO(i *domain.Inquiry) InquirySubmittedEventDTO {
	return InquirySubmittedEventDTO{
		ID:               i.ID,
		Name:             i.Name,
		Email:            i.Email,
		Phone:            i.Phone,
		InquiryType:      string(i.InquiryType),
		PropertyInterest: i.PropertyInterest,
		PreferredDate:    i.PreferredDate,
		PreferredTime:    i.PreferredTime,
		CreatedAt:        i.CreatedAt.UTC(),
	}
}

func toSubscriberAddedDTO(s *domain.Subscriber) SubscriberAddedEventDTO {
	return SubscriberAddedEventDTO{
		ID:           s.ID,
		Email:        s.Email,
		FirstName:    s.FirstName,
		SubscribedAt: s.SubscribedAt.UTC(),
	}
}
