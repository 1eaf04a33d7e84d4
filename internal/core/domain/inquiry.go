package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type InquiryType string

const (
	InquiryTypeGeneral     InquiryType = "general"
	InquiryTypeViewing     InquiryType = "viewing"
	InquiryTypeApplication InquiryType = "application"
)

// Label возвращает название типа обращения для темы письма.
func (t InquiryType) Label() string {
	switch t {
	case InquiryTypeViewing:
		return "Schedule Viewing"
	case InquiryTypeApplication:
		return "Rental Application"
	default:
		return "General"
	}
}

// Inquiry - обращение с формы контактов.
type Inquiry struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Phone            string
	InquiryType      InquiryType
	PropertyInterest string
	PreferredDate    string
	PreferredTime    string
	Message          string
	CreatedAt        time.Time
}

// Normalize убирает пробелы по краям и подставляет тип по умолчанию.
func (i *Inquiry) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.PropertyInterest = strings.TrimSpace(i.PropertyInterest)
	i.PreferredDate = strings.TrimSpace(i.PreferredDate)
	i.PreferredTime = strings.TrimSpace(i.PreferredTime)
	i.Message = strings.TrimSpace(i.Message)
	if i.InquiryType == "" {
		i.InquiryType = InquiryTypeGeneral
	}
}

// Validate проверяет обязательные поля. Телефон необязателен.
func (i *Inquiry) Validate() error {
	if i.Name == "" || i.Email == "" || i.Message == "" {
		return ErrInvalidPayload
	}
	switch i.InquiryType {
	case InquiryTypeGeneral, InquiryTypeViewing, InquiryTypeApplication:
		return nil
	default:
		return ErrInvalidPayload
	}
}

// Subscriber - подписчик рассылки.
type Subscriber struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	SubscribedAt time.Time
}

// Normalize приводит адрес к нижнему регистру: один ящик - одна подписка.
func (s *Subscriber) Normalize() {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.FirstName = strings.TrimSpace(s.FirstName)
}

func (s *Subscriber) Validate() error {
	if s.Email == "" {
		return ErrEmailRequired
	}
	return nil
}

// Claims - данные проверенной сессии арендатора.
type Claims struct {
	UserID    string
	Email     string
	SessionID string
}
