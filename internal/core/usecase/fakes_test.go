package usecase

import (
	"context"
	"errors"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type fakeMailer struct {
	enabled bool
	failAt  int // номер отправки (с 1), на которой вернуть ошибку; 0 - без ошибок
	sent    []port.EmailMessage
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) Send(ctx context.Context, msg port.EmailMessage) error {
	if m.failAt > 0 && len(m.sent)+1 == m.failAt {
		return errors.New("smtp relay unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeRepository struct {
	inquiries   []domain.Inquiry
	subscribers []domain.Subscriber
	err         error
}

func (r *fakeRepository) SaveInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	if r.err != nil {
		return r.err
	}
	r.inquiries = append(r.inquiries, *inquiry)
	return nil
}

func (r *fakeRepository) SaveSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	if r.err != nil {
		return r.err
	}
	r.subscribers = append(r.subscribers, *subscriber)
	return nil
}

type fakeEvents struct {
	inquiries   int
	subscribers int
	err         error
}

func (e *fakeEvents) PublishInquirySubmitted(ctx context.Context, inquiry *domain.Inquiry) error {
	e.inquiries++
	return e.err
}

func (e *fakeEvents) PublishSubscriberAdded(ctx context.Context, subscriber *domain.Subscriber) error {
	e.subscribers++
	return e.err
}

type fakeCatalog struct {
	properties []domain.Property
}

func (c *fakeCatalog) List(ctx context.Context) ([]domain.Property, error) {
	return append([]domain.Property(nil), c.properties...), nil
}

func (c *fakeCatalog) GetByRef(ctx context.Context, ref string) (*domain.Property, error) {
	for _, p := range c.properties {
		if p.ID == ref || p.Slug == ref {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func sampleCatalog() *fakeCatalog {
	return &fakeCatalog{properties: []domain.Property{
		{ID: "1", Slug: "family-home", Title: "Family Home", Type: domain.PropertyTypeHouse, Price: 1850, Bedrooms: 4, Available: true,
			Images: []domain.PropertyImage{
				{URL: "a.jpg", Room: domain.RoomTypeExterior},
				{URL: "b.jpg", Room: domain.RoomTypeKitchen},
				{URL: "c.jpg", Room: domain.RoomTypeExterior},
			}},
		{ID: "2", Slug: "downtown", Title: "Downtown", Type: domain.PropertyTypeApartment, Price: 1200, Bedrooms: 2, Available: true, Featured: true},
		{ID: "3", Slug: "duplex", Title: "Duplex", Type: domain.PropertyTypeDuplex, Price: 1450, Bedrooms: 3, Available: true},
		{ID: "4", Slug: "studio", Title: "Studio", Type: domain.PropertyTypeApartment, Price: 750, Bedrooms: 0, Available: true, Featured: true},
		{ID: "5", Slug: "townhouse", Title: "Townhouse", Type: domain.PropertyTypeHouse, Price: 2400, Bedrooms: 3, Available: false, Featured: true},
	}}
}
