package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMessage struct {
	routingKey string
	msg        amqp.Publishing
}

type fakePublisher struct {
	messages []publishedMessage
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, publishedMessage{routingKey: routingKey, msg: msg})
	return nil
}

func TestPublishInquirySubmitted(t *testing.T) {
	pub := &fakePublisher{}
	adapter, err := NewSubmissionEventsAdapter(pub)
	require.NoError(t, err)

	inquiry := &domain.Inquiry{
		ID:            uuid.New(),
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		InquiryType:   domain.InquiryTypeViewing,
		PreferredDate: "2024-03-01",
		Message:       "private text",
		CreatedAt:     time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC),
	}

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")
	require.NoError(t, adapter.PublishInquirySubmitted(ctx, inquiry))

	require.Len(t, pub.messages, 1)
	got := pub.messages[0]
	assert.Equal(t, InquirySubmittedRoutingKey, got.routingKey)
	assert.Equal(t, "InquirySubmittedEvent", got.msg.Headers["event-type"])
	assert.Equal(t, "1.0.0", got.msg.Headers["event-version"])
	assert.Equal(t, "trace-42", got.msg.Headers["x-trace-id"])
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, inquiry.ID.String(), body["id"])
	assert.Equal(t, "viewing", body["inquiry_type"])
	assert.Equal(t, "2024-02-20T09:30:00Z", body["created_at"])
	assert.NotContains(t, body, "message")
}

func TestPublishSubscriberAdded(t *testing.T) {
	pub := &fakePublisher{}
	adapter, err := NewSubmissionEventsAdapter(pub)
	require.NoError(t, err)

	err = adapter.PublishSubscriberAdded(context.Background(), &domain.Subscriber{
		ID:           uuid.New(),
		Email:        "sam@example.com",
		SubscribedAt: time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, pub.messages, 1)
	assert.Equal(t, SubscriberAddedRoutingKey, pub.messages[0].routingKey)
	assert.NotContains(t, pub.messages[0].msg.Headers, "x-trace-id")
}

func TestPublish_SchemaViolation(t *testing.T) {
	pub := &fakePublisher{}
	adapter, err := NewSubmissionEventsAdapter(pub)
	require.NoError(t, err)

	// без имени событие не проходит схему и не публикуется
	err = adapter.PublishInquirySubmitted(context.Background(), &domain.Inquiry{
		ID:          uuid.New(),
		Email:       "jane@example.com",
		InquiryType: domain.InquiryTypeGeneral,
		CreatedAt:   time.Now(),
	})
	assert.Error(t, err)
	assert.Empty(t, pub.messages)
}

func TestPublish_ProducerError(t *testing.T) {
	adapter, err := NewSubmissionEventsAdapter(&fakePublisher{err: errors.New("channel closed")})
	require.NoError(t, err)

	err = adapter.PublishSubscriberAdded(context.Background(), &domain.Subscriber{ID: uuid.New(), Email: "a@b.c", SubscribedAt: time.Now()})
	assert.EqualError(t, err, "channel closed")

	_, err = NewSubmissionEventsAdapter(nil)
	assert.Error(t, err)
}
