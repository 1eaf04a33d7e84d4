package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	InquirySubmittedRoutingKey = "listings.inquiry.submitted"
	SubscriberAddedRoutingKey  = "listings.subscriber.added"

	publishTimeout = 5 * time.Second
)

// Publisher - часть rabbitmq_producer.Publisher, нужная адаптеру.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// SubmissionEventsAdapter публикует события о новых заявках и подписчиках.
type SubmissionEventsAdapter struct {
	producer Publisher
	now      func() time.Time
}

func NewSubmissionEventsAdapter(producer Publisher) (*SubmissionEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &SubmissionEventsAdapter{producer: producer, now: time.Now}, nil
}

func (a *SubmissionEventsAdapter) PublishInquirySubmitted(ctx context.Context, inquiry *domain.Inquiry) error {
	return a.publish(ctx, InquirySubmittedRoutingKey, contracts.InquirySubmittedEvent, toInquirySubmittedDTO(inquiry))
}

func (a *SubmissionEventsAdapter) PublishSubscriberAdded(ctx context.Context, subscriber *domain.Subscriber) error {
	return a.publish(ctx, SubscriberAddedRoutingKey, contracts.SubscriberAddedEvent, toSubscriberAddedDTO(subscriber))
}

func (a *SubmissionEventsAdapter) publish(ctx context.Context, routingKey, eventType string, event interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "SubmissionEventsAdapter",
		"routing_key": routingKey,
		"event_type":  eventType,
	})

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", err, nil)
		return fmt.Errorf("failed to marshal %s: %w", eventType, err)
	}

	// Потребители проверяют события по тем же схемам
	if err := contracts.Validate(eventType, contracts.V1, body); err != nil {
		logger.Error("Event does not match its schema", err, nil)
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    a.now(),
		Headers: amqp.Table{
			"event-type":    eventType,
			"event-version": contracts.V1,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		logger.Error("Failed to publish event", err, nil)
		return err
	}

	logger.Info("Event published", nil)
	return nil
}
