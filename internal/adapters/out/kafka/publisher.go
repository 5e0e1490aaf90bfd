// Package kafka publishes order lifecycle events to a Kafka topic. The
// publisher is optional; when no broker is configured the composition root
// simply wires no publisher and the core skips publishing.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"storefront/internal/core/domain/model/order"
)

// Event names carried in the message envelope.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// envelope is the wire format of an order event. Key fields are always
// present; PreviousStatus only appears on status changes.
type envelope struct {
	Event          string    `json:"event"`
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Total          string    `json:"total"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher writes order events to one topic, keyed by order number so all
// events of an order land in the same partition, in order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderCreated announces a freshly created order.
func (p *Publisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, envelope{
		Event:       EventOrderCreated,
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.Number().String(),
		Status:      aggregate.Status().String(),
		Total:       aggregate.Total().String(),
		OccurredAt:  time.Now().UTC(),
	})
}

// PublishOrderStatusChanged announces a status transition.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) error {
	return p.publish(ctx, envelope{
		Event:          EventOrderStatusChanged,
		OrderID:        aggregate.ID().String(),
		OrderNumber:    aggregate.Number().String(),
		Status:         aggregate.Status().String(),
		PreviousStatus: previous.String(),
		Total:          aggregate.Total().String(),
		OccurredAt:     time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, e envelope) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderNumber),
		Value: value,
		Time:  time.Now(),
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
