// Package kafka publishes order lifecycle events to the order-changed topic.
// Publishing is best-effort: the status-update use case logs failures and
// moves on, so a broker outage never blocks an order transition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fastorder/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// OrderStatusChangedEvent is the payload written to the order-changed topic.
type OrderStatusChangedEvent struct {
	OrderID     string    `json:"orderId"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// OrderPublisher implements ports.OrderEventPublisher on top of a kafka-go
// writer. Messages are keyed by order id so all events of one order land on
// the same partition, in order.
type OrderPublisher struct {
	writer *kafka.Writer
}

// NewOrderPublisher creates a publisher writing to topic on the given brokers.
func NewOrderPublisher(brokers []string, topic string) *OrderPublisher {
	return &OrderPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 10 * time.Second,
			ReadTimeout:  10 * time.Second,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishStatusChanged emits one event describing the aggregate's current
// status.
func (p *OrderPublisher) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	event := OrderStatusChangedEvent{
		OrderID:     aggregate.ID().String(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount().Float64(),
		OccurredAt:  aggregate.UpdatedAt(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}
