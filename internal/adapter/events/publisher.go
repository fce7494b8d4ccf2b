package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/movecrm/backoffice/internal/domain/model"
)

// Event names emitted after a successful remote mutation.
const (
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

// Publisher announces order mutations to downstream consumers.
type Publisher interface {
	OrderUpdated(ctx context.Context, record model.OrderRecord) error
	OrderDeleted(ctx context.Context, orderID int64) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type orderEvent struct {
	Event      string             `json:"event"`
	OrderID    int64              `json:"orderId"`
	Order      *model.OrderRecord `json:"order,omitempty"`
	OccurredAt time.Time          `json:"occurredAt"`
}

// KafkaPublisher writes order events to a Kafka topic keyed by order id.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

// OrderUpdated emits an event carrying the updated record.
func (p *KafkaPublisher) OrderUpdated(ctx context.Context, record model.OrderRecord) error {
	return p.publish(ctx, orderEvent{
		Event:      EventOrderUpdated,
		OrderID:    record.OrderID,
		Order:      &record,
		OccurredAt: time.Now().UTC(),
	})
}

// OrderDeleted emits a deletion event for the order id.
func (p *KafkaPublisher) OrderDeleted(ctx context.Context, orderID int64) error {
	return p.publish(ctx, orderEvent{
		Event:      EventOrderDeleted,
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, event orderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish order event failed",
			slog.String("event", event.Event),
			slog.Int64("order_id", event.OrderID),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// NopPublisher discards events. It backs deployments without a broker.
type NopPublisher struct{}

func (NopPublisher) OrderUpdated(ctx context.Context, record model.OrderRecord) error { return nil }
func (NopPublisher) OrderDeleted(ctx context.Context, orderID int64) error            { return nil }
func (NopPublisher) Close() error                                                     { return nil }
