package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Logger:       zap.NewStdLog(zap.L().With(zap.String("kafka_component", "producer"))),
	}
	zap.L().Info("kafka publisher initialized", zap.Strings("brokers", brokers), zap.String("topic", topic))
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Type, err)
	}
	msg := kafka.Message{
		Key:   []byte(event.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("failed to publish event", zap.String("topic", p.topic), zap.String("type", string(event.Type)), zap.Error(err))
		return fmt.Errorf("failed to publish event: %w", err)
	}
	zap.L().Debug("event published", zap.String("topic", p.topic), zap.String("type", string(event.Type)), zap.String("key", event.Key))
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka publisher: %w", err)
	}
	zap.L().Info("kafka publisher closed")
	return nil
}

// LogPublisher only logs events. It stands in when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(_ context.Context, event Event) error {
	zap.L().Info("event",
		zap.String("type", string(event.Type)),
		zap.String("key", event.Key),
		zap.Any("payload", event.Payload),
	)
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
