package messaging

import (
	"context"
	"encoding/json"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRideEventPublisher writes ride lifecycle events to a Kafka topic, keyed by
// estimate id so every event of one ride lands on the same partition.
type KafkaRideEventPublisher struct {
	writer messageWriter
}

var _ interfaces.IRideEventPublisher = (*KafkaRideEventPublisher)(nil)

func NewKafkaRideEventPublisher(brokers []string, topic string) *KafkaRideEventPublisher {
	return &KafkaRideEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *KafkaRideEventPublisher) Publish(ctx context.Context, event entities.RideEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EstimateID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
}

func (p *KafkaRideEventPublisher) Close() error {
	return p.writer.Close()
}
