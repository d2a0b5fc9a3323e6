package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lyft_client/internal/domain/entities"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaRideEventPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaRideEventPublisher{writer: w}

	event := entities.RideEvent{
		ID:         "evt-1",
		Type:       entities.RideEventBooked,
		EstimateID: "est-1",
		RideID:     "ride-1",
		Price:      &entities.Money{Amount: 1500, Currency: "USD"},
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := p.Publish(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "est-1" {
		t.Fatalf("unexpected key %q", msg.Key)
	}
	if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != "ride.booked" {
		t.Fatalf("unexpected headers %+v", msg.Headers)
	}

	var decoded entities.RideEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.RideID != "ride-1" || decoded.Price == nil || decoded.Price.Amount != 1500 {
		t.Fatalf("unexpected payload %+v", decoded)
	}

	if err := p.Close(); err != nil || !w.closed {
		t.Fatalf("expected writer to be closed")
	}
}
