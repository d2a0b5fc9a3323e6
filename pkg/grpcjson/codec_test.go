package grpcjson

import (
	"testing"
	"time"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type sample struct {
	ID    string `json:"id"`
	Seats int    `json:"seats"`
}

func TestCodec(t *testing.T) {
	t.Run("plain struct", func(t *testing.T) {
		c := Codec{}
		b, err := c.Marshal(&sample{ID: "est-1", Seats: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `{"id":"est-1","seats":2}` {
			t.Fatalf("unexpected payload: %s", b)
		}

		var out sample
		if err := c.Unmarshal(b, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID != "est-1" || out.Seats != 2 {
			t.Fatalf("unexpected value: %+v", out)
		}
	})

	t.Run("proto message", func(t *testing.T) {
		c := Codec{}
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		b, err := c.Marshal(timestamppb.New(at))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var ts timestamppb.Timestamp
		if err := c.Unmarshal(b, &ts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ts.AsTime().Equal(at) {
			t.Fatalf("unexpected time: %v", ts.AsTime())
		}
	})

	t.Run("registered", func(t *testing.T) {
		if encoding.GetCodec(Name) == nil {
			t.Fatalf("codec %q not registered", Name)
		}
	})
}
