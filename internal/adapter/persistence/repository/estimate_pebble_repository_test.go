package repository

import (
	"context"
	"testing"
	"time"

	"lyft_client/internal/domain/entities"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

func openMemPebble(t *testing.T) *pebble.DB {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEstimatePebbleRepository_PutGet(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	policy := entities.TTLPolicy{Absolute: 24 * time.Hour, Sliding: 5 * time.Hour}

	t.Run("round trip", func(t *testing.T) {
		repo := NewEstimatePebbleRepository(openMemPebble(t))
		repo.now = func() time.Time { return now }

		e := sampleEstimate(now)
		if err := repo.Put(context.Background(), e, policy); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, found, err := repo.Get(context.Background(), "est-1")
		if err != nil || !found {
			t.Fatalf("expected record, found=%v err=%v", found, err)
		}
		if got.ID != e.ID || got.Request != e.Request || got.Cost != e.Cost {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo := NewEstimatePebbleRepository(openMemPebble(t))

		_, found, err := repo.Get(context.Background(), "nope")
		if err != nil || found {
			t.Fatalf("expected miss, found=%v err=%v", found, err)
		}
	})

	t.Run("expired record is removed", func(t *testing.T) {
		db := openMemPebble(t)
		repo := NewEstimatePebbleRepository(db)
		repo.now = func() time.Time { return now }
		if err := repo.Put(context.Background(), sampleEstimate(now), policy); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.now = func() time.Time { return now.Add(5*time.Hour + time.Second) }
		if _, found, err := repo.Get(context.Background(), "est-1"); err != nil || found {
			t.Fatalf("expected expired miss, found=%v err=%v", found, err)
		}
		if _, _, err := db.Get(estimateKey("est-1")); err != pebble.ErrNotFound {
			t.Fatalf("expected key to be deleted, got %v", err)
		}
	})

	t.Run("no policy never expires", func(t *testing.T) {
		repo := NewEstimatePebbleRepository(openMemPebble(t))
		repo.now = func() time.Time { return now }
		if err := repo.Put(context.Background(), sampleEstimate(now), entities.TTLPolicy{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.now = func() time.Time { return now.Add(365 * 24 * time.Hour) }
		if _, found, _ := repo.Get(context.Background(), "est-1"); !found {
			t.Fatalf("expected record without ttl to stay visible")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := NewEstimatePebbleRepository(openMemPebble(t))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := repo.Put(ctx, sampleEstimate(now), policy); err == nil {
			t.Fatalf("expected context error")
		}
	})
}
