package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"

	"github.com/cockroachdb/pebble"
)

type pebbleEnvelope struct {
	ExpiresAt int64             `json:"expires_at,omitempty"`
	Estimate  entities.Estimate `json:"estimate"`
}

// EstimatePebbleRepository keeps Estimate records in an embedded Pebble store,
// for single-node deployments without DynamoDB.
//
// Pebble has no native TTL: the deadline travels with the value and an expired
// record is removed the first time it is read.
type EstimatePebbleRepository struct {
	db  *pebble.DB
	now func() time.Time
}

var _ interfaces.IEstimateRepository = (*EstimatePebbleRepository)(nil)

func NewEstimatePebbleRepository(db *pebble.DB) *EstimatePebbleRepository {
	return &EstimatePebbleRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *EstimatePebbleRepository) Put(ctx context.Context, e entities.Estimate, policy entities.TTLPolicy) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := pebbleEnvelope{Estimate: e}
	if at := policy.ExpiresAt(r.now()); !at.IsZero() {
		env.ExpiresAt = at.UnixNano()
	}

	val, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return r.db.Set(estimateKey(e.ID), val, pebble.Sync)
}

func (r *EstimatePebbleRepository) Get(ctx context.Context, id string) (entities.Estimate, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.Estimate{}, false, err
	}

	key := estimateKey(id)
	val, closer, err := r.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return entities.Estimate{}, false, nil
		}
		return entities.Estimate{}, false, err
	}

	var env pebbleEnvelope
	err = json.Unmarshal(val, &env)
	_ = closer.Close()
	if err != nil {
		return entities.Estimate{}, false, err
	}

	if env.ExpiresAt > 0 && entities.Expired(time.Unix(0, env.ExpiresAt), r.now()) {
		_ = r.db.Delete(key, pebble.NoSync)
		return entities.Estimate{}, false, nil
	}
	return env.Estimate, true, nil
}
