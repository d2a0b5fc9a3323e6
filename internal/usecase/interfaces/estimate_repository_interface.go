package interfaces

import (
	"context"

	"lyft_client/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository_interface.go -package=mock_interfaces

// IEstimateRepository abstracts the keyed store of estimate records.
//
// The service must be able to:
//   - upsert a record under its estimate id, restarting its TTL policy (last writer wins)
//   - read a record back; expired and absent records both report found=false
type IEstimateRepository interface {
	Put(ctx context.Context, e entities.Estimate, policy entities.TTLPolicy) error
	Get(ctx context.Context, id string) (e entities.Estimate, found bool, err error)
}
