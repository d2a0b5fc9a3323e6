package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"
)

// fetchAccessToken asks the identity authority for a token scoped to serviceID.
// Any failure, including an empty token, surfaces as ErrAuthFailure.
func fetchAccessToken(ctx context.Context, gateway interfaces.IAccessTokenGateway, credential, serviceID string) (string, error) {
	if gateway == nil {
		return "", fmt.Errorf("%w: token gateway not configured", ErrAuthFailure)
	}
	token, err := gateway.GetAccessToken(ctx, credential, serviceID)
	if err != nil {
		if errors.Is(err, ErrAuthFailure) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrAuthFailure, err)
	}
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: empty token for service %s", ErrAuthFailure, serviceID)
	}
	return token, nil
}

// loadEstimate rehydrates a record, turning a miss into ErrEstimateNotFound.
func loadEstimate(ctx context.Context, repo interfaces.IEstimateRepository, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, found, err := repo.Get(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !found {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func resolveService(catalog entities.ServiceCatalog, serviceID string) (entities.Service, error) {
	s, ok := catalog.Resolve(serviceID)
	if !ok {
		return entities.Service{}, fmt.Errorf("%w: %s", ErrUnmappedService, serviceID)
	}
	return s, nil
}

func upstreamError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamFailure, op, err)
}
