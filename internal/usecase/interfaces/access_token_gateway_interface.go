package interfaces

import "context"

//go:generate mockgen -source=access_token_gateway_interface.go -destination=mocks/mock_access_token_gateway_interface.go -package=mock_interfaces

// IAccessTokenGateway exchanges a caller session credential for a provider access
// token scoped to one service.
type IAccessTokenGateway interface {
	GetAccessToken(ctx context.Context, sessionCredential, serviceID string) (string, error)
}
