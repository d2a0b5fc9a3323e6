package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"lyft_client/internal/usecase/interfaces"
	"lyft_client/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const getUserAccessTokenMethod = "/internal.Users/GetUserAccessToken"

// AuthorizationHeader is the metadata key carrying the caller session credential.
const AuthorizationHeader = "authorization"

type getUserAccessTokenRequest struct {
	ServiceID string `json:"service_id"`
}

type getUserAccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UsersClient exchanges session credentials for provider access tokens through the
// internal Users service. Tokens are never cached.
type UsersClient struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
	log     logger.ILogger
}

var _ interfaces.IAccessTokenGateway = (*UsersClient)(nil)

func NewUsersClient(conn grpc.ClientConnInterface, timeout time.Duration, log logger.ILogger) *UsersClient {
	return &UsersClient{conn: conn, timeout: timeout, log: log}
}

func (c *UsersClient) GetAccessToken(ctx context.Context, sessionCredential, serviceID string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	ctx = metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, Bearer(sessionCredential))

	resp := &getUserAccessTokenResponse{}
	if err := c.conn.Invoke(ctx, getUserAccessTokenMethod, &getUserAccessTokenRequest{ServiceID: serviceID}, resp); err != nil {
		c.log.Warning("[identity][users] access token request failed", logger.String("service_id", serviceID), logger.Error(err))
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errors.New("users service returned no access token")
	}
	return resp.AccessToken, nil
}

// Bearer formats a session credential as a bearer authorization value.
func Bearer(credential string) string {
	credential = strings.TrimSpace(credential)
	if credential == "" || hasBearerPrefix(credential) {
		return credential
	}
	return "Bearer " + credential
}

func hasBearerPrefix(v string) bool {
	return len(v) >= 7 && strings.EqualFold(v[:7], "bearer ")
}
