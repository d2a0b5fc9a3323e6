package registry

import (
	"context"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"

	"google.golang.org/grpc"
)

const registerServiceMethod = "/internal.Services/RegisterService"

type registerServiceRequest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ClientName string   `json:"client_name"`
	Features   []string `json:"features"`
}

type registerServiceResponse struct{}

// ServicesClient announces catalog entries to the internal Services registry.
type ServicesClient struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
}

var _ interfaces.IServiceRegistry = (*ServicesClient)(nil)

func NewServicesClient(conn grpc.ClientConnInterface, timeout time.Duration) *ServicesClient {
	return &ServicesClient{conn: conn, timeout: timeout}
}

func (c *ServicesClient) RegisterService(ctx context.Context, service entities.Service, clientName string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := &registerServiceRequest{
		ID:         service.ID,
		Name:       service.DisplayName,
		ClientName: clientName,
		Features:   make([]string, 0, len(service.Features)),
	}
	for _, f := range service.Features {
		req.Features = append(req.Features, string(f))
	}

	return c.conn.Invoke(ctx, registerServiceMethod, req, &registerServiceResponse{})
}
