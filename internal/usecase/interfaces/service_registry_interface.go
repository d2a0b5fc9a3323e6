package interfaces

import (
	"context"

	"lyft_client/internal/domain/entities"
)

//go:generate mockgen -source=service_registry_interface.go -destination=mocks/mock_service_registry_interface.go -package=mock_interfaces

// IServiceRegistry announces the products this client serves to the platform's
// service registry.
type IServiceRegistry interface {
	RegisterService(ctx context.Context, service entities.Service, clientName string) error
}
