package usecase

import (
	"context"
	"errors"
	"fmt"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"
	"lyft_client/pkg/logger"
)

// ClientName is the name this client registers its services under.
const ClientName = "Lyft"

// ServiceRegistrationUseCase announces every catalog entry to the platform registry.
type ServiceRegistrationUseCase struct {
	registry interfaces.IServiceRegistry
	catalog  entities.ServiceCatalog
	log      logger.ILogger
}

func NewServiceRegistrationUseCase(registry interfaces.IServiceRegistry, catalog entities.ServiceCatalog, log logger.ILogger) *ServiceRegistrationUseCase {
	return &ServiceRegistrationUseCase{registry: registry, catalog: catalog, log: log}
}

// RegisterAll registers each service in catalog order. A failed registration does not
// stop the others; all failures are returned together.
func (u *ServiceRegistrationUseCase) RegisterAll(ctx context.Context) error {
	u.log.Info("[services][usecase] registering services...")

	var errs []error
	for _, svc := range u.catalog.Services() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := u.registry.RegisterService(ctx, svc, ClientName); err != nil {
			u.log.Error("[services][usecase] service registration failed", logger.String("service", svc.DisplayName), logger.Error(err))
			errs = append(errs, fmt.Errorf("register %s: %w", svc.DisplayName, err))
			continue
		}
		u.log.Info("[services][usecase] service registered", logger.String("service", svc.DisplayName), logger.String("service_id", svc.ID))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	u.log.Info("[services][usecase] services registration complete")
	return nil
}
