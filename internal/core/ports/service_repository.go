package ports

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// ServiceRepository defines the persistence contract for the service catalog.
type ServiceRepository interface {
	// Add persists a new catalog service.
	Add(ctx context.Context, service *catalog.Service) error

	// Update persists changes to an existing catalog service.
	Update(ctx context.Context, service *catalog.Service) error

	// Get retrieves a catalog service by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error)

	// GetAll retrieves the whole catalog ordered by category, then name.
	GetAll(ctx context.Context) ([]*catalog.Service, error)
}
