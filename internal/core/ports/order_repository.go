// Package ports defines the persistence and storage contracts of the laundry
// back office. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// ErrDuplicateOrderNumber reports that another order claimed the same number
// between counting and inserting. Callers may re-count and retry.
var ErrDuplicateOrderNumber = errors.New("order number already taken")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all its lines and custom items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-readable number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllActive retrieves all orders that are neither completed nor
	// cancelled, newest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves the full order history of one customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// CountCreatedOn returns how many orders were created on the given
	// calendar day. Used for issuing sequential order numbers.
	CountCreatedOn(ctx context.Context, year int, month int, day int) (int64, error)
}
