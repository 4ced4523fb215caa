package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetServicesQueryIsNotConstructed = errors.New(
		"GetServicesQuery must be created via NewGetServicesQuery constructor",
	)
)

// GetServicesQuery retrieves the whole service catalog grouped by category,
// the shape the order wizard's service picker renders directly.
type GetServicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetServicesQuery creates a query for the grouped service catalog.
func NewGetServicesQuery() GetServicesQuery {
	return GetServicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetServicesQueryIsNotConstructed if validation fails.
func (q GetServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetServicesQueryIsNotConstructed)
}

// GetServicesQueryResponse is one category of the catalog with its services
// in alphabetical order.
type GetServicesQueryResponse struct {
	Category string
	Services []ServiceResponse
}

// ServiceResponse is one sellable service in the catalog view.
type ServiceResponse struct {
	ID            kernel.UUID
	Name          string
	Price         int64
	MemberPrice   *int64
	WeightBased   bool
	MinWeight     float64
	MaxWeight     float64
	DurationHours int
}
