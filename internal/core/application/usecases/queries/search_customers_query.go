package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrSearchCustomersQueryIsNotConstructed = errors.New(
		"SearchCustomersQuery must be created via NewSearchCustomersQuery constructor",
	)
)

// SearchCustomersQuery looks customers up by a name or phone fragment.
// An empty search term lists everyone, which backs the customer picker in
// the order wizard.
type SearchCustomersQuery struct {
	term  string
	guard guard.ConstructorGuard
}

// NewSearchCustomersQuery creates a customer search query.
// The term may be empty; matching is case-insensitive on names.
func NewSearchCustomersQuery(term string) SearchCustomersQuery {
	return SearchCustomersQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchCustomersQueryIsNotConstructed if validation fails.
func (q SearchCustomersQuery) Validate() error {
	return q.guard.Validate(ErrSearchCustomersQueryIsNotConstructed)
}

// Term returns the search fragment.
func (q SearchCustomersQuery) Term() string {
	return q.term
}

// SearchCustomersQueryResponse is one customer in the search results.
type SearchCustomersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Phone   string
	Address string
	Tier    string
	Balance int64
}
