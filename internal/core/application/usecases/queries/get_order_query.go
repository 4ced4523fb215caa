package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full detail of a single order, including its
// billed lines and any itemized garments.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
// Returns a validation error when orderID is invalid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order detail view.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	Number              string
	CustomerID          kernel.UUID
	CustomerName        string
	CustomerPhone       string
	PaymentMethod       string
	PaymentStatus       string
	PaymentProofKey     string
	Total               int64
	TotalWeight         float64
	Status              string
	EstimatedCompletion time.Time
	Notes               string
	CreatedAt           time.Time
	Lines               []OrderLineResponse
}

// OrderLineResponse is one billed service within the order detail view.
type OrderLineResponse struct {
	ServiceID   kernel.UUID
	ServiceName string
	WeightBased bool
	Quantity    int
	Weight      float64
	UnitPrice   int64
	Subtotal    int64
	Notes       string
	CustomItems []OrderCustomItemResponse
}

// OrderCustomItemResponse is one itemized garment on a line.
type OrderCustomItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
