package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Customer is one row of the customer picker and search results.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Tier    string `json:"tier"`
	Balance int64  `json:"balance"`
}

// CreateCustomerRequest registers a customer outside of order composition.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Tier    string `json:"tier"`
}

// CreateCustomerResponse carries the identifier of the new customer.
type CreateCustomerResponse struct {
	ID string `json:"id"`
}

// TopUpDepositRequest adds funds to a member's deposit balance.
type TopUpDepositRequest struct {
	Amount int64 `json:"amount"`
}

// SearchCustomers handles GET /api/v1/customers - searches by name or phone
// substring via the q parameter; an empty q lists everyone.
func (s *Server) SearchCustomers(ctx echo.Context) error {
	query := queries.NewSearchCustomersQuery(ctx.QueryParam("q"))

	rows, err := s.searchCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to search customers")
	}

	response := make([]Customer, len(rows))
	for i, row := range rows {
		response[i] = Customer{
			ID:      row.ID.String(),
			Name:    row.Name,
			Phone:   row.Phone,
			Address: row.Address,
			Tier:    row.Tier,
			Balance: row.Balance,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers - creates a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tier, err := customer.TypeFromString(req.Tier)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Phone, req.Address, tier)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create customer: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, CreateCustomerResponse{ID: customerID.String()})
}

// TopUpDeposit handles POST /api/v1/customers/:id/deposit - adds funds to a
// member's balance.
func (s *Server) TopUpDeposit(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var req TopUpDepositRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewTopUpDepositCommand(customerID, amount)
	if err != nil {
		return badRequest(ctx, "Invalid top-up data: "+err.Error())
	}

	if err = s.topUpDepositHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: notFound.Error(),
			})
		}
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
