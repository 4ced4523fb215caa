// Package http exposes the admin dashboard API over echo.
//
// The server coordinates between HTTP handlers and application use cases:
// requests are decoded into commands and queries, domain errors are mapped
// to status codes, and responses are shaped into the wire DTOs defined here.
package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Error is the JSON body returned with every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server implements the HTTP handlers for the dashboard API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	markOrderReadyHandler     commands.MarkOrderReadyCommandHandler
	markOrderPaidHandler      commands.MarkOrderPaidCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	createCustomerHandler     commands.CreateCustomerCommandHandler
	topUpDepositHandler       commands.TopUpDepositCommandHandler
	createServiceHandler      commands.CreateServiceCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	searchCustomersHandler   queries.SearchCustomersQueryHandler
	getServicesHandler       queries.GetServicesQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler

	// Outbound ports the order composition endpoint drives directly:
	// the wizard session needs customer and service aggregates, and the
	// proof of payment goes to object storage before the command runs.
	customers ports.CustomerRepository
	services  ports.ServiceRepository
	proofs    ports.ProofStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the outbound ports the composition endpoint uses.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	topUpDepositHandler commands.TopUpDepositCommandHandler,
	createServiceHandler commands.CreateServiceCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	searchCustomersHandler queries.SearchCustomersQueryHandler,
	getServicesHandler queries.GetServicesQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	customers ports.CustomerRepository,
	services ports.ServiceRepository,
	proofs ports.ProofStore,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		advanceOrderStatusHandler: advanceOrderStatusHandler,
		markOrderReadyHandler:     markOrderReadyHandler,
		markOrderPaidHandler:      markOrderPaidHandler,
		cancelOrderHandler:        cancelOrderHandler,
		createCustomerHandler:     createCustomerHandler,
		topUpDepositHandler:       topUpDepositHandler,
		createServiceHandler:      createServiceHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getOrderHandler:           getOrderHandler,
		searchCustomersHandler:    searchCustomersHandler,
		getServicesHandler:        getServicesHandler,
		getDashboardStatsHandler:  getDashboardStatsHandler,
		customers:                 customers,
		services:                  services,
		proofs:                    proofs,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Everything
// under /api/v1 except the login endpoint sits behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *Authenticator) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.POST("/api/v1/auth/login", auth.Login)

	api := e.Group("/api/v1", auth.Middleware)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.AdvanceOrderStatus)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
	api.POST("/orders/:id/payment", s.MarkOrderPaid)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/customers", s.SearchCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.POST("/customers/:id/deposit", s.TopUpDeposit)

	api.GET("/services", s.GetServices)
	api.POST("/services", s.CreateService)

	api.GET("/dashboard/stats", s.GetDashboardStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// orderActionError maps the failure of an order lifecycle action: 404 when
// the order does not exist, 409 for everything else, which at this point
// means a rejected transition or payment precondition.
func orderActionError(ctx echo.Context, err error) error {
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

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
