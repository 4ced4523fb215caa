package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ServiceGroup is one catalog category with its services, in display order.
type ServiceGroup struct {
	Category string    `json:"category"`
	Services []Service `json:"services"`
}

// Service is one sellable service in the catalog.
type Service struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	MemberPrice   *int64  `json:"memberPrice,omitempty"`
	WeightBased   bool    `json:"weightBased"`
	MinWeight     float64 `json:"minWeight"`
	MaxWeight     float64 `json:"maxWeight"`
	DurationHours int     `json:"durationHours"`
}

// CreateServiceRequest adds a service to the catalog. Weight bounds apply
// to weight-based services only; zero values take the catalog defaults.
type CreateServiceRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         int64   `json:"price"`
	MemberPrice   *int64  `json:"memberPrice,omitempty"`
	WeightBased   bool    `json:"weightBased"`
	MinWeight     float64 `json:"minWeight,omitempty"`
	MaxWeight     float64 `json:"maxWeight,omitempty"`
	DurationHours int     `json:"durationHours"`
}

// CreateServiceResponse carries the identifier of the new service.
type CreateServiceResponse struct {
	ID string `json:"id"`
}

// GetServices handles GET /api/v1/services - lists the catalog grouped by
// category.
func (s *Server) GetServices(ctx echo.Context) error {
	query := queries.NewGetServicesQuery()

	groups, err := s.getServicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve services")
	}

	response := make([]ServiceGroup, len(groups))
	for i, group := range groups {
		services := make([]Service, len(group.Services))
		for j, svc := range group.Services {
			services[j] = Service{
				ID:            svc.ID.String(),
				Name:          svc.Name,
				Price:         svc.Price,
				MemberPrice:   svc.MemberPrice,
				WeightBased:   svc.WeightBased,
				MinWeight:     svc.MinWeight,
				MaxWeight:     svc.MaxWeight,
				DurationHours: svc.DurationHours,
			}
		}
		response[i] = ServiceGroup{Category: group.Category, Services: services}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateService handles POST /api/v1/services - adds a catalog service.
func (s *Server) CreateService(ctx echo.Context) error {
	var req CreateServiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	var memberPrice *kernel.Money
	if req.MemberPrice != nil {
		mp, merr := kernel.NewMoney(*req.MemberPrice)
		if merr != nil {
			return badRequest(ctx, "Invalid member price: "+merr.Error())
		}
		memberPrice = &mp
	}

	serviceID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceCommand(
		serviceID,
		req.Name,
		req.Category,
		price,
		memberPrice,
		req.WeightBased,
		req.MinWeight,
		req.MaxWeight,
		req.DurationHours,
	)
	if err != nil {
		return badRequest(ctx, "Invalid service data: "+err.Error())
	}

	if err = s.createServiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create service: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, CreateServiceResponse{ID: serviceID.String()})
}
