package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetDashboardStats handles GET /api/v1/dashboard/stats - serves the
// dashboard counters, from the cached snapshot when one is fresh.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query := queries.NewGetDashboardStatsQuery()

	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve dashboard stats")
	}

	return ctx.JSON(http.StatusOK, stats)
}
