package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-pipeline/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthChecker pings a dependency of the server
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db HealthChecker
}

// NewHealthCheckHandler creates a new health check handler. A nil db reports
// the warehouse as disabled.
func NewHealthCheckHandler(db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports server and warehouse status
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	database := "disabled"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := h.db.HealthCheck(ctx); err != nil {
			return SendError(c, errors.SystemServiceUnavailable,
				errors.WithDetails("Database connection failed"))
		}
		database = "up"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": database,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
