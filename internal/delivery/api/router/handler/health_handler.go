package handler

import (
	"net/http"

	"guestbook/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}
