package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type DefaultUtilRoute struct{}

func NewUtilRoute() *DefaultUtilRoute {
	return &DefaultUtilRoute{}
}

// Health is the container healthcheck endpoint.
func (r *DefaultUtilRoute) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "OK"})
}
