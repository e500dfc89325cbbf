package routes

import "github.com/labstack/echo/v4"

func HealthRoutes(e *echo.Echo) {
	// Service health checks
	ok := func(c echo.Context) error {
		return c.NoContent(200)
	}

	e.GET("/healthz", ok)
	e.GET("/readyz", ok)
}
