package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/mudler/echoscribe/core/application"
	"github.com/mudler/echoscribe/core/http/endpoints/echoscribe"
	"github.com/mudler/echoscribe/internal"
)

func RegisterEchoScribeRoutes(e *echo.Echo, application *application.Application) {
	e.POST("/process-video/", echoscribe.ProcessVideoEndpoint(application.Processor()))

	e.GET("/version", func(c echo.Context) error {
		return c.JSON(200, struct {
			Version string `json:"version"`
		}{Version: internal.PrintableVersion()})
	})
}
