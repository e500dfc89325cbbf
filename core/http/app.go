package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mudler/echoscribe/core/application"
	"github.com/mudler/echoscribe/core/http/routes"
	"github.com/mudler/echoscribe/core/schema"
)

// APIErrorHandler serializes errors the way the local web client expects
// them: {"detail": "..."}.
func APIErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	detail := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		}
	}
	if c.Response().Committed {
		return
	}
	if jsonErr := c.JSON(code, schema.ErrorResponse{Detail: detail}); jsonErr != nil {
		log.Error().Err(jsonErr).Msg("error while sending error response")
	}
}

func API(application *application.Application) (*echo.Echo, error) {
	e := echo.New()

	// Hide banner
	e.HideBanner = true

	// Set error handler
	e.HTTPErrorHandler = APIErrorHandler

	// Custom logger middleware using zerolog
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := log.Logger.Info()
			err := next(c)
			start.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Msg("HTTP request")
			return err
		}
	})

	// Recover middleware
	if !application.ApplicationConfig().Debug {
		e.Use(middleware.Recover())
	}

	// Health Checks should always be registered first
	routes.HealthRoutes(e)

	// CORS middleware: allow-listed local development origins, any method
	// and header.
	corsConfig := middleware.CORSConfig{
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS, echo.HEAD},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}
	if application.ApplicationConfig().CORSAllowOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(application.ApplicationConfig().CORSAllowOrigins, ",")
	}
	e.Use(middleware.CORSWithConfig(corsConfig))

	routes.RegisterEchoScribeRoutes(e, application)

	// Generated and intermediate audio files are served as static content.
	e.Static("/audio", application.ApplicationConfig().AudioDir)

	e.Server.RegisterOnShutdown(func() {
		log.Info().Msg("EchoScribe API server shutting down")
	})

	return e, nil
}
