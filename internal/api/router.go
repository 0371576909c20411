package api

import (
	"techvault-checkout/internal/logger"
	"techvault-checkout/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// NewRouter wires the checkout API routes and the shared middleware chain.
func NewRouter(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(logger.RequestID())
	e.Use(logger.RequestLogging())
	e.Use(middleware.RateLimit())

	api := e.Group("/api")
	api.POST("/create-order", h.CreateOrder)
	api.POST("/verify-payment", h.VerifyPayment)
	api.GET("/health", h.Health)

	return e
}
