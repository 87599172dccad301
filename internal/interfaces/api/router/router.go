package router

import (
	"fmt"
	"net/http"

	"seatsync/internal/interfaces/api/handler"
	"seatsync/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	SeatHandler *handler.SeatHandler
	Logger      logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.POST("/auth/login", cfg.SeatHandler.Login)
	e.POST("/auth/logout", cfg.SeatHandler.Logout)
	e.GET("/reservation", cfg.SeatHandler.GetReservation)
	e.POST("/reservation/refresh", cfg.SeatHandler.Refresh)
	e.POST("/reservation/cancel", cfg.SeatHandler.Cancel)
	e.GET("/reservation/history", cfg.SeatHandler.History)
	e.GET("/settings/notifications", cfg.SeatHandler.GetPreferences)
	e.PUT("/settings/notifications", cfg.SeatHandler.UpdatePreferences)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
