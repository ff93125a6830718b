package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// Health answers liveness and readiness probes.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

func (h *Health) Root(c echo.Context) error {
	return c.String(http.StatusOK, "API running...")
}

func (h *Health) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Ready reports 503 while the store is unreachable.
func (h *Health) Ready(c echo.Context) error {
	if h.pinger == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "store not initialized"})
	}
	if err := h.pinger.Ping(c.Request().Context()); err != nil {
		h.logger.Warn("Health handler: store unreachable", "error", err.Error())
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "store unreachable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
}
