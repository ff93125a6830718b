package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/scribehub/internal/logger"
)

// Logging logs every HTTP request and its outcome.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration. Errors returned by next are
// rendered through the echo error handler first so the real status is logged.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		l.logger.Info("HTTP request completed",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds())

		if err != nil {
			l.logger.Error("HTTP request failed",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"error", err.Error())
		}

		return nil
	}
}
