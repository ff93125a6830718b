package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// NewErrorHandler returns an echo.HTTPErrorHandler. Client-facing errors keep
// their status and body; anything unexpected becomes a bare 500.
func NewErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := handleError(err)
		if code == http.StatusInternalServerError {
			logger.Error("HTTP error handler: unexpected error",
				"path", c.Request().URL.Path,
				"error", err.Error())
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error("HTTP error handler: failed to write response", "error", err.Error())
		}
	}
}

func handleError(err error) (int, any) {
	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPCode, apiErr.Body()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, echo.Map{"msg": msg}
	}

	if errors.Is(err, model.ErrNotFound) {
		return http.StatusNotFound, echo.Map{"msg": "Not found"}
	}

	internal := apiErrors.NewErrInternal()
	return internal.HTTPCode, internal.Body()
}
