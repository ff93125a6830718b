package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// TokenHeader is the legacy header carrying a bare token.
const TokenHeader = "x-auth-token"

// TokenService resolves account ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects account ID into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid token before they reach next.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		accountID, err := m.authenticate(req.Context(), tokenFromRequest(c))
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", req.URL.Path,
				"error", err.Error())
			return err
		}

		c.SetRequest(req.WithContext(m.contextManager.SetAccountIDToContext(req.Context(), accountID)))
		return next(c)
	}
}

func tokenFromRequest(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(c.Request().Header.Get(TokenHeader))
}

func (m *Authenticate) authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apiErrors.NewErrMissingAuthorizationToken()
	}

	accountID, err := m.tokenService.GetUserID(ctx, token)
	if err != nil || accountID == uuid.Nil {
		return uuid.Nil, apiErrors.NewErrInvalidAuthorizationToken()
	}

	return accountID, nil
}
