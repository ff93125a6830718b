package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// AuthService defines account registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, accountID uuid.UUID) (model.Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}

// Auth handles account and token endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and responds with a token for it.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	h.logger.Debug("Auth handler: processing registration request", "email", req.Email)

	token, err := h.authService.Register(c.Request().Context(), model.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me responds with the caller's account without the password hash.
func (h *Auth) Me(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	account, err := h.authService.Me(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, account)
}

// Delete removes the caller's posts, profile and account.
func (h *Auth) Delete(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	if err := h.authService.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return err
	}

	h.logger.Info("Auth handler: account deleted", "account_id", accountID.String())

	return c.JSON(http.StatusOK, messageResponse{Msg: "User deleted"})
}
