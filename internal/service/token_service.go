package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// TokenService issues and verifies bearer tokens on top of a TokenManager.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue returns a signed token for the account. Signing failures are returned as is.
func (s *TokenService) Issue(_ context.Context, accountID uuid.UUID) (string, error) {
	token, err := s.manager.GenerateAccessToken(accountID)
	if err != nil {
		s.logger.Error("Token service: failed to sign token",
			"account_id", accountID.String(),
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// GetUserID verifies the token and returns the account id it carries.
// Any failure yields model.ErrInvalidToken.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	accountID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected token", "error", err.Error())
		return uuid.Nil, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if accountID == uuid.Nil {
		return uuid.Nil, model.ErrInvalidToken
	}

	return accountID, nil
}
