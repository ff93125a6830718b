package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/avatar"
	"github.com/dtroode/scribehub/internal/clock"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// Auth registers accounts, logs them in and removes them.
type Auth struct {
	accountStore model.AccountStore
	profileStore model.ProfileStore
	postStore    model.PostStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	clock        clock.Clock
	logger       *logger.Logger
}

func NewAuth(
	accountStore model.AccountStore,
	profileStore model.ProfileStore,
	postStore model.PostStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	clock clock.Clock,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accountStore: accountStore,
		profileStore: profileStore,
		postStore:    postStore,
		hasher:       hasher,
		tokenService: tokenService,
		clock:        clock,
		logger:       logger,
	}
}

// Register creates an account for a new email and returns a token for it.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (string, error) {
	a.logger.Debug("Auth service: starting account registration",
		"email", params.Email)

	_, err := a.accountStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: account already exists",
			"email", params.Email)
		return "", apiErrors.NewErrAccountExists()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get account by email",
			"email", params.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get account by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := model.Account{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Password:  hash,
		Avatar:    avatar.URL(params.Email),
		CreatedAt: a.clock.NowUtc(),
	}

	account, err = a.accountStore.Create(ctx, account)
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: account created concurrently",
			"email", params.Email)
		return "", apiErrors.NewErrAccountExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create account",
			"email", params.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, account.ID)
	if err != nil {
		return "", err
	}

	a.logger.Info("Auth service: account registered successfully",
		"email", params.Email,
		"account_id", account.ID.String())

	return token, nil
}

// Login checks the credentials and returns a token. Unknown email and wrong
// password produce the same error.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: starting login",
		"email", email)

	account, err := a.accountStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login with unknown email",
			"email", email)
		return "", apiErrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get account by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get account by email: %w", err)
	}

	if !a.hasher.Compare(account.Password, password) {
		a.logger.Info("Auth service: login with wrong password",
			"account_id", account.ID.String())
		return "", apiErrors.NewErrInvalidCredentials()
	}

	token, err := a.tokenService.Issue(ctx, account.ID)
	if err != nil {
		return "", err
	}

	a.logger.Info("Auth service: login completed successfully",
		"account_id", account.ID.String())

	return token, nil
}

// Me returns the caller's account.
func (a *Auth) Me(ctx context.Context, accountID uuid.UUID) (model.Account, error) {
	account, err := a.accountStore.GetByID(ctx, accountID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, apiErrors.NewErrAccountNotFound()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get account",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// DeleteAccount removes the account's posts, then its profile, then the account.
func (a *Auth) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	a.logger.Debug("Auth service: deleting account",
		"account_id", accountID.String())

	if err := a.postStore.DeleteByAccountID(ctx, accountID); err != nil {
		a.logger.Error("Auth service: failed to delete posts",
			"account_id", accountID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to delete posts: %w", err)
	}

	err := a.profileStore.DeleteByAccountID(ctx, accountID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to delete profile",
			"account_id", accountID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	err = a.accountStore.Delete(ctx, accountID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to delete account",
			"account_id", accountID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to delete account: %w", err)
	}

	a.logger.Info("Auth service: account deleted",
		"account_id", accountID.String())

	return nil
}
