package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Account represents a registered user with its password hash.
type Account struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Ref returns the public part of the account shown next to profiles.
func (a Account) Ref() AccountRef {
	return AccountRef{ID: a.ID, Name: a.Name, Avatar: a.Avatar}
}

// AccountRef is the populated owner of a profile.
type AccountRef struct {
	ID     uuid.UUID `json:"_id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

// RegisterParams contains parameters to register an account.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
