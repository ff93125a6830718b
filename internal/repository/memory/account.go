package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (model.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, a := range r.db.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Account{}, model.ErrNotFound
}

func (r *AccountRepository) GetByID(_ context.Context, id uuid.UUID) (model.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.accounts[id]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return a, nil
}

func (r *AccountRepository) Create(_ context.Context, account model.Account) (model.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.accounts[account.ID]; ok {
		return model.Account{}, model.ErrAlreadyExists
	}
	for _, a := range r.db.accounts {
		if a.Email == account.Email {
			return model.Account{}, model.ErrAlreadyExists
		}
	}
	r.db.accounts[account.ID] = account
	return account, nil
}

func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.accounts[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.db.accounts, id)
	return nil
}
