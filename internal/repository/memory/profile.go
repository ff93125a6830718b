package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

// ProfileRepository indexes profiles by owning account.
type ProfileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// withOwner must be called with the lock held.
func (r *ProfileRepository) withOwner(p model.Profile) model.Profile {
	out := p.Clone()
	out.User = model.AccountRef{ID: p.AccountID}
	if a, ok := r.db.accounts[p.AccountID]; ok {
		out.User = a.Ref()
	}
	return out
}

func (r *ProfileRepository) GetByAccountID(_ context.Context, accountID uuid.UUID) (model.Profile, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.profiles[accountID]
	if !ok {
		return model.Profile{}, model.ErrNotFound
	}
	return r.withOwner(p), nil
}

func (r *ProfileRepository) List(_ context.Context) ([]model.Profile, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	profiles := make([]model.Profile, 0, len(r.db.profiles))
	for _, p := range r.db.profiles {
		profiles = append(profiles, r.withOwner(p))
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})
	return profiles, nil
}

func (r *ProfileRepository) Create(_ context.Context, profile model.Profile) (model.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.profiles[profile.AccountID]; ok {
		return model.Profile{}, model.ErrAlreadyExists
	}
	r.db.profiles[profile.AccountID] = profile.Clone()
	return profile, nil
}

func (r *ProfileRepository) Update(_ context.Context, profile model.Profile) (model.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.profiles[profile.AccountID]
	if !ok || stored.ID != profile.ID {
		return model.Profile{}, model.ErrNotFound
	}
	profile.CreatedAt = stored.CreatedAt
	r.db.profiles[profile.AccountID] = profile.Clone()
	return profile, nil
}

func (r *ProfileRepository) DeleteByAccountID(_ context.Context, accountID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.profiles[accountID]; !ok {
		return model.ErrNotFound
	}
	delete(r.db.profiles, accountID)
	return nil
}
