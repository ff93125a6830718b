package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/clock"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// Profile edits profiles and their ordered sub-collections.
type Profile struct {
	profileStore model.ProfileStore
	accountStore model.AccountStore
	clock        clock.Clock
	logger       *logger.Logger
}

func NewProfile(profileStore model.ProfileStore, accountStore model.AccountStore, clock clock.Clock, logger *logger.Logger) *Profile {
	return &Profile{
		profileStore: profileStore,
		accountStore: accountStore,
		clock:        clock,
		logger:       logger,
	}
}

// Upsert merges the patch into the caller's profile, creating the profile
// when there is none. Genres are required only on creation.
func (s *Profile) Upsert(ctx context.Context, accountID uuid.UUID, patch model.ProfilePatch) (model.Profile, error) {
	s.logger.Debug("Profile service: upserting profile",
		"account_id", accountID.String())

	existing, err := s.profileStore.GetByAccountID(ctx, accountID)
	if err == nil {
		return s.update(ctx, existing, patch)
	}
	if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Profile service: failed to get profile",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	if !patch.HasGenres() {
		return model.Profile{}, apiErrors.NewErrValidation(apiErrors.FieldError{Msg: "Genre is required", Param: "genres"})
	}

	account, err := s.accountStore.GetByID(ctx, accountID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apiErrors.NewErrAccountNotFound()
	}
	if err != nil {
		s.logger.Error("Profile service: failed to get account",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get account: %w", err)
	}

	profile := model.NewProfile(uuid.New(), account, s.clock.NowUtc())
	patch.Apply(&profile)

	created, err := s.profileStore.Create(ctx, profile)
	if errors.Is(err, model.ErrAlreadyExists) {
		// lost a race with another create for the same account
		existing, err = s.profileStore.GetByAccountID(ctx, accountID)
		if err != nil {
			return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
		}
		return s.update(ctx, existing, patch)
	}
	if err != nil {
		s.logger.Error("Profile service: failed to create profile",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("Profile service: profile created",
		"account_id", accountID.String(),
		"profile_id", created.ID.String())

	return created, nil
}

func (s *Profile) update(ctx context.Context, profile model.Profile, patch model.ProfilePatch) (model.Profile, error) {
	patch.Apply(&profile)

	updated, err := s.profileStore.Update(ctx, profile)
	if err != nil {
		s.logger.Error("Profile service: failed to update profile",
			"account_id", profile.AccountID.String(),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("Profile service: profile updated",
		"account_id", profile.AccountID.String(),
		"profile_id", updated.ID.String())

	return updated, nil
}

// AddPublication assigns the item a fresh id and inserts it first.
func (s *Profile) AddPublication(ctx context.Context, accountID uuid.UUID, item model.Publication) (model.Profile, error) {
	return s.addSubItem(ctx, accountID, model.SubItemPublication, func(p *model.Profile) {
		item.ID = uuid.New()
		p.AddPublication(item)
	})
}

// AddCareer assigns the item a fresh id and inserts it first.
func (s *Profile) AddCareer(ctx context.Context, accountID uuid.UUID, item model.Career) (model.Profile, error) {
	return s.addSubItem(ctx, accountID, model.SubItemCareer, func(p *model.Profile) {
		item.ID = uuid.New()
		p.AddCareer(item)
	})
}

// AddEducation assigns the item a fresh id and inserts it first.
func (s *Profile) AddEducation(ctx context.Context, accountID uuid.UUID, item model.Education) (model.Profile, error) {
	return s.addSubItem(ctx, accountID, model.SubItemEducation, func(p *model.Profile) {
		item.ID = uuid.New()
		p.AddEducation(item)
	})
}

func (s *Profile) addSubItem(ctx context.Context, accountID uuid.UUID, kind model.SubItemKind, add func(*model.Profile)) (model.Profile, error) {
	profile, err := s.Mine(ctx, accountID)
	if err != nil {
		return model.Profile{}, err
	}

	add(&profile)

	updated, err := s.profileStore.Update(ctx, profile)
	if err != nil {
		s.logger.Error("Profile service: failed to add sub-item",
			"account_id", accountID.String(),
			"kind", string(kind),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to add %s: %w", kind, err)
	}

	s.logger.Info("Profile service: sub-item added",
		"account_id", accountID.String(),
		"kind", string(kind))

	return updated, nil
}

// RemoveSubItem removes exactly one entry whose id matches subID.
func (s *Profile) RemoveSubItem(ctx context.Context, accountID uuid.UUID, kind model.SubItemKind, subID string) (model.Profile, error) {
	profile, err := s.Mine(ctx, accountID)
	if err != nil {
		return model.Profile{}, err
	}

	idx := slices.Index(profile.SubItemIDs(kind), subID)
	if idx == -1 {
		s.logger.Info("Profile service: sub-item not found",
			"account_id", accountID.String(),
			"kind", string(kind),
			"sub_id", subID)
		return model.Profile{}, apiErrors.NewErrSubItemNotFound(string(kind))
	}

	profile.RemoveSubItemAt(kind, idx)

	updated, err := s.profileStore.Update(ctx, profile)
	if err != nil {
		s.logger.Error("Profile service: failed to remove sub-item",
			"account_id", accountID.String(),
			"kind", string(kind),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to remove %s: %w", kind, err)
	}

	s.logger.Info("Profile service: sub-item removed",
		"account_id", accountID.String(),
		"kind", string(kind),
		"sub_id", subID)

	return updated, nil
}

// Mine returns the caller's profile.
func (s *Profile) Mine(ctx context.Context, accountID uuid.UUID) (model.Profile, error) {
	profile, err := s.profileStore.GetByAccountID(ctx, accountID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apiErrors.NewErrOwnProfileNotFound()
	}
	if err != nil {
		s.logger.Error("Profile service: failed to get profile",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// ByAccount returns the profile of the account with the given id. A malformed
// id is reported as a missing profile.
func (s *Profile) ByAccount(ctx context.Context, rawAccountID string) (model.Profile, error) {
	accountID, err := uuid.Parse(rawAccountID)
	if err != nil {
		return model.Profile{}, apiErrors.NewErrProfileNotFound()
	}

	profile, err := s.profileStore.GetByAccountID(ctx, accountID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apiErrors.NewErrProfileNotFound()
	}
	if err != nil {
		s.logger.Error("Profile service: failed to get profile",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (s *Profile) List(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profileStore.List(ctx)
	if err != nil {
		s.logger.Error("Profile service: failed to list profiles",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}
