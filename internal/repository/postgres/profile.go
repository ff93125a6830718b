package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

// ProfileRepository stores each profile as one row; lists and nested
// structures live in JSONB columns.
type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

const profileSelect = `SELECT p.id, p.account_id, a.name, a.avatar,
			  p.website, p.location, p.bio, p.github_username, p.agent,
			  p.genres, p.specialties, p.influences, p.publications, p.career, p.education, p.social,
			  p.created_at
			  FROM profiles p JOIN accounts a ON a.id = p.account_id`

// profileDocument holds the JSONB encoded columns of a profile.
type profileDocument struct {
	genres, specialties, influences []byte
	publications, career, education []byte
	social                          []byte
}

func encodeProfile(p model.Profile) (profileDocument, error) {
	var doc profileDocument
	fields := []struct {
		dst *[]byte
		v   any
	}{
		{&doc.genres, nonNil(p.Genres)},
		{&doc.specialties, nonNil(p.Specialties)},
		{&doc.influences, nonNil(p.Influences)},
		{&doc.publications, nonNil(p.Publications)},
		{&doc.career, nonNil(p.Career)},
		{&doc.education, nonNil(p.Education)},
		{&doc.social, p.Social},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.v)
		if err != nil {
			return profileDocument{}, fmt.Errorf("failed to encode profile: %w", err)
		}
		*f.dst = b
	}
	return doc, nil
}

func scanProfile(row scanner) (model.Profile, error) {
	var (
		p   model.Profile
		doc profileDocument
	)
	err := row.Scan(&p.ID, &p.AccountID, &p.User.Name, &p.User.Avatar,
		&p.Website, &p.Location, &p.Bio, &p.GithubUsername, &p.Agent,
		&doc.genres, &doc.specialties, &doc.influences, &doc.publications, &doc.career, &doc.education, &doc.social,
		&p.CreatedAt,
	)
	if err != nil {
		return model.Profile{}, err
	}
	p.User.ID = p.AccountID

	fields := []struct {
		src []byte
		dst any
	}{
		{doc.genres, &p.Genres},
		{doc.specialties, &p.Specialties},
		{doc.influences, &p.Influences},
		{doc.publications, &p.Publications},
		{doc.career, &p.Career},
		{doc.education, &p.Education},
		{doc.social, &p.Social},
	}
	for _, f := range fields {
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return model.Profile{}, fmt.Errorf("failed to decode profile: %w", err)
		}
	}
	return p, nil
}

func (r *ProfileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (model.Profile, error) {
	query := profileSelect + ` WHERE p.account_id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by account id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	query := profileSelect + ` ORDER BY p.created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	doc, err := encodeProfile(profile)
	if err != nil {
		return model.Profile{}, err
	}

	query := `INSERT INTO profiles (id, account_id, website, location, bio, github_username, agent,
			  genres, specialties, influences, publications, career, education, social, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.db.ExecContext(ctx, query,
		profile.ID, profile.AccountID, profile.Website, profile.Location, profile.Bio, profile.GithubUsername, profile.Agent,
		doc.genres, doc.specialties, doc.influences, doc.publications, doc.career, doc.education, doc.social,
		profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Profile{}, model.ErrAlreadyExists
		}
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// Update overwrites the whole stored document with profile.
func (r *ProfileRepository) Update(ctx context.Context, profile model.Profile) (model.Profile, error) {
	doc, err := encodeProfile(profile)
	if err != nil {
		return model.Profile{}, err
	}

	query := `UPDATE profiles SET website = $2, location = $3, bio = $4, github_username = $5, agent = $6,
			  genres = $7, specialties = $8, influences = $9, publications = $10, career = $11, education = $12, social = $13
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Website, profile.Location, profile.Bio, profile.GithubUsername, profile.Agent,
		doc.genres, doc.specialties, doc.influences, doc.publications, doc.career, doc.education, doc.social,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return model.Profile{}, err
	}

	return profile, nil
}

func (r *ProfileRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return requireAffected(res)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
