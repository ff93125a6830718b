package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
	Update(ctx context.Context, profile Profile) (Profile, error)
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
}

// Profile is the extended professional profile of an account.
type Profile struct {
	ID             uuid.UUID     `json:"_id"`
	AccountID      uuid.UUID     `json:"-"`
	User           AccountRef    `json:"user"`
	Website        string        `json:"website,omitempty"`
	Location       string        `json:"location,omitempty"`
	Bio            string        `json:"bio,omitempty"`
	GithubUsername string        `json:"githubusername,omitempty"`
	Agent          string        `json:"agent,omitempty"`
	Genres         []string      `json:"genres"`
	Specialties    []string      `json:"specialties"`
	Influences     []string      `json:"influences"`
	Publications   []Publication `json:"publications"`
	Career         []Career      `json:"career"`
	Education      []Education   `json:"education"`
	Social         Social        `json:"social"`
	CreatedAt      time.Time     `json:"date"`
}

// Publication is a published work listed on a profile.
type Publication struct {
	ID              uuid.UUID `json:"_id"`
	Title           string    `json:"title"`
	Publisher       string    `json:"publisher"`
	PublicationDate time.Time `json:"publicationDate"`
	Description     string    `json:"description,omitempty"`
}

// Career is a job entry listed on a profile.
type Career struct {
	ID          uuid.UUID  `json:"_id"`
	JobTitle    string     `json:"jobTitle"`
	Company     string     `json:"company"`
	Website     string     `json:"website,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is a school entry listed on a profile.
type Education struct {
	ID           uuid.UUID  `json:"_id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Social holds links to external social profiles.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// SubItemKind enumerates the ordered sub-collections of a profile.
type SubItemKind string

const (
	// SubItemPublication addresses Profile.Publications.
	SubItemPublication SubItemKind = "publication"
	// SubItemCareer addresses Profile.Career.
	SubItemCareer SubItemKind = "career"
	// SubItemEducation addresses Profile.Education.
	SubItemEducation SubItemKind = "education"
)

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	c := p
	c.Genres = cloneSlice(p.Genres)
	c.Specialties = cloneSlice(p.Specialties)
	c.Influences = cloneSlice(p.Influences)
	c.Publications = cloneSlice(p.Publications)
	c.Career = cloneSlice(p.Career)
	c.Education = cloneSlice(p.Education)
	return c
}

// SubItemIDs returns the sub-identifiers of the given collection as strings, in order.
func (p Profile) SubItemIDs(kind SubItemKind) []string {
	var ids []string
	switch kind {
	case SubItemPublication:
		for _, it := range p.Publications {
			ids = append(ids, it.ID.String())
		}
	case SubItemCareer:
		for _, it := range p.Career {
			ids = append(ids, it.ID.String())
		}
	case SubItemEducation:
		for _, it := range p.Education {
			ids = append(ids, it.ID.String())
		}
	}
	return ids
}

// RemoveSubItemAt removes exactly one entry of the given collection by position.
func (p *Profile) RemoveSubItemAt(kind SubItemKind, i int) {
	switch kind {
	case SubItemPublication:
		p.Publications = removeAt(p.Publications, i)
	case SubItemCareer:
		p.Career = removeAt(p.Career, i)
	case SubItemEducation:
		p.Education = removeAt(p.Education, i)
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// prepend returns a new slice with item at the head.
func prepend[T any](s []T, item T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, item)
	return append(out, s...)
}

// AddPublication inserts the publication at the head of the list.
func (p *Profile) AddPublication(item Publication) {
	p.Publications = prepend(p.Publications, item)
}

// AddCareer inserts the career entry at the head of the list.
func (p *Profile) AddCareer(item Career) {
	p.Career = prepend(p.Career, item)
}

// AddEducation inserts the education entry at the head of the list.
func (p *Profile) AddEducation(item Education) {
	p.Education = prepend(p.Education, item)
}

// NewProfile returns an empty profile owned by account.
func NewProfile(id uuid.UUID, account Account, createdAt time.Time) Profile {
	return Profile{
		ID:           id,
		AccountID:    account.ID,
		User:         account.Ref(),
		Genres:       []string{},
		Specialties:  []string{},
		Influences:   []string{},
		Publications: []Publication{},
		Career:       []Career{},
		Education:    []Education{},
		CreatedAt:    createdAt,
	}
}
