package model

import "strings"

// ProfilePatch is a sparse set of profile fields. A nil field was not supplied
// and leaves the stored value untouched.
type ProfilePatch struct {
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Agent          *string
	Genres         []string
	Specialties    []string
	Influences     []string
	Social         SocialPatch
}

// SocialPatch is the sparse form of Social.
type SocialPatch struct {
	Youtube   *string
	Twitter   *string
	Facebook  *string
	Linkedin  *string
	Instagram *string
}

// ProfileInput is the raw profile form as submitted by a client. Lists are
// comma separated strings.
type ProfileInput struct {
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Agent          string
	Genres         string
	Specialties    string
	Influences     string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// NewProfilePatch builds a patch holding only the non-empty fields of in.
func NewProfilePatch(in ProfileInput) ProfilePatch {
	return ProfilePatch{
		Website:        optional(in.Website),
		Location:       optional(in.Location),
		Bio:            optional(in.Bio),
		GithubUsername: optional(in.GithubUsername),
		Agent:          optional(in.Agent),
		Genres:         SplitList(in.Genres),
		Specialties:    SplitList(in.Specialties),
		Influences:     SplitList(in.Influences),
		Social: SocialPatch{
			Youtube:   optional(in.Youtube),
			Twitter:   optional(in.Twitter),
			Facebook:  optional(in.Facebook),
			Linkedin:  optional(in.Linkedin),
			Instagram: optional(in.Instagram),
		},
	}
}

// HasGenres reports whether the patch carries at least one genre.
func (p ProfilePatch) HasGenres() bool {
	return len(p.Genres) > 0
}

// Apply merges the supplied fields into profile. Sub-collections are never touched.
func (p ProfilePatch) Apply(profile *Profile) {
	set(&profile.Website, p.Website)
	set(&profile.Location, p.Location)
	set(&profile.Bio, p.Bio)
	set(&profile.GithubUsername, p.GithubUsername)
	set(&profile.Agent, p.Agent)
	if p.Genres != nil {
		profile.Genres = cloneSlice(p.Genres)
	}
	if p.Specialties != nil {
		profile.Specialties = cloneSlice(p.Specialties)
	}
	if p.Influences != nil {
		profile.Influences = cloneSlice(p.Influences)
	}
	set(&profile.Social.Youtube, p.Social.Youtube)
	set(&profile.Social.Twitter, p.Social.Twitter)
	set(&profile.Social.Facebook, p.Social.Facebook)
	set(&profile.Social.Linkedin, p.Social.Linkedin)
	set(&profile.Social.Instagram, p.Social.Instagram)
}

// SplitList splits a comma separated list, trims every element and drops
// empty and repeated ones. The first occurrence keeps its position. It
// returns nil when nothing is left.
func SplitList(s string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
