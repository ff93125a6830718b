package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "only separators", in: " , ,, ", want: nil},
		{name: "single", in: "rock", want: []string{"rock"}},
		{name: "trimmed", in: "rock, jazz ,  blues", want: []string{"rock", "jazz", "blues"}},
		{name: "empty elements dropped", in: "rock,,jazz,", want: []string{"rock", "jazz"}},
		{name: "duplicates keep first position", in: "jazz, rock, jazz", want: []string{"jazz", "rock"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestNewProfilePatch_OnlySuppliedFields(t *testing.T) {
	t.Parallel()

	p := NewProfilePatch(ProfileInput{Bio: "x", Genres: "rock, jazz", Twitter: "https://twitter.com/a"})

	require.NotNil(t, p.Bio)
	assert.Equal(t, "x", *p.Bio)
	assert.Nil(t, p.Website)
	assert.Nil(t, p.Location)
	assert.Nil(t, p.GithubUsername)
	assert.Nil(t, p.Agent)
	assert.Equal(t, []string{"rock", "jazz"}, p.Genres)
	assert.Nil(t, p.Specialties)
	assert.Nil(t, p.Influences)
	require.NotNil(t, p.Social.Twitter)
	assert.Nil(t, p.Social.Youtube)
	assert.True(t, p.HasGenres())
}

func TestProfilePatch_Apply(t *testing.T) {
	t.Parallel()

	t.Run("second patch keeps omitted fields", func(t *testing.T) {
		t.Parallel()

		var profile Profile
		NewProfilePatch(ProfileInput{Genres: "rock, jazz", Website: "https://a.b"}).Apply(&profile)
		NewProfilePatch(ProfileInput{Bio: "x"}).Apply(&profile)

		assert.Equal(t, []string{"rock", "jazz"}, profile.Genres)
		assert.Equal(t, "https://a.b", profile.Website)
		assert.Equal(t, "x", profile.Bio)
	})

	t.Run("social merges per key", func(t *testing.T) {
		t.Parallel()

		profile := Profile{Social: Social{Youtube: "yt", Twitter: "tw"}}
		NewProfilePatch(ProfileInput{Twitter: "tw2", Instagram: "ig"}).Apply(&profile)

		assert.Equal(t, Social{Youtube: "yt", Twitter: "tw2", Instagram: "ig"}, profile.Social)
	})

	t.Run("sub-collections untouched", func(t *testing.T) {
		t.Parallel()

		profile := Profile{Publications: []Publication{{Title: "a"}}, Education: []Education{{School: "s"}}}
		NewProfilePatch(ProfileInput{Genres: "pop", Specialties: "lyrics", Influences: "x, y"}).Apply(&profile)

		assert.Len(t, profile.Publications, 1)
		assert.Len(t, profile.Education, 1)
		assert.Equal(t, []string{"pop"}, profile.Genres)
		assert.Equal(t, []string{"lyrics"}, profile.Specialties)
		assert.Equal(t, []string{"x", "y"}, profile.Influences)
	})

	t.Run("empty strings do not clear", func(t *testing.T) {
		t.Parallel()

		profile := Profile{Bio: "keep", Genres: []string{"rock"}}
		NewProfilePatch(ProfileInput{Bio: "", Genres: " , "}).Apply(&profile)

		assert.Equal(t, "keep", profile.Bio)
		assert.Equal(t, []string{"rock"}, profile.Genres)
	})
}
