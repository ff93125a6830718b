package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/scribehub/internal/mocks"
	"github.com/dtroode/scribehub/internal/testutil"
)

func TestRepos_List(t *testing.T) {
	lister := servermocks.NewRepoLister(t)
	lister.On("ListRepos", mock.Anything, "octocat").Return(json.RawMessage(`[{"name":"a"}]`), nil).Once()

	got, err := NewRepos(lister, testutil.MakeNoopLogger()).List(context.Background(), "octocat")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"a"}]`, string(got))
}

func TestRepos_List_UpstreamFailure(t *testing.T) {
	lister := servermocks.NewRepoLister(t)
	lister.On("ListRepos", mock.Anything, "ghost").Return(nil, assert.AnError).Once()

	_, err := NewRepos(lister, testutil.MakeNoopLogger()).List(context.Background(), "ghost")
	requireAPIError(t, err, 404, "No Github profile found")
}
