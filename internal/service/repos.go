package service

import (
	"context"
	"encoding/json"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/logger"
)

// RepoLister fetches the repository list of a GitHub user.
type RepoLister interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}

// Repos proxies repository lookups to GitHub.
type Repos struct {
	lister RepoLister
	logger *logger.Logger
}

func NewRepos(lister RepoLister, logger *logger.Logger) *Repos {
	return &Repos{lister: lister, logger: logger}
}

// List returns the upstream JSON untouched. Any upstream failure is reported
// as a missing GitHub profile.
func (r *Repos) List(ctx context.Context, username string) (json.RawMessage, error) {
	repos, err := r.lister.ListRepos(ctx, username)
	if err != nil {
		r.logger.Warn("Repos service: github lookup failed",
			"username", username,
			"error", err.Error())
		return nil, apiErrors.NewErrGithubProfileNotFound()
	}

	return repos, nil
}
