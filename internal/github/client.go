// Package github lists public repositories of a GitHub user.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnexpectedStatus is returned when GitHub answers with anything but 200.
var ErrUnexpectedStatus = errors.New("unexpected upstream status")

const userAgent = "scribehub"

// maxBodySize bounds the upstream response kept in memory.
const maxBodySize = 4 << 20

// Client calls the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	secret     string
	limit      int
}

// NewClient creates a client for the API at baseURL. Credentials are sent as
// basic auth when clientID is not empty.
func NewClient(baseURL, clientID, secret string, timeout time.Duration, limit int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientID:   clientID,
		secret:     secret,
		limit:      limit,
	}
}

// ListRepos returns the raw JSON list of the user's oldest-first repositories.
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(c.limit))
	q.Set("sort", "created:asc")
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.clientID != "" {
		req.SetBasicAuth(c.clientID, c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("github returned malformed json")
	}

	return json.RawMessage(body), nil
}
