// Package profile resolves a GitHub handle into a readme.ProfileRecord.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodreadme/goodreadme/internal/readme"
)

// ErrNotFound is returned when the service has no such user.
var ErrNotFound = errors.New("user not found")

const maxResponseBytes = 1 << 20

// Client talks to the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	timeout    time.Duration
}

// NewClient creates a Client. An empty token sends unauthenticated requests.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// userResponse mirrors the fields read from GET /users/{name}.
type userResponse struct {
	Login     string  `json:"login"`
	AvatarURL string  `json:"avatar_url"`
	Email     *string `json:"email"`
	HTMLURL   string  `json:"html_url"`
	Type      string  `json:"type"`
	SiteAdmin bool    `json:"site_admin"`
}

func (u userResponse) record() readme.ProfileRecord {
	rec := readme.ProfileRecord{
		Name:        u.Login,
		AvatarURL:   u.AvatarURL,
		ProfileURL:  u.HTMLURL,
		AccountType: u.Type,
		IsAdmin:     u.SiteAdmin,
	}
	if u.Email != nil {
		rec.Email = *u.Email
	}
	return rec
}

type searchResponse struct {
	Items []userResponse `json:"items"`
}

// Fetch returns the public profile for handle.
func (c *Client) Fetch(ctx context.Context, handle string) (*readme.ProfileRecord, error) {
	var user userResponse
	if err := c.get(ctx, "/users/"+url.PathEscape(handle), &user); err != nil {
		return nil, err
	}
	rec := user.record()
	return &rec, nil
}

// Search returns the users matching term, in the service's ranking order.
func (c *Client) Search(ctx context.Context, term string) ([]readme.ProfileRecord, error) {
	var result searchResponse
	if err := c.get(ctx, "/search/users?q="+url.QueryEscape(term), &result); err != nil {
		return nil, err
	}

	records := make([]readme.ProfileRecord, 0, len(result.Items))
	for _, item := range result.Items {
		records = append(records, item.record())
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, path string, into any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "goodreadme")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(into); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
