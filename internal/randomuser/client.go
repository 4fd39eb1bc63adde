// Package randomuser fetches person identities from a randomuser.me
// compatible API. The server queries it exactly once, at startup, to seed
// the mock dataset.
package randomuser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Identity is a single person record as returned by the API.
type Identity struct {
	Login struct {
		UUID     string `json:"uuid"`
		Username string `json:"username"`
	} `json:"login"`
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Picture struct {
		Large string `json:"large"`
	} `json:"picture"`
}

type apiResponse struct {
	Results []Identity `json:"results"`
}

// Client calls the random-identity API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch retrieves count identities. Any transport failure, non-200 status
// or undecodable body is returned as an error; there is no retry.
func (c *Client) Fetch(ctx context.Context, count int) ([]Identity, error) {
	u := fmt.Sprintf("%s?results=%d", c.baseURL, count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build random user request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("random user API returned status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode random user response: %w", err)
	}

	return body.Results, nil
}
