// Package userapi fetches the user list from a remote JSON endpoint.
//
// The endpoint is a single unauthenticated GET returning an array of objects
// with id, name and email; other fields are ignored. Non-2xx statuses are
// returned as errors carrying the URL and status text.
package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/idilsaglam/demo/internal/model"
)

const DefaultURL = "https://jsonplaceholder.typicode.com/users"

type Client struct {
	URL  string
	HTTP *http.Client
}

// New returns a Client for url. A nil httpClient means http.DefaultClient.
func New(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{URL: url, HTTP: httpClient}
}

func (c *Client) FetchUsers(ctx context.Context) ([]model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("users get %s: %w", c.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("users get %s: %s", c.URL, resp.Status)
	}
	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("users decode: %w", err)
	}
	return users, nil
}
