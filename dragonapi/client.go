// Package dragonapi is a client for the public Dragon Ball API. The API
// serves characters in pages: each response carries an "items" array and a
// "links.next" URL, empty on the last page.
package dragonapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const defaultPageSize = 10

// Character is the upstream payload for one catalog entry. Fields are
// passed through untouched.
type Character struct {
	Id              int      `json:"id"`
	Name            string   `json:"name"`
	Ki              string   `json:"ki"`
	MaxKi           string   `json:"maxKi"`
	Race            string   `json:"race"`
	Gender          string   `json:"gender"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Affiliation     string   `json:"affiliation"`
	DeletedAt       *string  `json:"deletedAt"`
	Transformations []string `json:"transformations,omitempty"`
}

type page struct {
	Items []Character `json:"items"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// Client fetches catalog pages.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ForEachPage walks the catalog from the first page, invoking fn with the
// items of every page until the next link runs out. Any fetch, decode, or
// callback error aborts the walk.
func (c *Client) ForEachPage(ctx context.Context, fn func(items []Character) error) error {
	url := fmt.Sprintf("%s?limit=%d", c.baseURL, defaultPageSize)

	for url != "" {
		p, err := c.fetchPage(ctx, url)
		if err != nil {
			return err
		}
		if err := fn(p.Items); err != nil {
			return err
		}
		url = p.Links.Next
	}
	return nil
}

func (c *Client) fetchPage(ctx context.Context, url string) (*page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	p := &page{}
	if err := json.Unmarshal(body, p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return p, nil
}
