// Package activation decides whether a URL is a profile page the game can
// run on, and fetches that page.
package activation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// profileURL matches a bare profile page: one path segment, optional
// trailing slash, nothing after it.
var profileURL = regexp.MustCompile(`^https://github\.com/[^/]+/?$`)

// Notification is shown to the user when the game cannot start.
type Notification struct {
	Title   string
	Message string
}

// NotProfilePage is the notification for a URL that is not a profile page.
var NotProfilePage = Notification{
	Title:   "GitHub Tetris",
	Message: "Please open a GitHub profile page to play Tetris.",
}

// Check reports whether url is a profile page. When it is not, the returned
// notification tells the user what to do.
func Check(url string) (Notification, bool) {
	if profileURL.MatchString(url) {
		return Notification{}, true
	}
	return NotProfilePage, false
}

// maxPageSize bounds how much of a page is read.
const maxPageSize = 8 << 20

// Fetcher downloads profile pages.
type Fetcher struct {
	Client *http.Client
}

// NewFetcher creates a fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch checks url and downloads the page body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if n, ok := Check(url); !ok {
		return nil, fmt.Errorf("activation: %s: %s", url, n.Message)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("activation: cannot build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("activation: cannot fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("activation: fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("activation: cannot read %s: %w", url, err)
	}
	return body, nil
}

// Fetch downloads url with a default fetcher.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	return NewFetcher(30*time.Second).Fetch(ctx, url)
}
