package activation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://github.com/octocat", true},
		{"https://github.com/octocat/", true},
		{"https://github.com/octocat/hello-world", false},
		{"https://github.com/", false},
		{"https://github.com", false},
		{"http://github.com/octocat", false},
		{"https://gitlab.com/octocat", false},
		{"https://github.com/octocat?tab=repositories", true},
		{"https://github.com/octocat#top", true},
	}

	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			n, ok := Check(tc.url)
			assert.Equal(t, tc.expected, ok)
			if ok {
				assert.Empty(t, n.Title)
			} else {
				assert.Equal(t, "GitHub Tetris", n.Title)
				assert.Equal(t, "Please open a GitHub profile page to play Tetris.", n.Message)
			}
		})
	}
}

// rewrite sends every request to the test server regardless of host.
type rewrite struct {
	target string
}

func (r rewrite) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = "http"
	req.URL.Host = strings.TrimPrefix(r.target, "http://")
	return http.DefaultTransport.RoundTrip(req)
}

func newTestFetcher(t *testing.T, h http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &Fetcher{Client: &http.Client{Transport: rewrite{target: srv.URL}}}
}

func TestFetch(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/octocat", r.URL.Path)
		_, _ = w.Write([]byte("<table></table>"))
	})

	body, err := f.Fetch(context.Background(), "https://github.com/octocat")
	require.NoError(t, err)
	assert.Equal(t, "<table></table>", string(body))
}

func TestFetchRejectsNonProfile(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := f.Fetch(context.Background(), "https://github.com/octocat/repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please open a GitHub profile page")
}

func TestFetchStatus(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := f.Fetch(context.Background(), "https://github.com/nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
