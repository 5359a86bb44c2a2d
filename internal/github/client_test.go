package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v74/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	api.BaseURL = base

	return &Client{
		api:     api,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func TestClient_ListRepositories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"name":             "musicjam",
				"full_name":        "yazwho/musicjam",
				"description":      "collaborative jam sessions",
				"html_url":         "https://github.com/yazwho/musicjam",
				"clone_url":        "https://github.com/yazwho/musicjam.git",
				"language":         "JavaScript",
				"stargazers_count": 7,
				"updated_at":       "2025-08-01T10:00:00Z",
			},
			{
				"name":      "dotfiles",
				"full_name": "yazwho/dotfiles",
				"html_url":  "https://github.com/yazwho/dotfiles",
				"clone_url": "https://github.com/yazwho/dotfiles.git",
			},
		})
	})

	client := newTestClient(t, mux)

	repos, err := client.ListRepositories(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "musicjam", repos[0].Name)
	assert.Equal(t, "yazwho/musicjam", repos[0].FullName)
	assert.Equal(t, "https://github.com/yazwho/musicjam", repos[0].URL)
	assert.Equal(t, "JavaScript", repos[0].Language)
	assert.Equal(t, 7, repos[0].Stars)
	require.NotNil(t, repos[0].UpdatedAt)
	assert.Equal(t, 2025, repos[0].UpdatedAt.Year())

	assert.Nil(t, repos[1].UpdatedAt)
}

func TestClient_ListRepositories_Error(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Bad credentials"}`, http.StatusUnauthorized)
	})

	client := newTestClient(t, mux)

	_, err := client.ListRepositories(context.Background())
	assert.Error(t, err)
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSplitFullName(t *testing.T) {
	owner, repo, err := SplitFullName("yazwho/musicjam")
	require.NoError(t, err)
	assert.Equal(t, "yazwho", owner)
	assert.Equal(t, "musicjam", repo)

	_, _, err = SplitFullName("musicjam")
	assert.Error(t, err)

	_, _, err = SplitFullName("/musicjam")
	assert.Error(t, err)
}
