package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gh "github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/metrics"
)

// ErrNotConfigured is returned when no personal access token was provided.
var ErrNotConfigured = errors.New("github integration not configured")

const maxRepositories = 20

// Repository is the trimmed repository view served to the dashboard.
type Repository struct {
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	CloneURL    string     `json:"clone_url"`
	Language    string     `json:"language,omitempty"`
	Stars       int        `json:"stars"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// ContentEntry is a single item of a repository directory listing.
type ContentEntry struct {
	Name string
	Path string
	Type string // file or dir
	Size int
}

// Client wraps the GitHub REST API for the account behind the configured
// token. Calls are rate limited well below GitHub's authenticated budget.
type Client struct {
	api     *gh.Client
	limiter *rate.Limiter
}

// NewClient creates a token-authenticated GitHub client.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, ErrNotConfigured
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	return &Client{
		api:     gh.NewClient(httpClient),
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}, nil
}

// ListRepositories returns the token owner's repositories, most recently
// updated first, capped at 20.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: maxRepositories},
	}
	repos, _, err := c.api.Repositories.ListByAuthenticatedUser(ctx, opts)
	metrics.ObserveUpstream("github", "list_repositories", err)
	if err != nil {
		return nil, fmt.Errorf("github api error: %w", err)
	}

	out := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		r := Repository{
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			Description: repo.GetDescription(),
			URL:         repo.GetHTMLURL(),
			CloneURL:    repo.GetCloneURL(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
		}
		if repo.UpdatedAt != nil {
			t := repo.UpdatedAt.Time
			r.UpdatedAt = &t
		}
		out = append(out, r)
		if len(out) == maxRepositories {
			break
		}
	}

	return out, nil
}

// ListDir lists one directory level of a repository.
func (c *Client) ListDir(ctx context.Context, owner, repo, path string) ([]ContentEntry, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	file, dir, _, err := c.api.Repositories.GetContents(ctx, owner, repo, path, nil)
	metrics.ObserveUpstream("github", "get_contents", err)
	if err != nil {
		return nil, fmt.Errorf("github api error: %w", err)
	}
	if file != nil {
		return []ContentEntry{{
			Name: file.GetName(),
			Path: file.GetPath(),
			Type: file.GetType(),
			Size: file.GetSize(),
		}}, nil
	}

	entries := make([]ContentEntry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, ContentEntry{
			Name: item.GetName(),
			Path: item.GetPath(),
			Type: item.GetType(),
			Size: item.GetSize(),
		})
	}
	return entries, nil
}

// FileText fetches and decodes one file's content.
func (c *Client) FileText(ctx context.Context, owner, repo, path string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	file, _, _, err := c.api.Repositories.GetContents(ctx, owner, repo, path, nil)
	metrics.ObserveUpstream("github", "get_file", err)
	if err != nil {
		return "", fmt.Errorf("github api error: %w", err)
	}
	if file == nil {
		return "", fmt.Errorf("%s is not a file", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return content, nil
}

// DefaultBranchSHA resolves the head commit of the repository's default
// branch.
func (c *Client) DefaultBranchSHA(ctx context.Context, owner, repo string) (string, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", "", err
	}

	repository, _, err := c.api.Repositories.Get(ctx, owner, repo)
	metrics.ObserveUpstream("github", "get_repository", err)
	if err != nil {
		return "", "", fmt.Errorf("github api error: %w", err)
	}

	branch := repository.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", "", err
	}
	ref, _, err := c.api.Git.GetRef(ctx, owner, repo, "refs/heads/"+branch)
	metrics.ObserveUpstream("github", "get_ref", err)
	if err != nil {
		return "", "", fmt.Errorf("github api error: %w", err)
	}

	return branch, ref.GetObject().GetSHA(), nil
}

// CreateBranch creates a new branch pointing at the given commit.
func (c *Client) CreateBranch(ctx context.Context, owner, repo, branch, sha string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, _, err := c.api.Git.CreateRef(ctx, owner, repo, &gh.Reference{
		Ref:    gh.Ptr("refs/heads/" + branch),
		Object: &gh.GitObject{SHA: gh.Ptr(sha)},
	})
	metrics.ObserveUpstream("github", "create_ref", err)
	if err != nil {
		return fmt.Errorf("github api error: %w", err)
	}
	return nil
}

// PutFile creates or updates a file on a branch.
func (c *Client) PutFile(ctx context.Context, owner, repo, branch, path, message, content string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(message),
		Content: []byte(content),
		Branch:  gh.Ptr(branch),
	}

	existing, _, _, err := c.api.Repositories.GetContents(ctx, owner, repo, path, &gh.RepositoryContentGetOptions{Ref: branch})
	if err == nil && existing != nil {
		opts.SHA = existing.SHA
		_, _, err = c.api.Repositories.UpdateFile(ctx, owner, repo, path, opts)
		metrics.ObserveUpstream("github", "update_file", err)
	} else {
		_, _, err = c.api.Repositories.CreateFile(ctx, owner, repo, path, opts)
		metrics.ObserveUpstream("github", "create_file", err)
	}
	if err != nil {
		return fmt.Errorf("github api error: %w", err)
	}
	return nil
}

// SplitFullName splits "owner/name" into its parts.
func SplitFullName(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name %q, expected owner/name", fullName)
	}
	return parts[0], parts[1], nil
}
