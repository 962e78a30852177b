// Package github implements domain.SourceProvider against the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v62/github"

	"github.com/abdidvp/repohealth/internal/domain"
)

// Client implements domain.SourceProvider using go-github.
type Client struct {
	gh *gh.Client
}

// New builds a client from cfg. An empty cfg.Token means anonymous requests,
// subject to the provider's public rate limit.
func New(cfg domain.Config) (*Client, error) {
	cfg = cfg.WithDefaults()
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing api base url %q: %w", cfg.APIBaseURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	client := gh.NewClient(&http.Client{Timeout: timeout})
	client.BaseURL = base
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}
	return &Client{gh: client}, nil
}

func (c *Client) FetchRepoInfo(ctx context.Context, owner, repo string) (domain.RepoInfo, error) {
	r, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if statusOf(resp) == http.StatusNotFound {
			return domain.RepoInfo{}, fmt.Errorf("%s/%s: %w", owner, repo, domain.ErrRepoNotFound)
		}
		return domain.RepoInfo{}, providerError("get repository", resp, err)
	}

	return domain.RepoInfo{
		Owner:         r.GetOwner().GetLogin(),
		Name:          r.GetName(),
		DefaultBranch: r.GetDefaultBranch(),
		Description:   r.GetDescription(),
		Language:      r.GetLanguage(),
		SizeKB:        r.GetSize(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
		Topics:        r.Topics,
	}, nil
}

func (c *Client) FetchRepoTree(ctx context.Context, owner, repo, branch string) (domain.Tree, error) {
	t, resp, err := c.gh.Git.GetTree(ctx, owner, repo, branch, true)
	if err != nil {
		return domain.Tree{}, providerError("get tree", resp, err)
	}

	entries := make([]domain.TreeEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		entry := domain.TreeEntry{
			Path: e.GetPath(),
			Type: domain.EntryType(e.GetType()),
		}
		if entry.Type == domain.EntryBlob && e.Size != nil {
			size := *e.Size
			entry.Size = &size
		}
		entries = append(entries, entry)
	}
	return domain.Tree{Entries: entries, Truncated: t.GetTruncated()}, nil
}

// FetchFileContent returns the decoded content of one file. Base64 and
// inline plain-text responses are both handled.
func (c *Client) FetchFileContent(ctx context.Context, owner, repo, path string) (string, error) {
	file, _, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return "", &domain.FileFetchError{Path: path, StatusCode: statusOf(resp), Err: err}
	}
	if file == nil {
		return "", &domain.FileFetchError{Path: path, StatusCode: statusOf(resp), Err: errors.New("path is a directory")}
	}

	content, err := file.GetContent()
	if err != nil {
		return "", &domain.FileFetchError{Path: path, StatusCode: statusOf(resp), Err: fmt.Errorf("decoding content: %w", err)}
	}
	return content, nil
}

func providerError(op string, resp *gh.Response, err error) error {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		err = fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	return &domain.ProviderError{Op: op, StatusCode: statusOf(resp), Err: err}
}

func statusOf(resp *gh.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
