package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURLFormat is returned when a string has no host/owner/repo path.
	ErrInvalidURLFormat = errors.New("invalid repository URL format")
	// ErrRepoNotFound is returned when the provider answers 404 for a repository.
	ErrRepoNotFound = errors.New("repository not found")
	// ErrRateLimited is wrapped by ProviderError when the provider throttles us.
	ErrRateLimited = errors.New("provider rate limit exceeded")
)

// ProviderError reports a non-2xx answer (or transport failure, StatusCode 0)
// from the repository or tree endpoints.
type ProviderError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: provider returned status %d: %v", e.Op, e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// FileFetchError reports a failed file-content request.
type FileFetchError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *FileFetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetching %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("fetching %s: status %d: %v", e.Path, e.StatusCode, e.Err)
}

func (e *FileFetchError) Unwrap() error { return e.Err }

// Describe turns an analysis error into a one-line message for users.
func Describe(err error) string {
	var provErr *ProviderError
	var fileErr *FileFetchError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidURLFormat):
		return fmt.Sprintf("Invalid repository URL: %v. Expected https://github.com/owner/repo.", err)
	case errors.Is(err, ErrRepoNotFound):
		return "Repository not found. Check the owner and name, or provide a token for private repositories."
	case errors.Is(err, ErrRateLimited):
		return "GitHub API rate limit exceeded. Set GITHUB_TOKEN or retry later."
	case errors.As(err, &provErr):
		if provErr.StatusCode == 0 {
			return fmt.Sprintf("Could not reach the GitHub API: %v", provErr.Err)
		}
		return fmt.Sprintf("GitHub API error (status %d) during %s.", provErr.StatusCode, provErr.Op)
	case errors.As(err, &fileErr):
		return fmt.Sprintf("Could not fetch %s: %v", fileErr.Path, fileErr.Err)
	default:
		return err.Error()
	}
}
