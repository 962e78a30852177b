package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// RepoRef identifies a repository on the source provider.
type RepoRef struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

func (r RepoRef) String() string { return r.Owner + "/" + r.Repo }

// repoURLPattern matches owner/repo in web URLs, bare host paths and SSH
// remotes (git@github.com:owner/repo.git). The host must be github.com or
// www.github.com and must open the input, after an optional scheme and user.
var repoURLPattern = regexp.MustCompile(
	`^(?i:[a-z][a-z0-9+.-]*://)?(?:[^@/\s]+@)?(?i:www\.)?(?i:github\.com)[/:]([^/\s:]+)/([^/\s?#]+)`)

// ParseRepoURL extracts owner and repository name from a repository URL.
// It does not check that the repository exists.
func ParseRepoURL(raw string) (RepoRef, error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidURLFormat, raw)
	}
	repo := strings.TrimSuffix(m[2], ".git")
	if m[1] == "" || repo == "" {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidURLFormat, raw)
	}
	return RepoRef{Owner: m[1], Repo: repo}, nil
}
