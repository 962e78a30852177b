package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

const originRemote = "origin"

// GitInfoAdapter implements domain.RemoteResolver using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// OriginURL returns the first URL of the origin remote of the clone that
// contains dir. Parent directories are searched for .git.
func (g *GitInfoAdapter) OriginURL(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", fmt.Errorf("no %q remote configured in %s", originRemote, dir)
		}
		return "", fmt.Errorf("reading remote %q: %w", originRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", originRemote)
	}
	return urls[0], nil
}

func open(dir string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
}
