package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/repohealth/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/repohealth/internal/domain"
)

func initRepo(t *testing.T, remoteURLs ...string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	if len(remoteURLs) > 0 {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: remoteURLs})
		require.NoError(t, err)
	}
	return dir
}

func TestGitInfo_OriginURL(t *testing.T) {
	dir := initRepo(t, "git@github.com:acme/widgets.git", "https://github.com/acme/widgets")

	url, err := gitinfo.New().OriginURL(dir)
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:acme/widgets.git", url)
}

func TestGitInfo_OriginURL_FromSubdirectory(t *testing.T) {
	dir := initRepo(t, "https://github.com/acme/widgets.git")
	sub := filepath.Join(dir, "src", "lib")
	require.NoError(t, os.MkdirAll(sub, 0755))

	url, err := gitinfo.New().OriginURL(sub)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widgets.git", url)
}

func TestGitInfo_OriginURL_NoRemote(t *testing.T) {
	dir := initRepo(t)

	_, err := gitinfo.New().OriginURL(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "origin" remote`)
}

func TestGitInfo_ImplementsRemoteResolver(t *testing.T) {
	var _ domain.RemoteResolver = gitinfo.New()
}

func TestGitInfo_OriginURL_NotGitRepo(t *testing.T) {
	_, err := gitinfo.New().OriginURL(t.TempDir())
	assert.Error(t, err)
}
