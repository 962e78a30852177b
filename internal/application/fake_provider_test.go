package application_test

import (
	"context"
	"errors"
	"sync"

	"github.com/abdidvp/repohealth/internal/domain"
)

// fakeProvider is an in-memory domain.SourceProvider.
type fakeProvider struct {
	info      domain.RepoInfo
	infoErr   error
	tree      domain.Tree
	treeErr   error
	files     map[string]string
	failFiles map[string]bool

	mu        sync.Mutex
	calls     []string
	fileCalls []string
	branch    string
}

func (f *fakeProvider) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeProvider) FetchRepoInfo(_ context.Context, owner, repo string) (domain.RepoInfo, error) {
	f.record("info")
	if f.infoErr != nil {
		return domain.RepoInfo{}, f.infoErr
	}
	info := f.info
	info.Owner, info.Name = owner, repo
	return info, nil
}

func (f *fakeProvider) FetchRepoTree(_ context.Context, _, _, branch string) (domain.Tree, error) {
	f.record("tree")
	f.mu.Lock()
	f.branch = branch
	f.mu.Unlock()
	if f.treeErr != nil {
		return domain.Tree{}, f.treeErr
	}
	return f.tree, nil
}

func (f *fakeProvider) FetchFileContent(_ context.Context, _, _, path string) (string, error) {
	f.record("file")
	f.mu.Lock()
	f.fileCalls = append(f.fileCalls, path)
	f.mu.Unlock()
	if f.failFiles[path] {
		return "", &domain.FileFetchError{Path: path, StatusCode: 500, Err: errors.New("boom")}
	}
	content, ok := f.files[path]
	if !ok {
		return "", &domain.FileFetchError{Path: path, StatusCode: 404, Err: errors.New("not found")}
	}
	return content, nil
}

func blob(path string) domain.TreeEntry {
	return domain.TreeEntry{Path: path, Type: domain.EntryBlob}
}

func sizedBlob(path string, size int) domain.TreeEntry {
	return domain.TreeEntry{Path: path, Type: domain.EntryBlob, Size: &size}
}

func ids(findings []domain.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.ID)
	}
	return out
}
