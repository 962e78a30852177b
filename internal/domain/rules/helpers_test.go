package rules_test

import (
	"fmt"

	"github.com/abdidvp/repohealth/internal/domain"
)

func blob(path string) domain.TreeEntry {
	return domain.TreeEntry{Path: path, Type: domain.EntryBlob}
}

func sizedBlob(path string, size int) domain.TreeEntry {
	return domain.TreeEntry{Path: path, Type: domain.EntryBlob, Size: &size}
}

func dir(path string) domain.TreeEntry {
	return domain.TreeEntry{Path: path, Type: domain.EntryTree}
}

func input(tree []domain.TreeEntry, contents map[string]string) *domain.AnalysisInput {
	if contents == nil {
		contents = map[string]string{}
	}
	return &domain.AnalysisInput{
		RepoInfo:     domain.RepoInfo{Owner: "acme", Name: "widgets", DefaultBranch: "main"},
		Tree:         tree,
		FileContents: contents,
	}
}

func ids(findings []domain.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.ID)
	}
	return out
}

func findByID(findings []domain.Finding, id string) (domain.Finding, bool) {
	for _, f := range findings {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Finding{}, false
}

// numberedBlobs returns n blobs named prefix0.ext .. prefix(n-1).ext.
func numberedBlobs(prefix, ext string, n int) []domain.TreeEntry {
	entries := make([]domain.TreeEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, blob(fmt.Sprintf("%s%d%s", prefix, i, ext)))
	}
	return entries
}
