package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/abdidvp/repohealth/internal/domain"
)

// MaxKeyFileSize is the largest reported size, in bytes, of a key file worth fetching.
const MaxKeyFileSize = 100_000

// KeyFiles is the root-level allowlist of configuration and documentation
// files whose content the rule modules may inspect.
var KeyFiles = []string{
	"package.json",
	"tsconfig.json",
	".gitignore",
	".eslintrc",
	".eslintrc.js",
	".eslintrc.cjs",
	".eslintrc.json",
	".eslintrc.yml",
	".eslintrc.yaml",
	"eslint.config.js",
	"eslint.config.mjs",
	"eslint.config.cjs",
	"eslint.config.ts",
	".prettierrc",
	".prettierrc.json",
	".prettierrc.js",
	".prettierrc.cjs",
	".prettierrc.yml",
	".prettierrc.yaml",
	"prettier.config.js",
	"prettier.config.cjs",
	".editorconfig",
	"README.md",
	"readme.md",
	"README",
	"README.rst",
	"README.txt",
}

// SelectKeyFiles returns the allowlisted paths present in the tree as blobs,
// skipping files the provider reports as larger than MaxKeyFileSize.
func SelectKeyFiles(tree []domain.TreeEntry) []string {
	allowed := make(map[string]bool, len(KeyFiles))
	for _, name := range KeyFiles {
		allowed[name] = true
	}

	var selected []string
	for _, e := range tree {
		if !e.IsBlob() || !allowed[e.Path] {
			continue
		}
		if e.Size != nil && *e.Size > MaxKeyFileSize {
			continue
		}
		selected = append(selected, e.Path)
	}
	return selected
}

// FetchKeyFiles fetches the selected key files concurrently. A failed fetch
// only drops that file from the result; it never fails the whole call.
func FetchKeyFiles(ctx context.Context, provider domain.SourceProvider, ref domain.RepoRef, tree []domain.TreeEntry, maxConcurrency int, logger *slog.Logger) map[string]string {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if maxConcurrency <= 0 {
		maxConcurrency = domain.DefaultMaxConcurrency
	}

	contents := make(map[string]string)
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(maxConcurrency)
	for _, path := range SelectKeyFiles(tree) {
		p.Go(func() {
			content, err := provider.FetchFileContent(ctx, ref.Owner, ref.Repo, path)
			if err != nil {
				logger.Debug("skipping key file", "repo", ref.String(), "path", path, "error", err)
				return
			}
			mu.Lock()
			contents[path] = content
			mu.Unlock()
		})
	}
	p.Wait()

	return contents
}
