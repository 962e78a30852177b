package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/repohealth/internal/domain"
)

// Analyzer runs a full analysis of one repository.
type Analyzer interface {
	AnalyzeRepo(ctx context.Context, owner, repo string) (*domain.AnalysisResult, error)
}

// NewRepoHealthMCPServer creates an MCP server with all repohealth tools and
// resources registered. Results are memoised in cache when it is non-nil.
func NewRepoHealthMCPServer(analyzer Analyzer, cache domain.ResultCache, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"repohealth",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	h := &handlers{analyzer: analyzer, cache: cache}
	registerTools(s, h)
	registerResources(s, h)

	return s
}

type handlers struct {
	analyzer Analyzer
	cache    domain.ResultCache
}

// analyze returns the cached result for ref and caches fresh results. With
// refresh set the cached entry is dropped first, so a failed re-analysis
// never leaves a stale result behind.
func (h *handlers) analyze(ctx context.Context, ref domain.RepoRef, refresh bool) (*domain.AnalysisResult, error) {
	if h.cache != nil {
		if refresh {
			h.cache.Invalidate(ref)
		} else if result, ok := h.cache.Get(ref); ok {
			return result, nil
		}
	}

	result, err := h.analyzer.AnalyzeRepo(ctx, ref.Owner, ref.Repo)
	if err != nil {
		return nil, err
	}
	if h.cache != nil {
		h.cache.Add(ref, result)
	}
	return result, nil
}
