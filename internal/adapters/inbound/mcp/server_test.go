package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/abdidvp/repohealth/internal/adapters/inbound/mcp"
	"github.com/abdidvp/repohealth/internal/adapters/outbound/cache"
	"github.com/abdidvp/repohealth/internal/domain"
)

type fakeAnalyzer struct {
	calls  int
	err    error
	result *domain.AnalysisResult
}

func (f *fakeAnalyzer) AnalyzeRepo(_ context.Context, owner, repo string) (*domain.AnalysisResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	findings := []domain.Finding{
		{ID: "sec-env-exposed", Category: domain.CategorySecurity, Severity: domain.SeverityCritical, Title: "env"},
		{ID: "doc-minimal", Category: domain.CategoryDocumentation, Severity: domain.SeverityInfo, Title: "docs"},
	}
	return &domain.AnalysisResult{
		Repo:     domain.RepoInfo{Owner: owner, Name: repo, DefaultBranch: "main"},
		Findings: findings,
		Summary:  domain.Summarize(findings),
	}, nil
}

func newCache(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.New(8)
	require.NoError(t, err)
	return store
}

func callTool(t *testing.T, analyzer mcpadapter.Analyzer, store domain.ResultCache, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	s := mcpadapter.NewRepoHealthMCPServer(analyzer, store, "test")
	tool, ok := s.ListTools()[name]
	require.True(t, ok, "tool %q should be registered", name)

	res, err := tool.Handler(context.Background(), mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "tool failures are reported in the result, not as errors")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewRepoHealthMCPServer(&fakeAnalyzer{}, nil, "test")
	require.NotNil(t, s)

	tools := s.ListTools()
	expectedTools := []string{"repohealth_analyze", "repohealth_parse_url"}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}

func TestAnalyzeTool_ReturnsResultJSON(t *testing.T) {
	res := callTool(t, &fakeAnalyzer{}, nil, "repohealth_analyze", map[string]any{
		"url": "https://github.com/acme/widgets",
	})
	assert.False(t, res.IsError)

	var got domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, "widgets", got.Repo.Name)
	assert.Len(t, got.Findings, 2)
	assert.Equal(t, 82, got.Summary.HealthScore)
}

func TestAnalyzeTool_MinSeverityFiltersFindingsOnly(t *testing.T) {
	res := callTool(t, &fakeAnalyzer{}, nil, "repohealth_analyze", map[string]any{
		"url":          "https://github.com/acme/widgets",
		"min_severity": "critical",
	})
	require.False(t, res.IsError)

	var got domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got.Findings, 1)
	assert.Equal(t, "sec-env-exposed", got.Findings[0].ID)
	assert.Equal(t, 2, got.Summary.TotalFindings)
}

func TestAnalyzeTool_InvalidSeverity(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	res := callTool(t, analyzer, nil, "repohealth_analyze", map[string]any{
		"url":          "https://github.com/acme/widgets",
		"min_severity": "fatal",
	})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "unknown severity")
	assert.Zero(t, analyzer.calls)
}

func TestAnalyzeTool_MissingURL(t *testing.T) {
	res := callTool(t, &fakeAnalyzer{}, nil, "repohealth_analyze", map[string]any{})
	assert.True(t, res.IsError)
}

func TestAnalyzeTool_InvalidURL(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	res := callTool(t, analyzer, nil, "repohealth_analyze", map[string]any{"url": "not a url"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Invalid repository URL")
	assert.Zero(t, analyzer.calls)
}

func TestAnalyzeTool_NotFound(t *testing.T) {
	analyzer := &fakeAnalyzer{err: fmt.Errorf("fetching repository acme/gone: %w", domain.ErrRepoNotFound)}
	res := callTool(t, analyzer, nil, "repohealth_analyze", map[string]any{"url": "https://github.com/acme/gone"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Repository not found")
}

func TestAnalyzeTool_UsesCache(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	store := newCache(t)
	s := mcpadapter.NewRepoHealthMCPServer(analyzer, store, "test")
	tool := s.ListTools()["repohealth_analyze"]

	call := func(args map[string]any) {
		res, err := tool.Handler(context.Background(), mcplib.CallToolRequest{
			Params: mcplib.CallToolParams{Name: "repohealth_analyze", Arguments: args},
		})
		require.NoError(t, err)
		require.False(t, res.IsError)
	}

	call(map[string]any{"url": "https://github.com/acme/widgets"})
	call(map[string]any{"url": "https://github.com/Acme/Widgets.git"})
	assert.Equal(t, 1, analyzer.calls, "second call should be served from cache")

	call(map[string]any{"url": "https://github.com/acme/widgets", "refresh": true})
	assert.Equal(t, 2, analyzer.calls)
}

func TestAnalyzeTool_ErrorsAreNotCached(t *testing.T) {
	analyzer := &fakeAnalyzer{err: domain.ErrRateLimited}
	store := newCache(t)

	_ = callTool(t, analyzer, store, "repohealth_analyze", map[string]any{"url": "https://github.com/acme/widgets"})
	_, ok := store.Get(domain.RepoRef{Owner: "acme", Repo: "widgets"})
	assert.False(t, ok)
}

func TestAnalyzeTool_RefreshDropsStaleResult(t *testing.T) {
	store := newCache(t)
	ref := domain.RepoRef{Owner: "acme", Repo: "widgets"}
	store.Add(ref, &domain.AnalysisResult{Summary: domain.AnalysisSummary{HealthScore: 12}})

	analyzer := &fakeAnalyzer{err: domain.ErrRateLimited}
	res := callTool(t, analyzer, store, "repohealth_analyze", map[string]any{
		"url":     "https://github.com/acme/widgets",
		"refresh": true,
	})
	assert.True(t, res.IsError)
	assert.Equal(t, 1, analyzer.calls)

	_, ok := store.Get(ref)
	assert.False(t, ok, "failed refresh must not keep the old result")
}

func TestParseURLTool(t *testing.T) {
	res := callTool(t, &fakeAnalyzer{}, nil, "repohealth_parse_url", map[string]any{
		"url": "https://github.com/acme/widgets/tree/main/src",
	})
	require.False(t, res.IsError)

	var ref domain.RepoRef
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &ref))
	assert.Equal(t, domain.RepoRef{Owner: "acme", Repo: "widgets"}, ref)
}

func TestParseURLTool_Invalid(t *testing.T) {
	res := callTool(t, &fakeAnalyzer{}, nil, "repohealth_parse_url", map[string]any{"url": "https://gitlab.com/a/b"})
	assert.True(t, res.IsError)
}
