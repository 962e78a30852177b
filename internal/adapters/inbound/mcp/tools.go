package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/repohealth/internal/domain"
)

func registerTools(s *server.MCPServer, h *handlers) {
	// 1. repohealth_analyze
	s.AddTool(
		mcplib.NewTool("repohealth_analyze",
			mcplib.WithDescription("Analyse a GitHub repository's code health and return findings plus a 0-100 health score as JSON"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("Repository URL, e.g. https://github.com/owner/repo"),
			),
			mcplib.WithString("min_severity",
				mcplib.Description("Only list findings at least this severe: critical, warning or info"),
			),
			mcplib.WithBoolean("refresh", mcplib.Description("Ignore any cached result and analyse again")),
		),
		h.handleAnalyze,
	)

	// 2. repohealth_parse_url
	s.AddTool(
		mcplib.NewTool("repohealth_parse_url",
			mcplib.WithDescription("Extract owner and repository name from a GitHub URL without contacting the API"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("Repository URL to parse"),
			),
		),
		h.handleParseURL,
	)
}

func (h *handlers) handleAnalyze(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	rawURL, err := request.RequireString("url")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	minSeverity := domain.SeverityInfo
	if s, _ := request.GetArguments()["min_severity"].(string); s != "" {
		minSeverity, err = domain.ParseSeverity(s)
		if err != nil {
			return errorResult(err.Error()), nil
		}
	}
	refresh, _ := request.GetArguments()["refresh"].(bool)

	ref, err := domain.ParseRepoURL(rawURL)
	if err != nil {
		return errorResult(domain.Describe(err)), nil
	}

	result, err := h.analyze(ctx, ref, refresh)
	if err != nil {
		return errorResult(domain.Describe(err)), nil
	}

	// The summary always covers every finding; only the list is filtered.
	shown := *result
	shown.Findings = domain.FilterBySeverity(result.Findings, minSeverity)
	if shown.Findings == nil {
		shown.Findings = []domain.Finding{}
	}
	return jsonResult(shown)
}

func (h *handlers) handleParseURL(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	rawURL, err := request.RequireString("url")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	ref, err := domain.ParseRepoURL(rawURL)
	if err != nil {
		return errorResult(domain.Describe(err)), nil
	}
	return jsonResult(ref)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
