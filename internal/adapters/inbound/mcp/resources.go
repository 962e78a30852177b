package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/repohealth/internal/domain"
)

const categoriesURI = "repohealth://categories"

type categoryDoc struct {
	ID    domain.Category `json:"id"`
	Label string          `json:"label"`
}

type severityDoc struct {
	ID      domain.Severity `json:"id"`
	Penalty int             `json:"penalty"`
}

type catalogDoc struct {
	Categories []categoryDoc `json:"categories"`
	Severities []severityDoc `json:"severities"`
	MaxScore   int           `json:"max_score"`
}

func registerResources(s *server.MCPServer, h *handlers) {
	// 1. repohealth://categories - finding categories and severity penalties
	s.AddResource(
		mcplib.NewResource(
			categoriesURI,
			"Categories",
			mcplib.WithResourceDescription("Finding categories and the health-score penalty of each severity"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCategoriesResource,
	)

	// 2. repohealth://repos/{owner}/{repo} - analysis of one repository
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"repohealth://repos/{owner}/{repo}",
			"Repository Analysis",
			mcplib.WithTemplateDescription("Health analysis of a GitHub repository, served from cache when available"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		h.handleRepoResource,
	)
}

func catalog() catalogDoc {
	doc := catalogDoc{MaxScore: domain.HealthScore(nil)}
	for _, c := range domain.AllCategories {
		doc.Categories = append(doc.Categories, categoryDoc{ID: c, Label: c.Label()})
	}
	for _, s := range domain.AllSeverities {
		doc.Severities = append(doc.Severities, severityDoc{ID: s, Penalty: s.Penalty()})
	}
	return doc
}

func handleCategoriesResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(catalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling categories: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      categoriesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) handleRepoResource(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	ref, err := refFromArguments(request.Params.Arguments)
	if err != nil {
		return nil, err
	}

	result, err := h.analyze(ctx, ref, false)
	if err != nil {
		return nil, fmt.Errorf("analysing %s: %s", ref, domain.Describe(err))
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// refFromArguments reads template variables, which the server may deliver
// as a string or a single-element list.
func refFromArguments(args map[string]any) (domain.RepoRef, error) {
	owner := argString(args["owner"])
	repo := argString(args["repo"])
	if owner == "" || repo == "" {
		return domain.RepoRef{}, fmt.Errorf("owner and repo are required")
	}
	return domain.RepoRef{Owner: owner, Repo: repo}, nil
}

func argString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}
