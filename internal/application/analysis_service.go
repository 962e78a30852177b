package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc"

	"github.com/abdidvp/repohealth/internal/domain"
	"github.com/abdidvp/repohealth/internal/domain/rules"
)

// AnalysisService orchestrates one analysis run:
// repo info → tree → key files → rule modules → summary.
type AnalysisService struct {
	provider       domain.SourceProvider
	logger         *slog.Logger
	maxConcurrency int
}

func NewAnalysisService(provider domain.SourceProvider, logger *slog.Logger, maxConcurrency int) *AnalysisService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnalysisService{
		provider:       provider,
		logger:         logger,
		maxConcurrency: maxConcurrency,
	}
}

// AnalyzeURL parses a repository URL and analyses it. An unparsable URL
// fails before any request is made.
func (s *AnalysisService) AnalyzeURL(ctx context.Context, rawURL string) (*domain.AnalysisResult, error) {
	ref, err := domain.ParseRepoURL(rawURL)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeRepo(ctx, ref.Owner, ref.Repo)
}

// AnalyzeRepo runs the full pipeline for owner/repo. Failures fetching the
// repository or its tree abort the run; key-file failures only reduce the
// data available to the rules.
func (s *AnalysisService) AnalyzeRepo(ctx context.Context, owner, repo string) (*domain.AnalysisResult, error) {
	ref := domain.RepoRef{Owner: owner, Repo: repo}

	// 1. Repository metadata (gives us the default branch)
	info, err := s.provider.FetchRepoInfo(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching repository %s: %w", ref, err)
	}

	// 2. Recursive tree of the default branch
	tree, err := s.provider.FetchRepoTree(ctx, owner, repo, info.DefaultBranch)
	if err != nil {
		return nil, fmt.Errorf("fetching tree of %s@%s: %w", ref, info.DefaultBranch, err)
	}
	if tree.Truncated {
		s.logger.Warn("repository tree truncated by provider; analysing partial tree",
			"repo", ref.String(), "branch", info.DefaultBranch, "entries", len(tree.Entries))
	}

	// 3. Key files, best effort
	contents := FetchKeyFiles(ctx, s.provider, ref, tree.Entries, s.maxConcurrency, s.logger)
	s.logger.Debug("fetched key files", "repo", ref.String(), "count", len(contents))

	// 4. Rules
	in := &domain.AnalysisInput{
		RepoInfo:     info,
		Tree:         tree.Entries,
		FileContents: contents,
	}
	findings := RunRules(in)

	return &domain.AnalysisResult{
		Repo:          info,
		TreeTruncated: tree.Truncated,
		Findings:      findings,
		Summary:       domain.Summarize(findings),
	}, nil
}

// RunRules runs every rule module concurrently against the shared input and
// concatenates their findings in category order.
func RunRules(in *domain.AnalysisInput) []domain.Finding {
	all := rules.All()
	perRule := make([][]domain.Finding, len(all))

	wg := conc.NewWaitGroup()
	for i, r := range all {
		wg.Go(func() {
			perRule[i] = r.Check(in)
		})
	}
	wg.Wait()

	findings := make([]domain.Finding, 0)
	for _, fs := range perRule {
		findings = append(findings, fs...)
	}
	return findings
}
