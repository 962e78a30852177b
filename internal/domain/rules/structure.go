package rules

import (
	"fmt"
	"strings"

	"github.com/abdidvp/repohealth/internal/domain"
)

const (
	maxPathDepth = 7
	maxRootFiles = 15
	srcDirPrefix = "src/"
)

// CheckProjectStructure looks for a src/ directory, any test layout, overly
// deep paths and a cluttered repository root.
func CheckProjectStructure(in *domain.AnalysisInput) []domain.Finding {
	var findings []domain.Finding

	hasSrc, hasTests := false, false
	var deepPaths []string
	deepest, deepestDepth := "", 0
	rootFiles := 0

	for _, e := range in.Tree {
		if strings.HasPrefix(e.Path, srcDirPrefix) {
			hasSrc = true
		}
		if isTestPath(e.Path) {
			hasTests = true
		}
		depth := len(strings.Split(e.Path, "/"))
		if depth > maxPathDepth {
			deepPaths = append(deepPaths, e.Path)
			if depth > deepestDepth {
				deepest, deepestDepth = e.Path, depth
			}
		}
		if e.IsBlob() && !strings.Contains(e.Path, "/") {
			rootFiles++
		}
	}

	if !hasSrc {
		findings = append(findings, domain.Finding{
			ID:          "ps-no-src",
			Category:    domain.CategoryProjectStructure,
			Severity:    domain.SeverityInfo,
			Title:       "No src/ directory",
			Description: "Source code is not organised under a root src/ directory, which makes the entry points harder to locate.",
			Suggestion:  "Move application source files into a src/ directory to separate them from configuration and tooling.",
		})
	}

	if !hasTests {
		findings = append(findings, domain.Finding{
			ID:          "ps-no-tests",
			Category:    domain.CategoryProjectStructure,
			Severity:    domain.SeverityWarning,
			Title:       "No test directory or test files",
			Description: "No test/, tests/, __tests__/ or spec/ directory and no *.test.* or *.spec.* files were found.",
			Suggestion:  "Add tests next to the code (*.test.ts) or in a dedicated tests/ directory.",
		})
	}

	if len(deepPaths) > 0 {
		findings = append(findings, domain.Finding{
			ID:       "ps-deep-nesting",
			Category: domain.CategoryProjectStructure,
			Severity: domain.SeverityInfo,
			Title:    "Deeply nested paths",
			Description: fmt.Sprintf("%d %s nested more than %d levels deep (deepest: %d levels).",
				len(deepPaths), pluralize(len(deepPaths), "path is", "paths are"), maxPathDepth, deepestDepth),
			FilePath:   deepest,
			Suggestion: "Flatten the directory hierarchy; deep nesting usually signals over-segmented modules.",
		})
	}

	if rootFiles > maxRootFiles {
		findings = append(findings, domain.Finding{
			ID:          "ps-root-clutter",
			Category:    domain.CategoryProjectStructure,
			Severity:    domain.SeverityInfo,
			Title:       "Cluttered repository root",
			Description: fmt.Sprintf("%d files live directly in the repository root (more than %d).", rootFiles, maxRootFiles),
			Suggestion:  "Group scripts, configuration and documentation into subdirectories.",
		})
	}

	return findings
}
