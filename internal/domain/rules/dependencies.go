package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abdidvp/repohealth/internal/domain"
)

const maxProdDependencies = 30

var lockFiles = []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb"}

// devToolPatterns are package-name substrings of tooling that belongs in devDependencies.
var devToolPatterns = []string{
	"eslint",
	"prettier",
	"jest",
	"vitest",
	"mocha",
	"@types/",
	"typescript",
	"ts-node",
	"nodemon",
	"webpack",
	"husky",
	"lint-staged",
	"@testing-library/",
}

// CheckDependencies inspects package.json: lockfile presence, dev tools in
// production dependencies, dependency count and scripts. An unparsable
// manifest yields a single critical finding and nothing else.
func CheckDependencies(in *domain.AnalysisInput) []domain.Finding {
	content, fetched := in.Content(manifestFile)
	if !fetched && !in.HasPath(manifestFile) {
		return nil
	}

	var manifest *packageManifest
	if fetched {
		m, err := parseManifest(content)
		if err != nil {
			return []domain.Finding{{
				ID:          "dep-invalid-pkg",
				Category:    domain.CategoryDependencies,
				Severity:    domain.SeverityCritical,
				Title:       "Invalid package.json",
				Description: fmt.Sprintf("package.json could not be parsed as JSON: %v.", err),
				FilePath:    manifestFile,
				Suggestion:  "Fix the JSON syntax in package.json; installs and tooling will fail until it parses.",
			}}
		}
		manifest = m
	}

	var findings []domain.Finding

	if !hasAnyPath(in, lockFiles...) {
		findings = append(findings, domain.Finding{
			ID:          "dep-no-lockfile",
			Category:    domain.CategoryDependencies,
			Severity:    domain.SeverityWarning,
			Title:       "No lockfile committed",
			Description: fmt.Sprintf("package.json is present but none of %s is committed, so installs are not reproducible.", strings.Join(lockFiles, ", ")),
			FilePath:    manifestFile,
			Suggestion:  "Commit the lockfile produced by your package manager.",
		})
	}

	if manifest == nil {
		return findings
	}

	if devInProd := devToolsInProduction(manifest); len(devInProd) > 0 {
		findings = append(findings, domain.Finding{
			ID:       "dep-dev-in-prod",
			Category: domain.CategoryDependencies,
			Severity: domain.SeverityWarning,
			Title:    "Development tools in production dependencies",
			Description: fmt.Sprintf("%d development %s listed under dependencies: %s.",
				len(devInProd), pluralize(len(devInProd), "package is", "packages are"), strings.Join(devInProd, ", ")),
			FilePath:   manifestFile,
			Suggestion: "Move build, lint, test and type-only packages to devDependencies.",
		})
	}

	if n := len(manifest.Dependencies); n > maxProdDependencies {
		findings = append(findings, domain.Finding{
			ID:          "dep-too-many",
			Category:    domain.CategoryDependencies,
			Severity:    domain.SeverityInfo,
			Title:       "Large number of production dependencies",
			Description: fmt.Sprintf("package.json declares %d production dependencies (more than %d).", n, maxProdDependencies),
			FilePath:    manifestFile,
			Suggestion:  "Audit dependencies and remove unused or redundant packages.",
		})
	}

	if len(manifest.Scripts) == 0 {
		findings = append(findings, domain.Finding{
			ID:          "dep-no-scripts",
			Category:    domain.CategoryDependencies,
			Severity:    domain.SeverityInfo,
			Title:       "No npm scripts",
			Description: "package.json has no scripts, so there is no standard way to build, test or lint the project.",
			FilePath:    manifestFile,
			Suggestion:  "Add build, test and lint scripts to package.json.",
		})
	}

	return findings
}

// devToolsInProduction returns, sorted, the production dependencies that
// match a dev-tool pattern and are not also declared as dev dependencies.
func devToolsInProduction(m *packageManifest) []string {
	var found []string
	for name := range m.Dependencies {
		if _, dev := m.DevDependencies[name]; dev {
			continue
		}
		for _, pattern := range devToolPatterns {
			if strings.Contains(name, pattern) {
				found = append(found, name)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}
