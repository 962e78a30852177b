package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/abdidvp/repohealth/internal/domain"
)

const (
	minSourceFilesForTests = 10
	minTestRatio           = 0.10
)

var testFrameworks = []string{
	"jest",
	"vitest",
	"mocha",
	"jasmine",
	"ava",
	"tap",
	"uvu",
	"cypress",
	"@playwright/test",
	"@testing-library/react",
	"karma",
}

var ciFiles = []string{
	".gitlab-ci.yml",
	".travis.yml",
	".circleci/config.yml",
	"Jenkinsfile",
	"azure-pipelines.yml",
	"bitbucket-pipelines.yml",
	".drone.yml",
	"appveyor.yml",
}

var ciDirPrefixes = []string{".github/workflows/", ".buildkite/"}

// CheckTesting looks for a test framework, CI configuration and a reasonable
// ratio of test files to source files.
func CheckTesting(in *domain.AnalysisInput) []domain.Finding {
	var findings []domain.Finding

	// Without a manifest there may simply be nothing to build, so stay quiet.
	if content, ok := in.Content(manifestFile); ok {
		if m, err := parseManifest(content); err == nil && !declaresTestFramework(m) {
			findings = append(findings, domain.Finding{
				ID:          "test-no-framework",
				Category:    domain.CategoryTesting,
				Severity:    domain.SeverityWarning,
				Title:       "No test framework",
				Description: "package.json does not depend on a known test framework (Jest, Vitest, Mocha, Playwright, ...).",
				FilePath:    manifestFile,
				Suggestion:  "Add a test runner such as Vitest or Jest to devDependencies and a test script.",
			})
		}
	}

	if !hasCIConfig(in) {
		findings = append(findings, domain.Finding{
			ID:          "test-no-ci",
			Category:    domain.CategoryTesting,
			Severity:    domain.SeverityWarning,
			Title:       "No CI configuration",
			Description: "No continuous integration configuration was found (GitHub Actions, GitLab CI, CircleCI, Travis, Jenkins, ...).",
			Suggestion:  "Add a CI workflow that installs dependencies, lints and runs the tests on every push.",
		})
	}

	// Test files are source files too; the ratio is tests over all sources.
	var sources, tests int
	for _, e := range in.Blobs() {
		if isCodeFile(e.Path) {
			sources++
		}
		if isTestPath(e.Path) {
			tests++
		}
	}

	if sources > minSourceFilesForTests {
		ratio := float64(tests) / float64(sources)
		switch {
		case tests == 0:
			findings = append(findings, domain.Finding{
				ID:          "test-no-test-files",
				Category:    domain.CategoryTesting,
				Severity:    domain.SeverityWarning,
				Title:       "No test files",
				Description: fmt.Sprintf("The repository has %d source files and no test files.", sources),
				Suggestion:  "Start with tests for the most critical modules and grow coverage from there.",
			})
		case ratio < minTestRatio:
			findings = append(findings, domain.Finding{
				ID:       "test-low-ratio",
				Category: domain.CategoryTesting,
				Severity: domain.SeverityInfo,
				Title:    "Low test-to-source ratio",
				Description: fmt.Sprintf("Only %d test %s for %d source files (%d%%).",
					tests, pluralize(tests, "file", "files"), sources, int(math.Round(ratio*100))),
				Suggestion: "Add tests alongside new and changed code to raise coverage.",
			})
		}
	}

	return findings
}

func declaresTestFramework(m *packageManifest) bool {
	for _, name := range testFrameworks {
		if _, ok := m.Dependencies[name]; ok {
			return true
		}
		if _, ok := m.DevDependencies[name]; ok {
			return true
		}
	}
	return false
}

func hasCIConfig(in *domain.AnalysisInput) bool {
	if hasAnyPath(in, ciFiles...) {
		return true
	}
	for _, e := range in.Tree {
		for _, prefix := range ciDirPrefixes {
			if strings.HasPrefix(e.Path, prefix) {
				return true
			}
		}
	}
	return false
}
