package rules

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/abdidvp/repohealth/internal/domain"
)

const (
	maxSourceFileBytes = 15_000
	minMixedShare      = 0.10
	maxMixedShare      = 0.90
	minFilesForNaming  = 3
)

// CheckCodePatterns looks for a genuinely mixed JS/TS codebase, oversized
// source files and directories mixing kebab-case and camelCase file names.
func CheckCodePatterns(in *domain.AnalysisInput) []domain.Finding {
	var findings []domain.Finding

	var jsCount, tsCount int
	var largeFiles []string
	byDir := make(map[string][]string)
	var dirOrder []string

	for _, e := range in.Blobs() {
		if !isSourceFile(e.Path) {
			continue
		}
		if isTSFile(e.Path) {
			tsCount++
		} else {
			jsCount++
		}
		if e.Size != nil && *e.Size > maxSourceFileBytes {
			largeFiles = append(largeFiles, e.Path)
		}
		dir := path.Dir(e.Path)
		if _, seen := byDir[dir]; !seen {
			dirOrder = append(dirOrder, dir)
		}
		byDir[dir] = append(byDir[dir], path.Base(e.Path))
	}

	if jsCount > 0 && tsCount > 0 {
		share := float64(tsCount) / float64(jsCount+tsCount)
		if share >= minMixedShare && share <= maxMixedShare {
			findings = append(findings, domain.Finding{
				ID:          "cp-mixed-lang",
				Category:    domain.CategoryCodePatterns,
				Severity:    domain.SeverityWarning,
				Title:       "Mixed JavaScript and TypeScript",
				Description: fmt.Sprintf("The codebase mixes %d JavaScript and %d TypeScript source files.", jsCount, tsCount),
				Suggestion:  "Finish migrating to one language; enable allowJs and convert the remaining files incrementally.",
			})
		}
	}

	if len(largeFiles) > 0 {
		findings = append(findings, domain.Finding{
			ID:       "cp-large-files",
			Category: domain.CategoryCodePatterns,
			Severity: domain.SeverityInfo,
			Title:    "Oversized source files",
			Description: fmt.Sprintf("%d source %s larger than %d bytes.",
				len(largeFiles), pluralize(len(largeFiles), "file is", "files are"), maxSourceFileBytes),
			FilePath:   largeFiles[0],
			Suggestion: "Split large files into smaller modules with a single responsibility.",
		})
	}

	inconsistent := 0
	for _, dir := range dirOrder {
		if mixesNamingStyles(byDir[dir]) {
			inconsistent++
		}
	}
	if inconsistent > 0 {
		findings = append(findings, domain.Finding{
			ID:       "cp-naming-inconsistent",
			Category: domain.CategoryCodePatterns,
			Severity: domain.SeverityInfo,
			Title:    "Inconsistent file naming",
			Description: fmt.Sprintf("%d %s kebab-case and camelCase file names.",
				inconsistent, pluralize(inconsistent, "directory mixes", "directories mix")),
			Suggestion: "Pick one file naming convention per project and rename outliers.",
		})
	}

	return findings
}

func mixesNamingStyles(files []string) bool {
	if len(files) < minFilesForNaming {
		return false
	}
	var kebab, camel bool
	for _, f := range files {
		stem := fileStem(f)
		switch {
		case isKebabCase(stem):
			kebab = true
		case isCamelCase(stem):
			camel = true
		}
	}
	return kebab && camel
}

// fileStem strips every extension: "user-card.test.tsx" -> "user-card".
func fileStem(name string) string {
	if i := strings.Index(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

func isKebabCase(s string) bool {
	return strings.Contains(s, "-") && strings.ToLower(s) == s
}

func isCamelCase(s string) bool {
	if s == "" || strings.ContainsAny(s, "-_") {
		return false
	}
	if !unicode.IsLower([]rune(s)[0]) || strings.ToLower(s) == s {
		return false
	}
	return len(camelcase.Split(s)) >= 2
}
