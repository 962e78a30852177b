package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/abdidvp/repohealth/internal/domain"
)

const minFilesForDocsExpectation = 20

var (
	readmeNames       = []string{"README.md", "README", "README.txt", "README.rst"}
	licenseNames      = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "LICENCE.md", "COPYING"}
	contributingStems = []string{"contributing"}
	changelogStems    = []string{"changelog", "changes", "history"}
)

// projectDocDirs are the directories searched for CONTRIBUTING and CHANGELOG files.
var projectDocDirs = map[string]bool{".": true, ".github": true, "docs": true}

// CheckDocumentation looks for a README, a license and, in repositories with
// more than a handful of files, some documentation beyond the README.
func CheckDocumentation(in *domain.AnalysisInput) []domain.Finding {
	var findings []domain.Finding

	if _, ok := findRootFile(in, readmeNames...); !ok {
		findings = append(findings, domain.Finding{
			ID:          "doc-no-readme",
			Category:    domain.CategoryDocumentation,
			Severity:    domain.SeverityWarning,
			Title:       "Missing README",
			Description: "The repository has no README at its root, so newcomers have no entry point.",
			Suggestion:  "Add a README.md describing what the project does, how to install it and how to run it.",
		})
	}

	if _, ok := findRootFile(in, licenseNames...); !ok {
		findings = append(findings, domain.Finding{
			ID:          "doc-no-license",
			Category:    domain.CategoryDocumentation,
			Severity:    domain.SeverityWarning,
			Title:       "Missing LICENSE",
			Description: "No LICENSE file was found; without one the code is not legally reusable.",
			Suggestion:  "Add a LICENSE file (for example MIT or Apache-2.0).",
		})
	}

	blobs := len(in.Blobs())
	if blobs > minFilesForDocsExpectation && !hasDocsDir(in) {
		if !hasProjectDoc(in, contributingStems...) && !hasProjectDoc(in, changelogStems...) {
			findings = append(findings, domain.Finding{
				ID:       "doc-minimal",
				Category: domain.CategoryDocumentation,
				Severity: domain.SeverityInfo,
				Title:    "Minimal documentation",
				Description: fmt.Sprintf("The repository has %d files but no docs/ directory, CONTRIBUTING guide or CHANGELOG.",
					blobs),
				Suggestion: "Add a docs/ directory or at least CONTRIBUTING.md and CHANGELOG.md.",
			})
		}
	}

	return findings
}

func hasDocsDir(in *domain.AnalysisInput) bool {
	for _, e := range in.Tree {
		if strings.HasPrefix(e.Path, "docs/") || strings.HasPrefix(e.Path, "doc/") ||
			(e.Type == domain.EntryTree && (e.Path == "docs" || e.Path == "doc")) {
			return true
		}
	}
	return false
}

// hasProjectDoc reports whether a file whose name starts with one of the
// stems, ignoring case, sits at the root, in .github/ or in docs/.
func hasProjectDoc(in *domain.AnalysisInput, stems ...string) bool {
	for _, e := range in.Blobs() {
		if !projectDocDirs[path.Dir(e.Path)] {
			continue
		}
		base := strings.ToLower(path.Base(e.Path))
		for _, stem := range stems {
			if strings.HasPrefix(base, stem) {
				return true
			}
		}
	}
	return false
}
