package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/abdidvp/repohealth/internal/domain"
)

const maxListedSensitiveFiles = 5

var safeEnvSuffixes = []string{".example", ".sample", ".template"}

var sensitiveSuffixes = []string{".pem", ".key", ".p12", ".pfx"}

var sensitiveNames = map[string]bool{
	"id_rsa":                   true,
	"id_dsa":                   true,
	"id_ecdsa":                 true,
	"id_ed25519":               true,
	"service-account.json":     true,
	"service-account-key.json": true,
	"serviceaccount.json":      true,
	"serviceaccountkey.json":   true,
	"credentials.json":         true,
	"gcp-key.json":             true,
}

// CheckSecurity flags committed environment files and credential or key files.
func CheckSecurity(in *domain.AnalysisInput) []domain.Finding {
	var findings []domain.Finding

	var envFiles, sensitive []string
	for _, e := range in.Blobs() {
		base := path.Base(e.Path)
		if isCommittedEnvFile(base) {
			envFiles = append(envFiles, e.Path)
		}
		if isSensitiveFile(base) {
			sensitive = append(sensitive, e.Path)
		}
	}

	if len(envFiles) > 0 {
		findings = append(findings, domain.Finding{
			ID:          "sec-env-exposed",
			Category:    domain.CategorySecurity,
			Severity:    domain.SeverityCritical,
			Title:       "Environment file committed",
			Description: fmt.Sprintf("Environment files are committed to the repository: %s.", strings.Join(envFiles, ", ")),
			FilePath:    envFiles[0],
			Suggestion:  "Remove the files from git history, rotate any secrets they contained and add .env* to .gitignore. Commit a .env.example instead.",
		})
	}

	if len(sensitive) > 0 {
		listed := sensitive
		suffix := ""
		if len(sensitive) > maxListedSensitiveFiles {
			listed = sensitive[:maxListedSensitiveFiles]
			suffix = fmt.Sprintf(" and %d more", len(sensitive)-maxListedSensitiveFiles)
		}
		findings = append(findings, domain.Finding{
			ID:          "sec-sensitive-files",
			Category:    domain.CategorySecurity,
			Severity:    domain.SeverityCritical,
			Title:       "Credential or key files committed",
			Description: fmt.Sprintf("Files that usually hold private keys or credentials are committed: %s%s.", strings.Join(listed, ", "), suffix),
			FilePath:    sensitive[0],
			Suggestion:  "Remove the files from git history, revoke and rotate the credentials and load them from a secret store.",
		})
	}

	return findings
}

func isCommittedEnvFile(base string) bool {
	if !strings.HasPrefix(base, ".env") {
		return false
	}
	for _, s := range safeEnvSuffixes {
		if strings.HasSuffix(base, s) {
			return false
		}
	}
	return true
}

func isSensitiveFile(base string) bool {
	lower := strings.ToLower(base)
	if sensitiveNames[lower] {
		return true
	}
	if strings.HasSuffix(lower, ".json") && strings.Contains(lower, "firebase-adminsdk") {
		return true
	}
	for _, s := range sensitiveSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
