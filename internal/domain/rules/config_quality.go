package rules

import (
	"strings"

	"github.com/abdidvp/repohealth/internal/domain"
)

const tsconfigFile = "tsconfig.json"

var lintConfigFiles = []string{
	".eslintrc",
	".eslintrc.js",
	".eslintrc.cjs",
	".eslintrc.json",
	".eslintrc.yml",
	".eslintrc.yaml",
	"eslint.config.js",
	"eslint.config.mjs",
	"eslint.config.cjs",
	"eslint.config.ts",
	"biome.json",
	"biome.jsonc",
	".jshintrc",
	"tslint.json",
}

var formatterConfigFiles = []string{
	".prettierrc",
	".prettierrc.json",
	".prettierrc.js",
	".prettierrc.cjs",
	".prettierrc.mjs",
	".prettierrc.yml",
	".prettierrc.yaml",
	".prettierrc.toml",
	"prettier.config.js",
	"prettier.config.cjs",
	"prettier.config.mjs",
	"biome.json",
	"biome.jsonc",
	".editorconfig",
	"dprint.json",
}

// CheckConfigQuality looks for an ignore file, strict TypeScript, a linter
// config and a formatter config.
func CheckConfigQuality(in *domain.AnalysisInput) []domain.Finding {
	var findings []domain.Finding

	if !in.HasPath(".gitignore") {
		findings = append(findings, domain.Finding{
			ID:          "cfg-no-gitignore",
			Category:    domain.CategoryConfigQuality,
			Severity:    domain.SeverityWarning,
			Title:       "Missing .gitignore",
			Description: "There is no .gitignore at the repository root, so build output, dependencies and secrets can be committed by accident.",
			Suggestion:  "Add a .gitignore covering node_modules, build output and .env files.",
		})
	}

	// Substring check on purpose: tsconfig.json is JSONC and may carry comments.
	if tsconfig, ok := in.Content(tsconfigFile); ok {
		if !(strings.Contains(tsconfig, `"strict"`) && strings.Contains(tsconfig, "true")) {
			findings = append(findings, domain.Finding{
				ID:          "cfg-ts-not-strict",
				Category:    domain.CategoryConfigQuality,
				Severity:    domain.SeverityWarning,
				Title:       "TypeScript strict mode disabled",
				Description: "tsconfig.json does not enable \"strict\": true, so many type errors go unreported.",
				FilePath:    tsconfigFile,
				Suggestion:  "Set \"strict\": true in compilerOptions and fix the resulting type errors incrementally.",
			})
		}
	}

	if !hasAnyPath(in, lintConfigFiles...) && !hasInlineESLintConfig(in) {
		findings = append(findings, domain.Finding{
			ID:          "cfg-no-linter",
			Category:    domain.CategoryConfigQuality,
			Severity:    domain.SeverityInfo,
			Title:       "No linter configuration",
			Description: "No ESLint (or equivalent) configuration file was found and package.json has no eslintConfig section.",
			Suggestion:  "Add a linter configuration such as eslint.config.js to catch bugs and enforce conventions.",
		})
	}

	if !hasAnyPath(in, formatterConfigFiles...) {
		findings = append(findings, domain.Finding{
			ID:          "cfg-no-formatter",
			Category:    domain.CategoryConfigQuality,
			Severity:    domain.SeverityInfo,
			Title:       "No formatter configuration",
			Description: "No Prettier, EditorConfig or equivalent formatter configuration was found.",
			Suggestion:  "Add a .prettierrc or .editorconfig so formatting is consistent across contributors.",
		})
	}

	return findings
}

func hasInlineESLintConfig(in *domain.AnalysisInput) bool {
	manifest, ok := in.Content(manifestFile)
	return ok && strings.Contains(manifest, `"eslintConfig"`)
}
