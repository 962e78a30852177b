// Package rules holds the rule modules that inspect an AnalysisInput.
// Every module is a pure function: no I/O, no shared state, and the same
// input always yields the same findings in the same order.
package rules

import "github.com/abdidvp/repohealth/internal/domain"

// CheckFunc inspects the input and returns its findings.
type CheckFunc func(in *domain.AnalysisInput) []domain.Finding

// Rule binds a check to the category it reports under.
type Rule struct {
	Category domain.Category
	Check    CheckFunc
}

// All returns the rule modules in category report order.
func All() []Rule {
	return []Rule{
		{Category: domain.CategoryProjectStructure, Check: CheckProjectStructure},
		{Category: domain.CategoryDependencies, Check: CheckDependencies},
		{Category: domain.CategoryConfigQuality, Check: CheckConfigQuality},
		{Category: domain.CategoryCodePatterns, Check: CheckCodePatterns},
		{Category: domain.CategorySecurity, Check: CheckSecurity},
		{Category: domain.CategoryDocumentation, Check: CheckDocumentation},
		{Category: domain.CategoryTesting, Check: CheckTesting},
	}
}
