package domain

import "fmt"

// Category identifies the rule domain a finding belongs to.
type Category string

const (
	CategoryProjectStructure Category = "project_structure"
	CategoryDependencies     Category = "dependencies"
	CategoryConfigQuality    Category = "config_quality"
	CategoryCodePatterns     Category = "code_patterns"
	CategorySecurity         Category = "security"
	CategoryDocumentation    Category = "documentation"
	CategoryTesting          Category = "testing"
)

// AllCategories lists every category in report order.
var AllCategories = []Category{
	CategoryProjectStructure,
	CategoryDependencies,
	CategoryConfigQuality,
	CategoryCodePatterns,
	CategorySecurity,
	CategoryDocumentation,
	CategoryTesting,
}

// Label returns the fixed human-readable label of the category.
func (c Category) Label() string {
	switch c {
	case CategoryProjectStructure:
		return "Project Structure"
	case CategoryDependencies:
		return "Dependencies"
	case CategoryConfigQuality:
		return "Config Quality"
	case CategoryCodePatterns:
		return "Code Patterns"
	case CategorySecurity:
		return "Security"
	case CategoryDocumentation:
		return "Documentation"
	case CategoryTesting:
		return "Testing"
	default:
		return string(c)
	}
}

// Severity ranks how urgently a finding should be addressed.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// AllSeverities lists severities from most to least urgent.
var AllSeverities = []Severity{SeverityCritical, SeverityWarning, SeverityInfo}

// Penalty is the number of health-score points one finding of this severity costs.
func (s Severity) Penalty() int {
	switch s {
	case SeverityCritical:
		return 15
	case SeverityWarning:
		return 8
	case SeverityInfo:
		return 3
	default:
		return 0
	}
}

// Rank orders severities: lower is more urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// AtLeast reports whether s is as urgent as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() <= min.Rank()
}

// ParseSeverity converts user input into a Severity.
func ParseSeverity(s string) (Severity, error) {
	for _, sev := range AllSeverities {
		if string(sev) == s {
			return sev, nil
		}
	}
	return "", fmt.Errorf("unknown severity %q (valid: critical, warning, info)", s)
}
