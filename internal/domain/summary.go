package domain

const maxHealthScore = 100

// Summarize groups findings by category and severity and derives the health
// score. Categories and severities without findings are absent from the maps.
func Summarize(findings []Finding) AnalysisSummary {
	summary := AnalysisSummary{
		TotalFindings: len(findings),
		ByCategory:    make(map[Category]int),
		BySeverity:    make(map[Severity]int),
	}
	for _, f := range findings {
		summary.ByCategory[f.Category]++
		summary.BySeverity[f.Severity]++
	}
	summary.HealthScore = HealthScore(summary.BySeverity)
	return summary
}

// HealthScore applies the fixed linear penalty model:
// 100 - 15*critical - 8*warning - 3*info, clamped to [0, 100].
func HealthScore(bySeverity map[Severity]int) int {
	score := maxHealthScore
	for sev, n := range bySeverity {
		score -= sev.Penalty() * n
	}
	return max(0, min(score, maxHealthScore))
}

// FilterBySeverity keeps findings at least as urgent as min, preserving order.
func FilterBySeverity(findings []Finding, min Severity) []Finding {
	var kept []Finding
	for _, f := range findings {
		if f.Severity.AtLeast(min) {
			kept = append(kept, f)
		}
	}
	return kept
}
