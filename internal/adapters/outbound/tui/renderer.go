package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/repohealth/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	lime    = lipgloss.Color("#A3E635")
	orange  = lipgloss.Color("#FB923C")
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lime,
		"C":  warning,
		"D":  orange,
		"F":  danger,
	}

	dimStyle         = lipgloss.NewStyle().Foreground(dim)
	faintStyle       = lipgloss.NewStyle().Foreground(faint)
	passStyle        = lipgloss.NewStyle().Foreground(success)
	warnStyle        = lipgloss.NewStyle().Foreground(warning)
	failStyle        = lipgloss.NewStyle().Foreground(danger)
	criticalTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle     = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle     = lipgloss.NewStyle().Foreground(info)
	fileStyle        = lipgloss.NewStyle().Foreground(dim)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine    = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats an analysis result for the terminal. Category rows
// are computed from the summary; the findings list shows result.Findings,
// which callers may have filtered.
func RenderResult(result *domain.AnalysisResult) string {
	var b strings.Builder

	// ── Header ──
	score := result.Summary.HealthScore
	grade := result.Grade()
	title := headerStyle.Render("repohealth")
	subtitle := dimStyle.Render(repoLine(result.Repo))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	if result.TreeTruncated {
		b.WriteString("  " + warnStyle.Render("Repository tree was truncated by the provider; results cover a partial view.") + "\n\n")
	}

	// ── Categories ──
	byCategory := groupByCategory(result.Findings)
	for _, cat := range domain.AllCategories {
		renderCategory(&b, cat, result.Summary.ByCategory[cat], byCategory[cat])
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Findings ──
	findings := sortBySeverity(result.Findings)
	if len(findings) == 0 {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n\n")
		return b.String()
	}

	critical, warnings, infos := countSeverities(findings)
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Findings"))
	b.WriteString("  ")
	if critical > 0 {
		b.WriteString(criticalTagStyle.Render(fmt.Sprintf("%d critical", critical)))
		b.WriteString("  ")
	}
	if warnings > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnings)))
		b.WriteString("  ")
	}
	if infos > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", infos)))
	}
	b.WriteString("\n\n")

	for _, f := range findings {
		renderFinding(&b, f)
	}
	b.WriteString("\n")
	return b.String()
}

func repoLine(repo domain.RepoInfo) string {
	if repo.Owner == "" && repo.Name == "" {
		return "Repository Health"
	}
	parts := []string{repo.Owner + "/" + repo.Name}
	if repo.Language != "" {
		parts = append(parts, repo.Language)
	}
	parts = append(parts, fmt.Sprintf("★ %d", repo.Stars))
	return strings.Join(parts, " · ")
}

func renderCategory(b *strings.Builder, cat domain.Category, count int, findings []domain.Finding) {
	// A category's own score uses the same penalty table as the overall score.
	bySeverity := make(map[domain.Severity]int)
	for _, f := range findings {
		bySeverity[f.Severity]++
	}
	catScore := domain.HealthScore(bySeverity)

	var icon string
	switch {
	case count == 0:
		icon = passStyle.Render("●")
	case bySeverity[domain.SeverityCritical] > 0:
		icon = failStyle.Render("●")
	default:
		icon = warnStyle.Render("●")
	}

	name := catNameStyle.Render(padRight(cat.Label(), 20))
	bar := coloredBar(catScore, 20)
	countText := dimStyle.Render(fmt.Sprintf("%d %s", count, plural(count, "finding", "findings")))
	fmt.Fprintf(b, "  %s %s %s  %s\n", icon, name, bar, countText)
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	tag := severityTag(f.Severity)
	fmt.Fprintf(b, "    %s %s  %s\n", tag, titleStyle.Render(f.Title), faintStyle.Render(f.ID))
	if f.FilePath != "" {
		fmt.Fprintf(b, "         %s\n", fileStyle.Render(f.FilePath))
	}
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(f.Description))
	if f.Suggestion != "" {
		fmt.Fprintf(b, "         %s %s\n", faintStyle.Render("→"), dimStyle.Render(f.Suggestion))
	}
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return criticalTagStyle.Render("crit ")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func countSeverities(findings []domain.Finding) (critical, warnings, infos int) {
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityCritical:
			critical++
		case domain.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}
	return
}

func groupByCategory(findings []domain.Finding) map[domain.Category][]domain.Finding {
	grouped := make(map[domain.Category][]domain.Finding)
	for _, f := range findings {
		grouped[f.Category] = append(grouped[f.Category], f)
	}
	return grouped
}

// sortBySeverity returns a copy ordered critical first; ties keep rule order.
func sortBySeverity(findings []domain.Finding) []domain.Finding {
	sorted := slices.Clone(findings)
	slices.SortStableFunc(sorted, func(a, b domain.Finding) int {
		return a.Severity.Rank() - b.Severity.Rank()
	})
	return sorted
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
