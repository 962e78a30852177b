package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/abdidvp/repohealth/internal/domain"
)

// WriteFindingsTable writes one row per finding, most urgent first, followed
// by a score line.
func WriteFindingsTable(w io.Writer, result *domain.AnalysisResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Severity", "Category", "ID", "Title", "File")
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i, f := range sortBySeverity(result.Findings) {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(f.Severity),
			f.Category.Label(),
			f.ID,
			f.Title,
			f.FilePath,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nHealth score: %d/100 (%s), %d %s\n",
		result.Summary.HealthScore, result.Grade(),
		result.Summary.TotalFindings, plural(result.Summary.TotalFindings, "finding", "findings"))
	return err
}
