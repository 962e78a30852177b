package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/repohealth/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/repohealth/internal/adapters/outbound/tui"
	"github.com/abdidvp/repohealth/internal/domain"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

func newAnalyzeCmd(flags *globalFlags) *cobra.Command {
	var (
		format      string
		jsonOutput  bool
		minSeverity string
		ciMode      bool
		minScore    int
		badge       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [repository-url]",
		Short: "Analyse a GitHub repository's code health",
		Long: "Fetch a GitHub repository's metadata, file tree and key configuration files, run every rule " +
			"module over them and report findings plus a 0-100 health score. Without an argument the " +
			"origin remote of the current directory's clone is analysed.",
		Example: "  repohealth analyze https://github.com/owner/repo\n  repohealth analyze --format table --min-severity warning",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				format = formatJSON
			}
			if err := validateFormat(format); err != nil {
				return err
			}

			rawURL, err := repositoryURL(gitinfo.New(), args)
			if err != nil {
				return err
			}
			// Fail on a bad URL before touching configuration or the network.
			if _, err := domain.ParseRepoURL(rawURL); err != nil {
				return err
			}

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if minSeverity == "" {
				minSeverity = cfg.MinSeverity
			}
			severity, err := domain.ParseSeverity(minSeverity)
			if err != nil {
				return err
			}

			svc, err := newAnalysisService(cfg, newLogger(cmd, flags))
			if err != nil {
				return err
			}
			result, err := svc.AnalyzeURL(cmd.Context(), rawURL)
			if err != nil {
				return err
			}

			// The score always reflects every finding; the filter only affects what is listed.
			shown := *result
			shown.Findings = domain.FilterBySeverity(result.Findings, severity)
			if shown.Findings == nil {
				shown.Findings = []domain.Finding{}
			}

			switch {
			case badge:
				renderBadge(cmd, result)
			case format == formatJSON:
				if err := renderJSON(cmd, &shown); err != nil {
					return err
				}
			case format == formatTable:
				if err := tui.WriteFindingsTable(cmd.OutOrStdout(), &shown); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(&shown))
			}

			if ciMode && result.Summary.HealthScore < minScore {
				return fmt.Errorf("health score %d is below minimum %d", result.Summary.HealthScore, minScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, table or json")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON (same as --format json)")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "", "Only list findings at least this severe: critical, warning or info")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the health score is below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum health score for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")

	return cmd
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: text, table, json)", format)
	}
}

// repositoryURL returns the argument, or the origin remote of the clone in
// the working directory when none is given.
func repositoryURL(resolver domain.RemoteResolver, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	url, err := resolver.OriginURL(".")
	if err != nil {
		return "", fmt.Errorf("no repository URL given and none found in the current directory: %w", err)
	}
	return url, nil
}

func renderJSON(cmd *cobra.Command, result *domain.AnalysisResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderBadge(cmd *cobra.Command, result *domain.AnalysisResult) {
	score := result.Summary.HealthScore
	url := fmt.Sprintf("https://img.shields.io/badge/repohealth-%d%%2F100-%s", score, domain.BadgeColor(score))
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
