package cli

import (
	"fmt"
	"path/filepath"

	"github.com/abdidvp/wuxing/internal/adapters/outbound/config"
	"github.com/abdidvp/wuxing/internal/adapters/outbound/notation"
	"github.com/abdidvp/wuxing/internal/adapters/outbound/tui"
	"github.com/abdidvp/wuxing/internal/application"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Score every chart listed in .wuxing.yaml",
		Long:  "Score all charts from the project config concurrently and compare them against min_scores.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			svc := application.NewScoreService(notation.New(), config.New(), logger)
			report, cfg, err := svc.ScoreProject(cmd.Context(), absPath)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if jsonOutput || cfg.Output == "json" {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode && !report.Passed() {
				return fmt.Errorf("%d minimum scores not met", len(report.Failures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any chart is below min_scores")

	return cmd
}
