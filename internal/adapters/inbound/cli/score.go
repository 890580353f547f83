package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abdidvp/wuxing/internal/adapters/outbound/config"
	"github.com/abdidvp/wuxing/internal/adapters/outbound/notation"
	"github.com/abdidvp/wuxing/internal/adapters/outbound/tui"
	"github.com/abdidvp/wuxing/internal/application"
	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		explain    bool
		notationIn string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "score <pillars>",
		Short: "Score the five elements of a chart",
		Long: `Score a four-pillar chart given as eight stem/branch symbols, in Hanzi or pinyin:

  wuxing score 甲子 乙丑 丙寅 丁卯
  wuxing score "JiaZi YiChou BingYin DingMao"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}
			n := cfg.Notation
			if notationIn != "" {
				n = domain.Notation(notationIn)
				if !domain.ValidNotation(n) {
					return fmt.Errorf("unknown notation %q (valid: auto, hanzi, pinyin)", notationIn)
				}
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			svc := application.NewScoreService(notation.New(), config.New(), logger)
			res, err := svc.ScoreChart(strings.Join(args, " "), n)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			if jsonOutput || cfg.Output == "json" {
				if err := renderJSON(cmd, res); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(res, explain))
			}

			if ciMode {
				if below := cfg.BelowMinimum(res); len(below) > 0 {
					return fmt.Errorf("minimum scores not met: %s", strings.Join(below, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any element is below its min_scores entry")
	cmd.Flags().BoolVar(&explain, "explain", false, "List every rule that moved each element")
	cmd.Flags().StringVar(&notationIn, "notation", "", "Input notation (auto, hanzi, pinyin); overrides .wuxing.yaml")
	cmd.Flags().StringVar(&path, "path", ".", "Directory containing .wuxing.yaml")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
