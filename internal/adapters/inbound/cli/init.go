package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/wuxing/internal/adapters/outbound/config"
	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		notationIn string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .wuxing.yaml configuration file",
		Long:  "Create a .wuxing.yaml with a sample chart and commented min_scores.",
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

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			n := domain.Notation(notationIn)
			if !domain.ValidNotation(n) {
				return fmt.Errorf("unknown notation %q (valid: auto, hanzi, pinyin)", notationIn)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(n)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&notationIn, "notation", string(domain.NotationAuto), "Input notation (auto, hanzi, pinyin)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .wuxing.yaml")

	return cmd
}

func generateConfig(n domain.Notation) string {
	sample := "甲子 乙丑 丙寅 丁卯"
	if n == domain.NotationPinyin {
		sample = "JiaZi YiChou BingYin DingMao"
	}

	return fmt.Sprintf(`# wuxing configuration

notation: %s
output: tui

charts:
  - name: sample
    pillars: "%s"

# min_scores:
#   wood: 20
#   water: 10
`, n, sample)
}
