package cli

import (
	"fmt"

	"github.com/abdidvp/wuxing/internal/adapters/outbound/tui"
	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
	"github.com/spf13/cobra"
)

// ruleTables is the JSON shape of the rules command.
type ruleTables struct {
	Combinations []domain.CombinationRule `json:"combinations"`
	Conflicts    []domain.ConflictRule    `json:"conflicts"`
}

func newRulesCmd() *cobra.Command {
	var (
		jsonOutput bool
		kind       string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List combination and conflict rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := ruleTables{Combinations: symbols.Combinations(), Conflicts: symbols.Conflicts()}
			if kind != "" {
				k := domain.ConflictKind(kind)
				if !domain.ValidConflictKind(k) {
					return fmt.Errorf("unknown conflict kind %q (valid: clash, punishment, harm, breaking, extinguishing)", kind)
				}
				tables = ruleTables{Conflicts: symbols.ConflictsOf(k)}
			}

			if jsonOutput {
				return renderJSON(cmd, tables)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(tables.Combinations, tables.Conflicts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")
	cmd.Flags().StringVar(&kind, "kind", "", "Only list conflicts of this kind")

	return cmd
}
