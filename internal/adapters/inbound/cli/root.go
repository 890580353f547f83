package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wuxing",
		Short:         "Five-element strength scoring",
		Long:          "Wuxing scores the relative strength of Wood, Fire, Earth, Metal and Water in a four-pillar chart and shows the ledger behind every score.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("verbose", false, "Log pipeline details to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newLogger returns a no-op logger unless --verbose is set.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
