package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrbd/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	logLevel  string
	logFormat string
	format    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "lvrbd",
		Short: "Network availability from minimal paths, cuts and conditioning",
		Long: "lvrbd computes the probability that a source and a destination node\n" +
			"stay connected when every node fails independently.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			logging.Init(level, flags.logFormat, cmd.ErrOrStderr())

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&flags.format, "format", "table", "Output format: table, markdown or csv")

	cmd.AddCommand(newEvalCmd(flags))
	cmd.AddCommand(newCutsCmd(flags))
	cmd.AddCommand(newPathsCmd(flags))
	cmd.AddCommand(newExprCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}
