package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errDifferencesFound distinguishes "the trees differ" (exit 1) from
// operational failures (exit 2).
var errDifferencesFound = errors.New("differences found")

func rootCmd() *cobra.Command {
	command := &cobra.Command{
		Use:           "treediff",
		Short:         "treediff is a CLI utility to compare parsed syntax trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(diffCmd())
	command.AddCommand(matchCmd())
	command.AddCommand(statsCmd())
	command.AddCommand(versionCmd())

	return command
}

func Execute() {
	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errDifferencesFound) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
