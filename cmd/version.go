package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asttools/treediff/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of treediff",
		Run: func(command *cobra.Command, args []string) {
			fmt.Println(version.Version)
		},
	}
}
