package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/asttools/treediff/tree"
	"github.com/asttools/treediff/treediff"
	"github.com/asttools/treediff/treeio"
)

func matchCmd() *cobra.Command {
	var flags renderFlags

	command := &cobra.Command{
		Use:   "match <pattern.yaml> <actual.yaml>",
		Short: "Check that the actual unit contains the pattern unit's structure",
		Long: "Containment matching tolerates extra members and statements on the " +
			"actual side and ignores import declarations on both sides.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.OutOrStdout(), args[0], args[1], flags)
		},
	}

	flags.register(command)
	return command
}

func runMatch(out io.Writer, patternPath, actualPath string, flags renderFlags) error {
	pattern, err := loadSingleUnit(patternPath)
	if err != nil {
		return err
	}
	actual, err := loadSingleUnit(actualPath)
	if err != nil {
		return err
	}

	d, err := treediff.MatchUnits(pattern, actual)
	if err != nil {
		return err
	}
	return renderDifference(out, d, flags)
}

func loadSingleUnit(path string) (*tree.Node, error) {
	units, err := treeio.LoadUnits(path)
	if err != nil {
		return nil, err
	}
	if len(units) != 1 {
		return nil, fmt.Errorf("%s: match mode needs exactly one unit, got %d", path, len(units))
	}
	return units[0], nil
}
