package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/asttools/treediff/tree"
	"github.com/asttools/treediff/treediff"
	"github.com/asttools/treediff/treeio"
)

type renderFlags struct {
	json          bool
	colorMode     string
	maxFindings   int
	positionsPath string
}

func (f *renderFlags) register(command *cobra.Command) {
	command.Flags().BoolVar(&f.json, "json", false, "emit the difference as JSON")
	command.Flags().StringVar(&f.colorMode, "color", "auto", "colorize output: auto, always or never")
	command.Flags().IntVar(&f.maxFindings, "max-findings", 0, "cap the rendered findings (0 = unlimited)")
	command.Flags().StringVar(&f.positionsPath, "positions", "",
		"YAML position table enriching findings with source spans")
}

func diffCmd() *cobra.Command {
	var flags renderFlags
	var expectedAt, actualAt string

	command := &cobra.Command{
		Use:   "diff <expected.yaml> <actual.yaml>",
		Short: "Strictly compare two forests of parsed compilation units",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), args[0], args[1], expectedAt, actualAt, flags)
		},
	}

	flags.register(command)
	command.Flags().StringVar(&expectedAt, "at", "",
		"compare only the subtree at this path (e.g. $.types[0].members[1])")
	command.Flags().StringVar(&actualAt, "actual-at", "",
		"subtree path on the actual side (defaults to --at)")

	return command
}

func runDiff(out io.Writer, expectedPath, actualPath, expectedAt, actualAt string, flags renderFlags) error {
	expected, err := treeio.LoadUnits(expectedPath)
	if err != nil {
		return err
	}
	actual, err := treeio.LoadUnits(actualPath)
	if err != nil {
		return err
	}

	var d *treediff.Difference
	if expectedAt != "" || actualAt != "" {
		d, err = diffSubtrees(expected, actual, expectedAt, actualAt)
	} else {
		d, err = treediff.DiffUnits(expected, actual)
	}
	if err != nil {
		return err
	}
	return renderDifference(out, d, flags)
}

func diffSubtrees(expected, actual []*tree.Node, expectedAt, actualAt string) (*treediff.Difference, error) {
	if actualAt == "" {
		actualAt = expectedAt
	}
	if expectedAt == "" {
		expectedAt = actualAt
	}
	if len(expected) != 1 || len(actual) != 1 {
		return nil, fmt.Errorf("subtree mode needs exactly one unit per file, got %d and %d",
			len(expected), len(actual))
	}
	ep, err := tree.ParsePath(expectedAt)
	if err != nil {
		return nil, err
	}
	ap, err := tree.ParsePath(actualAt)
	if err != nil {
		return nil, err
	}
	return treediff.DiffSubtrees(expected[0], actual[0], ep, ap)
}

func renderDifference(out io.Writer, d *treediff.Difference, flags renderFlags) error {
	var positions *treediff.PositionContext
	if flags.positionsPath != "" {
		var err error
		positions, err = treeio.LoadPositions(flags.positionsPath)
		if err != nil {
			return err
		}
	}

	if flags.json {
		if err := treediff.RenderJSON(out, d, positions); err != nil {
			return err
		}
	} else {
		treediff.RenderText(out, d, treediff.TextOptions{
			Positions:   positions,
			MaxFindings: flags.maxFindings,
			Color:       useColor(flags.colorMode),
		})
	}

	if !d.IsEmpty() {
		return errDifferencesFound
	}
	return nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
