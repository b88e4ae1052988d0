package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/asttools/treediff/tree"
	"github.com/asttools/treediff/treeio"
)

func statsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "stats <tree.yaml>",
		Short: "Summarize the node kinds in a parsed tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return stats(cmd.OutOrStdout(), args[0])
		},
	}
	return command
}

func stats(out io.Writer, path string) error {
	units, err := treeio.LoadUnits(path)
	if err != nil {
		return err
	}

	total := 0
	byKind := map[tree.Kind]int{}
	for _, u := range units {
		tree.Walk(u, func(_ tree.Path, n *tree.Node) bool {
			total++
			byKind[n.Kind]++
			return true
		})
	}

	kinds := make([]tree.Kind, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if byKind[kinds[i]] != byKind[kinds[j]] {
			return byKind[kinds[i]] > byKind[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	fmt.Fprintf(out, "Units: %d\n", len(units))
	fmt.Fprintf(out, "Total nodes: %d\n", total)
	for _, k := range kinds {
		fmt.Fprintf(out, "%6d  %s\n", byKind[k], k)
	}
	return nil
}
