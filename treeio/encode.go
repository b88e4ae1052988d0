package treeio

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/asttools/treediff/tree"
)

// EncodeUnits writes a forest of nodes as a YAML list, inverse of
// ParseUnits. Keys follow a fixed order so output is deterministic.
func EncodeUnits(out io.Writer, units []*tree.Node) error {
	docs := make([]yaml.MapSlice, len(units))
	for i, u := range units {
		docs[i] = nodeToMap(u)
	}
	data, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshal units: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write units: %w", err)
	}
	return nil
}

func nodeToMap(n *tree.Node) yaml.MapSlice {
	m := yaml.MapSlice{{Key: "kind", Value: n.Kind.String()}}
	if n.Name != "" {
		m = append(m, yaml.MapItem{Key: "name", Value: n.Name})
	}
	if n.Kind == tree.KindLiteral {
		m = append(m, yaml.MapItem{Key: "value", Value: n.Value})
	}
	if n.Operator != "" {
		m = append(m, yaml.MapItem{Key: "operator", Value: n.Operator})
	}
	if len(n.Modifiers) > 0 {
		m = append(m, yaml.MapItem{Key: "modifiers", Value: n.Modifiers})
	}

	var children yaml.MapSlice
	for _, spec := range tree.Schema(n.Kind) {
		if !spec.Seq {
			if child := n.Child(spec.Role); child != nil {
				children = append(children, yaml.MapItem{Key: spec.Role.String(), Value: nodeToMap(child)})
			}
			continue
		}
		seq, ok := n.Seq(spec.Role)
		if !ok {
			continue
		}
		items := make([]yaml.MapSlice, len(seq))
		for i, child := range seq {
			items[i] = nodeToMap(child)
		}
		children = append(children, yaml.MapItem{Key: spec.Role.String(), Value: items})
	}
	if children != nil {
		m = append(m, yaml.MapItem{Key: "children", Value: children})
	}
	return m
}
