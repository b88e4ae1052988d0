package treeio

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/asttools/treediff/tree"
	"github.com/asttools/treediff/treediff"
)

// ParsePositions decodes a position table: unit label to node path (Local
// form) to source excerpt.
//
//	Greeter:
//	  $.types[0].members[0]:
//	    span: {line: 3, column: 5, endLine: 3, endColumn: 14}
//	    text: "return 3;"
func ParsePositions(data []byte) (*treediff.PositionContext, error) {
	var raw map[string]map[string]tree.Excerpt
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: positions: %v", ErrTreeInvalid, err)
	}
	ctx := treediff.NewPositionContext()
	for _, unit := range sortedKeys(raw) {
		paths := raw[unit]
		for _, path := range sortedKeys(paths) {
			if _, err := tree.ParsePath(path); err != nil {
				return nil, fmt.Errorf("%w: positions: unit %s: %v", ErrTreeInvalid, unit, err)
			}
			ctx.Add(unit, path, paths[path])
		}
	}
	return ctx, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
