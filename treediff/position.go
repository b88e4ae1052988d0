package treediff

import "github.com/asttools/treediff/tree"

// PositionContext maps a (source unit, node path) pair to the line/column
// span and raw text of the node's originating source. It only enriches
// report text; it never alters comparison outcomes.
//
// The unit key is the unit label used in finding paths: the first declared
// type name of the unit in sorted order (see DeclaredTypeNames).
type PositionContext struct {
	units map[string]map[string]tree.Excerpt
}

// NewPositionContext returns an empty context.
func NewPositionContext() *PositionContext {
	return &PositionContext{units: map[string]map[string]tree.Excerpt{}}
}

// Add records the excerpt for a node path (in Local form) within a unit.
func (c *PositionContext) Add(unit, localPath string, ex tree.Excerpt) {
	paths, ok := c.units[unit]
	if !ok {
		paths = map[string]tree.Excerpt{}
		c.units[unit] = paths
	}
	paths[localPath] = ex
}

// Lookup resolves a finding path to its source excerpt.
func (c *PositionContext) Lookup(p tree.Path) (tree.Excerpt, bool) {
	if c == nil {
		return tree.Excerpt{}, false
	}
	ex, ok := c.units[p.Unit][p.Local()]
	return ex, ok
}
