// Package treediff compares two syntax trees for structural equality or
// containment and reports where they differ. All operations are pure: each
// call allocates its own result, inputs are never mutated, and identical
// inputs always produce identical results.
package treediff

import (
	"fmt"
	"slices"

	"github.com/asttools/treediff/tree"
)

// Side tags a one-way finding with the tree it concerns.
type Side uint8

const (
	SideExpected Side = iota
	SideActual
)

func (s Side) String() string {
	if s == SideActual {
		return "actual"
	}
	return "expected"
}

// OneWayFinding reports a node present on only one side of a comparison.
type OneWayFinding struct {
	Side    Side
	Kind    tree.Kind
	Path    tree.Path
	Message string
}

// PairFinding reports two corresponding nodes whose kind or attributes
// differ.
type PairFinding struct {
	Kind         tree.Kind
	ExpectedPath tree.Path
	ActualPath   tree.Path
	Message      string
}

// Difference is the immutable result of one comparison: the one-way findings
// partitioned by side, and the differing-pair findings, each in depth-first,
// left-to-right encounter order.
type Difference struct {
	extraExpected []OneWayFinding
	extraActual   []OneWayFinding
	pairs         []PairFinding
}

// IsEmpty reports whether the comparison found no differences at all.
func (d *Difference) IsEmpty() bool {
	return len(d.extraExpected) == 0 && len(d.extraActual) == 0 && len(d.pairs) == 0
}

// Len is the total number of findings.
func (d *Difference) Len() int {
	return len(d.extraExpected) + len(d.extraActual) + len(d.pairs)
}

// ExtraExpected returns the findings for nodes present only in the expected
// tree.
func (d *Difference) ExtraExpected() []OneWayFinding {
	return slices.Clone(d.extraExpected)
}

// ExtraActual returns the findings for nodes present only in the actual
// tree.
func (d *Difference) ExtraActual() []OneWayFinding {
	return slices.Clone(d.extraActual)
}

// DifferingPairs returns the findings for paired nodes that differ.
func (d *Difference) DifferingPairs() []PairFinding {
	return slices.Clone(d.pairs)
}

// Builder accumulates findings during a single comparison pass. It is
// append-only; Build produces the immutable Difference.
type Builder struct {
	d Difference
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddExtraExpected records a node present only in the expected tree.
func (b *Builder) AddExtraExpected(kind tree.Kind, path tree.Path, format string, args ...any) {
	b.d.extraExpected = append(b.d.extraExpected, OneWayFinding{
		Side:    SideExpected,
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddExtraActual records a node present only in the actual tree.
func (b *Builder) AddExtraActual(kind tree.Kind, path tree.Path, format string, args ...any) {
	b.d.extraActual = append(b.d.extraActual, OneWayFinding{
		Side:    SideActual,
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddDifferingPair records corresponding nodes whose kind or attributes
// differ.
func (b *Builder) AddDifferingPair(kind tree.Kind, expectedPath, actualPath tree.Path, format string, args ...any) {
	b.d.pairs = append(b.d.pairs, PairFinding{
		Kind:         kind,
		ExpectedPath: expectedPath,
		ActualPath:   actualPath,
		Message:      fmt.Sprintf(format, args...),
	})
}

// Build returns the accumulated Difference.
func (b *Builder) Build() *Difference {
	d := b.d
	return &d
}
