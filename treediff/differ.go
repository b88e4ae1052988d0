package treediff

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/asttools/treediff/tree"
)

// DiffUnits compares two forests of compilation units under strict,
// positional semantics. Units are paired by identical declared-type-name
// sets, first unconsumed candidate in input order; each paired pair is then
// scanned for structural equality. An expected unit with no candidate
// returns a *NoCandidateError; malformed input returns a *ContractError.
func DiffUnits(expected, actual []*tree.Node) (*Difference, error) {
	for _, u := range expected {
		if err := tree.Validate(u); err != nil {
			return nil, contractErr(fmt.Errorf("expected unit: %w", err))
		}
	}
	for _, u := range actual {
		if err := tree.Validate(u); err != nil {
			return nil, contractErr(fmt.Errorf("actual unit: %w", err))
		}
	}

	actualSets := make([]mapset.Set[string], len(actual))
	for i, u := range actual {
		actualSets[i] = DeclaredTypeNames(u)
	}

	b := NewBuilder()
	sc := &scanner{b: b, mode: modeStrict}
	used := make([]bool, len(actual))
	for i, eu := range expected {
		eset := DeclaredTypeNames(eu)
		found := -1
		for j := range actual {
			if !used[j] && eset.Equal(actualSets[j]) {
				found = j
				break
			}
		}
		if found < 0 {
			observed := make([][]string, len(actualSets))
			for j, s := range actualSets {
				observed[j] = sortedNames(s)
			}
			return nil, &NoCandidateError{
				Expected: sortedNames(eset),
				Observed: observed,
			}
		}
		used[found] = true
		label := unitLabel(eset, i)
		sc.compare(eu, actual[found],
			tree.Path{Unit: label}, tree.Path{Unit: label})
	}
	for j, au := range actual {
		if !used[j] {
			b.AddExtraActual(au.Kind,
				tree.Path{Unit: unitLabel(actualSets[j], j)}, "%s", onlyOnSide(SideActual))
		}
	}
	return b.Build(), nil
}

// DiffSubtrees resolves two arbitrary node paths against their roots and
// compares the subtrees under strict semantics. Useful when the caller has
// already located the specific declarations to compare.
func DiffSubtrees(expectedRoot, actualRoot *tree.Node, expectedAt, actualAt tree.Path) (*Difference, error) {
	if err := tree.Validate(expectedRoot); err != nil {
		return nil, contractErr(fmt.Errorf("expected tree: %w", err))
	}
	if err := tree.Validate(actualRoot); err != nil {
		return nil, contractErr(fmt.Errorf("actual tree: %w", err))
	}
	en, err := tree.Resolve(expectedRoot, expectedAt)
	if err != nil {
		return nil, contractErr(fmt.Errorf("expected path: %w", err))
	}
	an, err := tree.Resolve(actualRoot, actualAt)
	if err != nil {
		return nil, contractErr(fmt.Errorf("actual path: %w", err))
	}
	b := NewBuilder()
	sc := &scanner{b: b, mode: modeStrict}
	sc.compare(en, an, expectedAt, actualAt)
	return b.Build(), nil
}

// MatchUnits compares a pattern unit against an actual unit under
// containment semantics: imports are irrelevant, class-body members are
// paired by name or signature rather than position, and structure present
// only on the actual side is tolerated. Findings classify; they never judge
// pass/fail.
func MatchUnits(pattern, actual *tree.Node) (*Difference, error) {
	if err := tree.Validate(pattern); err != nil {
		return nil, contractErr(fmt.Errorf("pattern unit: %w", err))
	}
	if err := tree.Validate(actual); err != nil {
		return nil, contractErr(fmt.Errorf("actual unit: %w", err))
	}
	b := NewBuilder()
	sc := &scanner{b: b, mode: modeContainment}
	sc.compare(pattern, actual,
		tree.Path{Unit: unitLabel(DeclaredTypeNames(pattern), 0)},
		tree.Path{Unit: unitLabel(DeclaredTypeNames(actual), 0)})
	return b.Build(), nil
}

// DeclaredTypeNames returns the qualified names of every top-level type
// declaration in a unit. The set is empty for a nil unit and for a unit
// with no top-level type declarations.
func DeclaredTypeNames(unit *tree.Node) mapset.Set[string] {
	names := mapset.NewThreadUnsafeSet[string]()
	if unit == nil || unit.Kind != tree.KindCompilationUnit {
		return names
	}
	var pkg string
	if p := unit.Child(tree.RolePackage); p != nil {
		pkg = p.Name
	}
	types, _ := unit.Seq(tree.RoleTypes)
	for _, t := range types {
		if !t.Kind.IsTypeDeclaration() || t.Name == "" {
			continue
		}
		if pkg != "" {
			names.Add(pkg + "." + t.Name)
			continue
		}
		names.Add(t.Name)
	}
	return names
}

func sortedNames(s mapset.Set[string]) []string {
	names := s.ToSlice()
	sort.Strings(names)
	return names
}

// unitLabel is the stable unit qualifier used in finding paths and for
// PositionContext lookups: the first declared type name in sorted order, or
// a positional placeholder for a unit declaring no types.
func unitLabel(s mapset.Set[string], index int) string {
	names := sortedNames(s)
	if len(names) == 0 {
		return fmt.Sprintf("unit[%d]", index)
	}
	return names[0]
}
