package treediff

import (
	"slices"

	"github.com/asttools/treediff/tree"
)

// mode selects between strict positional comparison and containment
// matching. The scanner itself is the same in both modes; containment only
// changes how class-body members are paired and makes import declarations
// irrelevant.
type mode uint8

const (
	modeStrict mode = iota
	modeContainment
)

type scanner struct {
	b    *Builder
	mode mode
}

// compare walks a pair of nodes and records findings. When kinds differ it
// records exactly one finding and does not descend: descending into
// structurally incompatible shapes produces noise, not signal.
func (s *scanner) compare(expected, actual *tree.Node, ep, ap tree.Path) {
	if expected.Kind != actual.Kind {
		s.b.AddDifferingPair(expected.Kind, ep, ap, "%s", kindMismatch(expected.Kind, actual.Kind))
		return
	}
	s.compareAttributes(expected, actual, ep, ap)
	s.compareChildren(expected, actual, ep, ap)
}

func (s *scanner) compareAttributes(e, a *tree.Node, ep, ap tree.Path) {
	pair := func(msg string) {
		s.b.AddDifferingPair(e.Kind, ep, ap, "%s", msg)
	}

	switch e.Kind {
	case tree.KindLiteral:
		// A literal without a value is the null literal; it never equals a
		// value-bearing literal and the comparison must not throw.
		if !literalEq(e.Value, a.Value) {
			pair(valueMismatch(e.Value, a.Value))
		}

	case tree.KindIdentifier:
		// References compare textually; absence of semantic resolution is
		// tolerated, never fatal.
		if e.Name != a.Name {
			pair(nameMismatch("referenced name", e.Name, a.Name))
		}

	case tree.KindMemberSelect:
		if e.Name != a.Name {
			pair(nameMismatch("selected member", e.Name, a.Name))
		}

	case tree.KindMethodReference:
		if e.Name != a.Name {
			pair(nameMismatch("referenced method", e.Name, a.Name))
		}

	case tree.KindImport:
		if e.Name != a.Name {
			pair(nameMismatch("imported name", e.Name, a.Name))
		}

	case tree.KindPackage:
		if e.Name != a.Name {
			pair(nameMismatch("package name", e.Name, a.Name))
		}

	case tree.KindBreak, tree.KindContinue:
		// A present label never equals an absent one.
		if e.Name != a.Name {
			pair(labelMismatch(e.Name, a.Name))
		}

	case tree.KindLabeled:
		if e.Name != a.Name {
			pair(nameMismatch("label", e.Name, a.Name))
		}

	case tree.KindBinary, tree.KindUnary, tree.KindAssignment:
		if e.Operator != a.Operator {
			pair(nameMismatch("operator", e.Operator, a.Operator))
		}

	case tree.KindClass, tree.KindInterface, tree.KindEnum,
		tree.KindMethod, tree.KindVariable:
		if e.Name != a.Name {
			pair(nameMismatch("declared name", e.Name, a.Name))
		}
		if !slices.Equal(e.Modifiers, a.Modifiers) {
			pair(modifiersMismatch(e.Modifiers, a.Modifiers))
		}

	case tree.KindTypeParameter:
		if e.Name != a.Name {
			pair(nameMismatch("type parameter", e.Name, a.Name))
		}

	case tree.KindAnnotation:
		if e.Name != a.Name {
			pair(nameMismatch("annotation type", e.Name, a.Name))
		}

	case tree.KindPrimitiveType:
		if e.Name != a.Name {
			pair(nameMismatch("primitive type", e.Name, a.Name))
		}
	}
}

// literalEq compares literal payloads. Payloads are scalar values; nil is
// the null literal.
func literalEq(e, a any) bool {
	if e == nil || a == nil {
		return e == nil && a == nil
	}
	return e == a
}

func (s *scanner) compareChildren(e, a *tree.Node, ep, ap tree.Path) {
	for _, spec := range tree.Schema(e.Kind) {
		if !spec.Seq {
			s.compareSingle(e, a, spec.Role, ep, ap)
			continue
		}

		eseq, eok := e.Seq(spec.Role)
		aseq, aok := a.Seq(spec.Role)
		if spec.Absentable && eok != aok {
			// e.g. a dimension-only new-array against an initializer-list
			// form: the shapes differ, which is one finding, not a crash on
			// the absent list.
			s.b.AddDifferingPair(e.Kind, ep, ap, "%s", shapeMismatch(e.Kind, spec.Role, eok))
			continue
		}
		if !eok && !aok {
			continue
		}

		if s.mode == modeContainment {
			if e.Kind == tree.KindCompilationUnit && spec.Role == tree.RoleImports {
				// Which source path a same-named type is imported from is
				// irrelevant under containment matching.
				continue
			}
			if spec.Role == tree.RoleMembers || spec.Role == tree.RoleTypes {
				s.matchMembers(eseq, aseq, spec.Role, ep, ap)
				continue
			}
		}

		if e.Kind == tree.KindLambda && spec.Role == tree.RoleParams {
			s.compareLambdaParams(eseq, aseq, ep, ap)
			continue
		}

		s.compareSeq(eseq, aseq, spec.Role, ep, ap)
	}
}

func (s *scanner) compareSingle(e, a *tree.Node, role tree.Role, ep, ap tree.Path) {
	ec := e.Child(role)
	ac := a.Child(role)
	switch {
	case ec == nil && ac == nil:
	case ac == nil:
		s.b.AddExtraExpected(ec.Kind, ep.Child(role), "%s", onlyOnSide(SideExpected))
	case ec == nil:
		s.b.AddExtraActual(ac.Kind, ap.Child(role), "%s", onlyOnSide(SideActual))
	default:
		s.compare(ec, ac, ep.Child(role), ap.Child(role))
	}
}

// compareSeq applies the ordered-sequence rule: pairwise by position up to
// the shorter length, then one one-way finding per element beyond it.
func (s *scanner) compareSeq(eseq, aseq []*tree.Node, role tree.Role, ep, ap tree.Path) {
	n := min(len(eseq), len(aseq))
	for i := 0; i < n; i++ {
		s.compare(eseq[i], aseq[i], ep.At(role, i), ap.At(role, i))
	}
	for i := n; i < len(eseq); i++ {
		s.b.AddExtraExpected(eseq[i].Kind, ep.At(role, i), "%s", onlyOnSide(SideExpected))
	}
	for i := n; i < len(aseq); i++ {
		s.b.AddExtraActual(aseq[i].Kind, ap.At(role, i), "%s", onlyOnSide(SideActual))
	}
}

// compareLambdaParams recognizes parameter-type elision: an explicitly typed
// parameter list is equivalent to an implicitly typed one as long as names
// and count match. Types are compared only when both sides declare them.
func (s *scanner) compareLambdaParams(eseq, aseq []*tree.Node, ep, ap tree.Path) {
	n := min(len(eseq), len(aseq))
	for i := 0; i < n; i++ {
		pe, pa := eseq[i], aseq[i]
		epi := ep.At(tree.RoleParams, i)
		api := ap.At(tree.RoleParams, i)
		if pe.Kind != tree.KindVariable || pa.Kind != tree.KindVariable {
			s.compare(pe, pa, epi, api)
			continue
		}
		if pe.Name != pa.Name {
			s.b.AddDifferingPair(pe.Kind, epi, api, "%s",
				nameMismatch("parameter name", pe.Name, pa.Name))
		}
		et := pe.Child(tree.RoleType)
		at := pa.Child(tree.RoleType)
		if et != nil && at != nil {
			s.compare(et, at, epi.Child(tree.RoleType), api.Child(tree.RoleType))
		}
	}
	for i := n; i < len(eseq); i++ {
		s.b.AddExtraExpected(eseq[i].Kind, ep.At(tree.RoleParams, i), "%s", onlyOnSide(SideExpected))
	}
	for i := n; i < len(aseq); i++ {
		s.b.AddExtraActual(aseq[i].Kind, ap.At(tree.RoleParams, i), "%s", onlyOnSide(SideActual))
	}
}

// matchMembers pairs class-body members before comparing them: fields by
// declared name, methods and constructors by signature, nested types by
// simple name. Pairing is a deterministic greedy bipartite match — first
// unconsumed candidate in input order — which can mis-pair under
// pathological overload sets; it is a best-effort heuristic, not an optimal
// assignment. Unpaired expected members are reported; unconsumed actual
// members are tolerated (containment).
func (s *scanner) matchMembers(eseq, aseq []*tree.Node, role tree.Role, ep, ap tree.Path) {
	used := make([]bool, len(aseq))
	for i, em := range eseq {
		key := keyOf(em)
		found := -1
		for j, am := range aseq {
			if !used[j] && keyOf(am) == key {
				found = j
				break
			}
		}
		if found < 0 {
			s.b.AddExtraExpected(em.Kind, ep.At(role, i), "%s", unpairedMember(key))
			continue
		}
		used[found] = true
		// Attributes excluded from the pairing key (names, modifiers,
		// return type, throws) are still compared once paired.
		s.compare(em, aseq[found], ep.At(role, i), ap.At(role, found))
	}
}
