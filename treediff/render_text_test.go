package treediff

import (
	"strings"
	"testing"

	"github.com/asttools/treediff/tree"
)

func sampleDifference() *Difference {
	stmts := tree.Path{Unit: "Main"}.
		At(tree.RoleTypes, 0).At(tree.RoleMembers, 0).Child(tree.RoleBody)
	b := NewBuilder()
	b.AddDifferingPair(tree.KindLiteral,
		stmts.At(tree.RoleStatements, 0), stmts.At(tree.RoleStatements, 0),
		"%s", valueMismatch(int64(3), int64(4)))
	b.AddExtraActual(tree.KindExpressionStatement,
		stmts.At(tree.RoleStatements, 1), "%s", onlyOnSide(SideActual))
	return b.Build()
}

func TestRenderTextGolden(t *testing.T) {
	want := `Found 2 differences:
- [changed] literal: expected literal 3 but found 4
    expected at Main:$.types[0].members[0].body.statements[0]
    actual at Main:$.types[0].members[0].body.statements[0]
- [only in actual] expression-statement: present only in actual tree
    actual at Main:$.types[0].members[0].body.statements[1]
`
	got := sampleDifference().Report(nil)
	if got != want {
		t.Fatalf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTextDeterministic(t *testing.T) {
	d := sampleDifference()
	first := d.Report(nil)
	second := d.Report(nil)
	if first != second {
		t.Fatal("two renderings of the same difference are not byte-identical")
	}
}

func TestRenderTextEmpty(t *testing.T) {
	d := NewBuilder().Build()
	if got := d.Report(nil); got != "No differences found.\n" {
		t.Fatalf("unexpected empty report %q", got)
	}
}

func TestRenderTextSingularHeader(t *testing.T) {
	b := NewBuilder()
	b.AddExtraActual(tree.KindReturn, tree.Path{Unit: "A"}, "%s", onlyOnSide(SideActual))
	got := b.Build().Report(nil)
	if !strings.HasPrefix(got, "Found 1 difference:\n") {
		t.Fatalf("header not singular:\n%s", got)
	}
}

func TestRenderTextWithPositions(t *testing.T) {
	ctx := NewPositionContext()
	ctx.Add("Main", "$.types[0].members[0].body.statements[0]", tree.Excerpt{
		Span: tree.Span{Line: 3, Column: 5, EndLine: 3, EndColumn: 18},
		Text: "use(3);",
	})

	got := sampleDifference().Report(ctx)
	if !strings.Contains(got, "(3:5-3:18) `use(3);`") {
		t.Fatalf("report missing span and excerpt:\n%s", got)
	}
	// The second finding's path has no recorded excerpt and stays bare.
	if !strings.Contains(got, "actual at Main:$.types[0].members[0].body.statements[1]\n") {
		t.Fatalf("unenriched finding rendered unexpectedly:\n%s", got)
	}
}

func TestRenderTextDelta(t *testing.T) {
	ep := tree.Path{Unit: "Main"}.At(tree.RoleStatements, 0)
	ctx := NewPositionContext()
	ctx.Add("Main", ep.Local(), tree.Excerpt{Span: tree.Span{Line: 1, Column: 1}, Text: "use(3);"})

	b := NewBuilder()
	b.AddDifferingPair(tree.KindLiteral, ep, ep, "%s", valueMismatch(int64(3), int64(4)))
	d := b.Build()

	// Same excerpt on both sides: no delta line.
	if got := d.Report(ctx); strings.Contains(got, "delta:") {
		t.Fatalf("delta rendered for identical excerpts:\n%s", got)
	}

	ap := tree.Path{Unit: "Other"}.At(tree.RoleStatements, 0)
	ctx.Add("Other", ap.Local(), tree.Excerpt{Span: tree.Span{Line: 1, Column: 1}, Text: "use(4);"})
	b = NewBuilder()
	b.AddDifferingPair(tree.KindLiteral, ep, ap, "%s", valueMismatch(int64(3), int64(4)))
	got := b.Build().Report(ctx)
	if !strings.Contains(got, "delta: use([-3-][+4+]);") {
		t.Fatalf("inline delta missing:\n%s", got)
	}
}

func TestRenderTextMaxFindings(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < 5; i++ {
		b.AddExtraActual(tree.KindReturn,
			tree.Path{Unit: "A"}.At(tree.RoleStatements, i), "%s", onlyOnSide(SideActual))
	}
	var out strings.Builder
	RenderText(&out, b.Build(), TextOptions{MaxFindings: 2})
	got := out.String()

	if !strings.HasPrefix(got, "Found 5 differences:\n") {
		t.Fatalf("header must report the true total:\n%s", got)
	}
	if !strings.HasSuffix(got, "... and 3 more\n") {
		t.Fatalf("missing truncation trailer:\n%s", got)
	}
	if n := strings.Count(got, "[only in actual]"); n != 2 {
		t.Fatalf("rendered %d findings, want 2:\n%s", n, got)
	}
}

func TestRenderTextColorIsCallLocal(t *testing.T) {
	d := sampleDifference()

	// Forced color emits ANSI escapes regardless of terminal detection.
	var colored strings.Builder
	RenderText(&colored, d, TextOptions{Color: true})
	if !strings.Contains(colored.String(), "\x1b[33m") {
		t.Fatalf("forced color missing ANSI escapes:\n%q", colored.String())
	}

	// A later plain rendering is unaffected by the forced one.
	if got := d.Report(nil); strings.Contains(got, "\x1b[") {
		t.Fatalf("plain report carries ANSI escapes:\n%q", got)
	}
}

func TestInlineDiff(t *testing.T) {
	got := inlineDiff("throw new IOException();", "throw new SQLException();")
	if !strings.Contains(got, "[-") || !strings.Contains(got, "[+") {
		t.Fatalf("inline diff has no delete/insert segments: %q", got)
	}
	if inlineDiff("same", "same") != "same" {
		t.Fatal("identical strings must render unchanged")
	}
}
