package treediff

import (
	"testing"

	"github.com/asttools/treediff/tree"
)

func TestPositionContextLookup(t *testing.T) {
	ctx := NewPositionContext()
	ex := tree.Excerpt{Span: tree.Span{Line: 7, Column: 2}, Text: "int x = 1;"}
	p := tree.Path{Unit: "Main"}.At(tree.RoleTypes, 0).At(tree.RoleMembers, 1)
	ctx.Add("Main", p.Local(), ex)

	got, ok := ctx.Lookup(p)
	if !ok || got != ex {
		t.Fatalf("Lookup = %v, %t; want %v, true", got, ok, ex)
	}

	if _, ok := ctx.Lookup(p.InUnit("Other")); ok {
		t.Error("lookup in an unknown unit should miss")
	}
	if _, ok := ctx.Lookup(p.At(tree.RoleAnnotations, 0)); ok {
		t.Error("lookup of an unrecorded path should miss")
	}
}

func TestPositionContextNilSafe(t *testing.T) {
	var ctx *PositionContext
	if _, ok := ctx.Lookup(tree.Path{Unit: "Main"}); ok {
		t.Fatal("nil context must report a miss")
	}
}
