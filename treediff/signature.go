package treediff

import (
	"fmt"
	"strings"

	"github.com/asttools/treediff/tree"
)

// memberKey is the pairing key for containment matching of class-body
// members. Methods and constructors pair by signature — name plus ordered
// parameter-type list — with declared parameter names, modifiers, return
// type and throws excluded. Fields pair by declared name, nested types by
// simple name, anything else by its kind alone.
type memberKey struct {
	category string
	id       string
}

func (k memberKey) String() string {
	if k.id == "" {
		return k.category
	}
	return fmt.Sprintf("%s %q", k.category, k.id)
}

func keyOf(member *tree.Node) memberKey {
	switch {
	case member.Kind == tree.KindMethod:
		return memberKey{category: "method", id: Signature(member)}
	case member.Kind == tree.KindVariable:
		return memberKey{category: "field", id: member.Name}
	case member.Kind.IsTypeDeclaration():
		return memberKey{category: "type", id: member.Name}
	default:
		return memberKey{category: member.Kind.String()}
	}
}

// Signature renders a method's pairing signature: name plus the ordered
// parameter-type list, e.g. "method(int, double)".
func Signature(method *tree.Node) string {
	params, _ := method.Seq(tree.RoleParams)
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = TypeName(p.Child(tree.RoleType))
	}
	return method.Name + "(" + strings.Join(types, ", ") + ")"
}

// TypeName renders a type-use node as pairing text. Qualified and simple
// references to the same name render the same, matching the engine's
// import-path irrelevance.
func TypeName(t *tree.Node) string {
	if t == nil {
		return "?"
	}
	switch t.Kind {
	case tree.KindPrimitiveType, tree.KindIdentifier, tree.KindTypeParameter:
		return t.Name
	case tree.KindMemberSelect:
		// Only the simple name participates: which path the type was
		// imported from must not affect pairing.
		return t.Name
	case tree.KindArrayType:
		return TypeName(t.Child(tree.RoleType)) + "[]"
	case tree.KindParameterizedType:
		args, _ := t.Seq(tree.RoleTypeArgs)
		names := make([]string, len(args))
		for i, a := range args {
			names[i] = TypeName(a)
		}
		return TypeName(t.Child(tree.RoleType)) + "<" + strings.Join(names, ", ") + ">"
	case tree.KindUnionType:
		alts, _ := t.Seq(tree.RoleAlternatives)
		names := make([]string, len(alts))
		for i, a := range alts {
			names[i] = TypeName(a)
		}
		return strings.Join(names, " | ")
	case tree.KindAnnotatedType:
		return TypeName(t.Child(tree.RoleType))
	case tree.KindWildcard:
		return "?"
	default:
		return t.Kind.String()
	}
}
