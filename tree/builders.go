package tree

// Convenience constructors for assembling trees in tests and harness code.
// Frontends typically build nodes directly with NewNode/With/WithSeq.

// Unit builds a compilation unit with the given top-level type declarations
// and present-but-empty package/import slots.
func Unit(types ...*Node) *Node {
	return NewNode(KindCompilationUnit).
		WithSeq(RoleImports).
		WithSeq(RoleTypes, types...)
}

// Class builds a class declaration with the given members.
func Class(name string, members ...*Node) *Node {
	return NewNode(KindClass).WithName(name).WithSeq(RoleMembers, members...)
}

// Method builds a method declaration with an empty parameter list; fill the
// remaining roles with With/WithSeq.
func Method(name string) *Node {
	return NewNode(KindMethod).WithName(name).WithSeq(RoleParams)
}

// Variable builds a variable declaration of the given declared type.
func Variable(name string, typ *Node) *Node {
	return NewNode(KindVariable).WithName(name).With(RoleType, typ)
}

// Param is Variable without an initializer slot, for readability at call
// sites building parameter lists.
func Param(name string, typ *Node) *Node {
	return Variable(name, typ)
}

// Ident builds an identifier reference.
func Ident(name string) *Node {
	return NewNode(KindIdentifier).WithName(name)
}

// Select builds a member-select of name on target.
func Select(target *Node, name string) *Node {
	return NewNode(KindMemberSelect).WithName(name).With(RoleTarget, target)
}

// Lit builds a value-bearing literal.
func Lit(v any) *Node {
	return NewNode(KindLiteral).WithValue(v)
}

// NullLit builds the null literal, which carries no value.
func NullLit() *Node {
	return NewNode(KindLiteral)
}

// PrimType builds a primitive type use such as "int".
func PrimType(name string) *Node {
	return NewNode(KindPrimitiveType).WithName(name)
}

// Block builds a statement block.
func Block(stmts ...*Node) *Node {
	return NewNode(KindBlock).WithSeq(RoleStatements, stmts...)
}

// ExprStmt wraps an expression as a statement.
func ExprStmt(expr *Node) *Node {
	return NewNode(KindExpressionStatement).With(RoleExpression, expr)
}

// Call builds a method invocation on an optional target.
func Call(target *Node, name string, args ...*Node) *Node {
	callee := Ident(name)
	if target != nil {
		callee = Select(target, name)
	}
	return NewNode(KindMethodInvocation).
		With(RoleTarget, callee).
		WithSeq(RoleArgs, args...)
}

// Import builds an import declaration of a qualified name.
func Import(qualified string) *Node {
	return NewNode(KindImport).WithName(qualified)
}
