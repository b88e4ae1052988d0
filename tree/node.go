// Package tree defines the syntax-node model consumed by the treediff
// engine. Trees are produced by an external frontend (or by the treeio
// codec) and are treated as immutable once handed to the engine.
package tree

import "fmt"

// Node is one syntax-tree node: a Kind tag, scalar attributes, and
// role-addressed children per the kind's Schema.
type Node struct {
	Kind Kind

	// Name holds the declared or referenced simple name: identifier text,
	// member-select member, declaration name, or a break/continue label
	// (empty for an unlabeled jump).
	Name string

	// Value is the literal payload. A nil Value on a literal node means the
	// null literal, which is distinct from every value-bearing literal.
	Value any

	// Operator is the operator token of binary, unary and assignment nodes.
	Operator string

	// Modifiers are declaration modifiers in source order.
	Modifiers []string

	slots []slot
}

type slot struct {
	role   Role
	isSeq  bool
	single *Node
	seq    []*Node
}

// NewNode returns a node of the given kind with no attributes or children.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// WithName sets the node's name and returns the node.
func (n *Node) WithName(name string) *Node {
	n.Name = name
	return n
}

// WithValue sets the literal payload and returns the node.
func (n *Node) WithValue(v any) *Node {
	n.Value = v
	return n
}

// WithOperator sets the operator token and returns the node.
func (n *Node) WithOperator(op string) *Node {
	n.Operator = op
	return n
}

// WithModifiers sets the modifier list and returns the node.
func (n *Node) WithModifiers(mods ...string) *Node {
	n.Modifiers = mods
	return n
}

// With sets the single child for role and returns the node.
func (n *Node) With(role Role, child *Node) *Node {
	if child == nil {
		return n
	}
	if s := n.slot(role); s != nil {
		s.single = child
		return n
	}
	n.slots = append(n.slots, slot{role: role, single: child})
	return n
}

// WithSeq sets the ordered child sequence for role and returns the node. A
// call with zero children records an empty sequence, which is distinct from
// never setting the role at all (an absent sequence).
func (n *Node) WithSeq(role Role, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	if s := n.slot(role); s != nil {
		s.isSeq = true
		s.seq = children
		return n
	}
	n.slots = append(n.slots, slot{role: role, isSeq: true, seq: children})
	return n
}

func (n *Node) slot(role Role) *slot {
	for i := range n.slots {
		if n.slots[i].role == role {
			return &n.slots[i]
		}
	}
	return nil
}

// Child returns the single child in role, or nil when absent.
func (n *Node) Child(role Role) *Node {
	if s := n.slot(role); s != nil && !s.isSeq {
		return s.single
	}
	return nil
}

// Seq returns the ordered child sequence in role. ok is false when the
// sequence is entirely absent; an empty present sequence returns (nil
// slice, true) semantics via a zero-length slice.
func (n *Node) Seq(role Role) ([]*Node, bool) {
	if s := n.slot(role); s != nil && s.isSeq {
		return s.seq, true
	}
	return nil, false
}

// HasRole reports whether the node carries any child slot for role.
func (n *Node) HasRole(role Role) bool {
	return n.slot(role) != nil
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:     n.Kind,
		Name:     n.Name,
		Value:    n.Value,
		Operator: n.Operator,
	}
	if n.Modifiers != nil {
		out.Modifiers = append([]string(nil), n.Modifiers...)
	}
	for _, s := range n.slots {
		if !s.isSeq {
			out.With(s.role, s.single.Clone())
			continue
		}
		cp := make([]*Node, len(s.seq))
		for i, c := range s.seq {
			cp[i] = c.Clone()
		}
		out.WithSeq(s.role, cp...)
	}
	return out
}

func (n *Node) String() string {
	switch {
	case n == nil:
		return "<nil>"
	case n.Name != "":
		return fmt.Sprintf("%s %q", n.Kind, n.Name)
	case n.Kind == KindLiteral:
		return fmt.Sprintf("%s %s", n.Kind, FormatValue(n.Value))
	case n.Operator != "":
		return fmt.Sprintf("%s %q", n.Kind, n.Operator)
	default:
		return n.Kind.String()
	}
}

// IsScalarValue reports whether v is a legal literal payload: nil (the null
// literal), a bool, a string, an integer or a float. Composite payloads are
// schema violations.
func IsScalarValue(v any) bool {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// FormatValue renders a literal payload for messages; nil renders as the
// null literal.
func FormatValue(v any) string {
	if v == nil {
		return "<null>"
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
