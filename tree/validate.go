package tree

import "fmt"

// Validate checks a tree against the kind schemas: every node's kind must be
// known, every child slot must be legal for the kind with the right arity,
// and required children must be present. A violation means the caller handed
// the engine a malformed tree; it is reported as an error, never as an
// ordinary finding.
func Validate(root *Node) error {
	return validate(root, Path{})
}

func validate(n *Node, at Path) error {
	if n == nil {
		return fmt.Errorf("nil node at %s", at)
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("unknown kind %d at %s", n.Kind, at)
	}
	if n.Kind == KindLiteral && !IsScalarValue(n.Value) {
		return fmt.Errorf("literal value must be a scalar, got %T at %s", n.Value, at)
	}
	for _, s := range n.slots {
		spec, ok := roleSpec(n.Kind, s.role)
		if !ok {
			return fmt.Errorf("%s does not allow a %s child at %s", n.Kind, s.role, at)
		}
		if spec.Seq != s.isSeq {
			if spec.Seq {
				return fmt.Errorf("%s.%s must be a sequence at %s", n.Kind, s.role, at)
			}
			return fmt.Errorf("%s.%s must be a single child at %s", n.Kind, s.role, at)
		}
	}
	for _, spec := range Schema(n.Kind) {
		if !spec.Seq {
			child := n.Child(spec.Role)
			if child == nil {
				if spec.Required {
					return fmt.Errorf("%s is missing required %s child at %s", n.Kind, spec.Role, at)
				}
				continue
			}
			if err := validate(child, at.Child(spec.Role)); err != nil {
				return err
			}
			continue
		}
		seq, ok := n.Seq(spec.Role)
		if !ok {
			if spec.Required {
				return fmt.Errorf("%s is missing required %s sequence at %s", n.Kind, spec.Role, at)
			}
			continue
		}
		for i, child := range seq {
			if err := validate(child, at.At(spec.Role, i)); err != nil {
				return err
			}
		}
	}
	return nil
}
