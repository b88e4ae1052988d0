// Package treeio transports already-parsed syntax trees in and out of the
// process as YAML (or JSON, a YAML subset). It does not parse source text;
// frontends do that and hand their trees over in this form.
package treeio

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/asttools/treediff/tree"
)

type rawNode struct {
	Kind      string         `yaml:"kind"`
	Name      string         `yaml:"name"`
	Value     any            `yaml:"value"`
	Operator  string         `yaml:"operator"`
	Modifiers []string       `yaml:"modifiers"`
	Children  map[string]any `yaml:"children"`
}

// ParseUnits decodes a forest of nodes: either a YAML list of nodes or a
// single node document.
func ParseUnits(data []byte) ([]*tree.Node, error) {
	var list []rawNode
	if err := yaml.Unmarshal(data, &list); err == nil {
		units := make([]*tree.Node, len(list))
		for i := range list {
			n, err := buildNode(&list[i])
			if err != nil {
				return nil, fmt.Errorf("%w: unit %d: %v", ErrTreeInvalid, i, err)
			}
			units[i] = n
		}
		return units, nil
	}

	var single rawNode
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTreeInvalid, err)
	}
	n, err := buildNode(&single)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTreeInvalid, err)
	}
	return []*tree.Node{n}, nil
}

func buildNode(raw *rawNode) (*tree.Node, error) {
	kind, ok := tree.KindByName(raw.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", raw.Kind)
	}
	value := normalizeValue(raw.Value)
	if !tree.IsScalarValue(value) {
		return nil, fmt.Errorf("%s value must be a scalar, got %T", kind, raw.Value)
	}
	n := tree.NewNode(kind).
		WithName(raw.Name).
		WithOperator(raw.Operator).
		WithValue(value)
	if raw.Modifiers != nil {
		n.WithModifiers(raw.Modifiers...)
	}

	seen := 0
	// Slots are attached in schema order so decode output is independent of
	// YAML key order.
	for _, spec := range tree.Schema(kind) {
		v, ok := raw.Children[spec.Role.String()]
		if !ok {
			continue
		}
		seen++
		if err := attachChild(n, spec, v); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", kind, spec.Role, err)
		}
	}
	if seen != len(raw.Children) {
		for name := range raw.Children {
			if _, ok := tree.RoleByName(name); !ok {
				return nil, fmt.Errorf("unknown role %q on %s", name, kind)
			}
			if _, ok := roleInSchema(kind, name); !ok {
				return nil, fmt.Errorf("%s does not allow a %s child", kind, name)
			}
		}
	}
	return n, nil
}

func roleInSchema(kind tree.Kind, name string) (tree.RoleSpec, bool) {
	for _, spec := range tree.Schema(kind) {
		if spec.Role.String() == name {
			return spec, true
		}
	}
	return tree.RoleSpec{}, false
}

func attachChild(n *tree.Node, spec tree.RoleSpec, v any) error {
	if !spec.Seq {
		if v == nil {
			return nil
		}
		child, err := childNode(v)
		if err != nil {
			return err
		}
		n.With(spec.Role, child)
		return nil
	}

	// A null sequence means an absent list, distinct from an empty one.
	if v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("expected a sequence, got %T", v)
	}
	children := make([]*tree.Node, len(items))
	for i, item := range items {
		child, err := childNode(item)
		if err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		children[i] = child
	}
	n.WithSeq(spec.Role, children...)
	return nil
}

func childNode(v any) (*tree.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a node mapping, got %T", v)
	}
	raw := rawNode{}
	if kind, ok := m["kind"].(string); ok {
		raw.Kind = kind
	}
	if name, ok := m["name"].(string); ok {
		raw.Name = name
	}
	if op, ok := m["operator"].(string); ok {
		raw.Operator = op
	}
	raw.Value = m["value"]
	if mods, ok := m["modifiers"].([]any); ok {
		raw.Modifiers = make([]string, len(mods))
		for i, mod := range mods {
			s, ok := mod.(string)
			if !ok {
				return nil, fmt.Errorf("modifier %d: expected a string, got %T", i, mod)
			}
			raw.Modifiers[i] = s
		}
	}
	if children, ok := m["children"].(map[string]any); ok {
		raw.Children = children
	}
	return buildNode(&raw)
}

// normalizeValue folds the decoder's integer representations into int64 so
// literal payloads compare consistently regardless of how a tree entered the
// process. Unsigned values beyond the int64 range keep their width rather
// than wrap.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		if uint64(x) > math.MaxInt64 {
			return uint64(x)
		}
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return x
		}
		return int64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}
