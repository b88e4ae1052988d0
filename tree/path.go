package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one hop from a parent node to a child: the child role, plus the
// element index when the role is a sequence (-1 for single-child roles).
type Step struct {
	Role  Role
	Index int
}

// Path identifies a node by the role/index steps from a tree root, plus the
// source unit the root belongs to. Findings reference paths rather than node
// identity so that a diff stays meaningful across two distinct trees.
type Path struct {
	Unit  string
	Steps []Step
}

// InUnit returns a copy of the path rooted in the named source unit.
func (p Path) InUnit(unit string) Path {
	p.Unit = unit
	return p
}

// Child returns the path extended by a single-child role step.
func (p Path) Child(role Role) Path {
	return p.extend(Step{Role: role, Index: -1})
}

// At returns the path extended by a sequence-role step at index.
func (p Path) At(role Role, index int) Path {
	return p.extend(Step{Role: role, Index: index})
}

func (p Path) extend(s Step) Path {
	steps := make([]Step, len(p.Steps), len(p.Steps)+1)
	copy(steps, p.Steps)
	return Path{Unit: p.Unit, Steps: append(steps, s)}
}

// Local renders the path without its unit qualifier, e.g.
// "$.types[0].members[2].body".
func (p Path) Local() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p.Steps {
		b.WriteByte('.')
		b.WriteString(s.Role.String())
		if s.Index >= 0 {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

func (p Path) String() string {
	if p.Unit == "" {
		return p.Local()
	}
	return p.Unit + ":" + p.Local()
}

// ParsePath parses the Local form of a path, optionally prefixed with
// "unit:". The inverse of String.
func ParsePath(s string) (Path, error) {
	var p Path
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		p.Unit = s[:i]
		s = s[i+1:]
	}
	if len(s) == 0 || s[0] != '$' {
		return Path{}, fmt.Errorf("path %q should start with '$'", s)
	}
	s = s[1:]
	for len(s) > 0 {
		if s[0] != '.' {
			return Path{}, fmt.Errorf("expected '.' at %q", s)
		}
		s = s[1:]
		end := strings.IndexAny(s, ".[")
		if end == -1 {
			end = len(s)
		}
		role, ok := RoleByName(s[:end])
		if !ok {
			return Path{}, fmt.Errorf("unknown role %q", s[:end])
		}
		s = s[end:]
		index := -1
		if len(s) > 0 && s[0] == '[' {
			close := strings.IndexByte(s, ']')
			if close == -1 {
				return Path{}, fmt.Errorf("expected '[' <index> ']'")
			}
			n, err := strconv.ParseUint(s[1:close], 10, 32)
			if err != nil {
				return Path{}, fmt.Errorf("bad index in path: %w", err)
			}
			index = int(n)
			s = s[close+1:]
		}
		p.Steps = append(p.Steps, Step{Role: role, Index: index})
	}
	return p, nil
}

// Resolve walks the path's steps from root and returns the node it lands
// on. It fails when a step names a role the current node does not carry or
// an index outside the sequence.
func Resolve(root *Node, p Path) (*Node, error) {
	n := root
	walked := Path{Unit: p.Unit}
	for _, s := range p.Steps {
		if n == nil {
			return nil, fmt.Errorf("no node at %s", walked)
		}
		if s.Index < 0 {
			child := n.Child(s.Role)
			if child == nil {
				return nil, fmt.Errorf("%s has no %s child at %s", n.Kind, s.Role, walked)
			}
			n = child
			walked = walked.Child(s.Role)
			continue
		}
		seq, ok := n.Seq(s.Role)
		if !ok {
			return nil, fmt.Errorf("%s has no %s sequence at %s", n.Kind, s.Role, walked)
		}
		if s.Index >= len(seq) {
			return nil, fmt.Errorf("index %d out of range for %s (len %d) at %s",
				s.Index, s.Role, len(seq), walked)
		}
		n = seq[s.Index]
		walked = walked.At(s.Role, s.Index)
	}
	return n, nil
}
