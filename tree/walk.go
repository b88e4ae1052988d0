package tree

// Walk visits every node reachable from root in depth-first, left-to-right
// order, following the kind schema's canonical role order. Returning false
// from visit skips the node's children.
func Walk(root *Node, visit func(Path, *Node) bool) {
	walk(root, Path{}, visit)
}

func walk(n *Node, at Path, visit func(Path, *Node) bool) {
	if n == nil || !visit(at, n) {
		return
	}
	for _, spec := range Schema(n.Kind) {
		if !spec.Seq {
			if child := n.Child(spec.Role); child != nil {
				walk(child, at.Child(spec.Role), visit)
			}
			continue
		}
		seq, ok := n.Seq(spec.Role)
		if !ok {
			continue
		}
		for i, child := range seq {
			walk(child, at.At(spec.Role, i), visit)
		}
	}
}
