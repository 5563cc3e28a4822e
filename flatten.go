package errtree

// FlatError is one entry of a flattened tree: a terminal error together
// with the labels collected on the way from the leaf to the root.
//
// Path is ordered nearest label first: Path[0] is the label closest to the
// error, the last element is the outermost label. An error that was never
// labeled has an empty path.
type FlatError[L, E any] struct {
	Path []L
	Err  E
}

// Flatten implements Tree.
func (n *leafNode[L, E]) Flatten() []FlatError[L, E] {
	return n.appendFlat(nil)
}

// Flatten implements Tree.
func (n *edgeNode[L, E]) Flatten() []FlatError[L, E] {
	return n.appendFlat(nil)
}

// Flatten implements Tree.
func (n *groupNode[L, E]) Flatten() []FlatError[L, E] {
	return n.appendFlat(nil)
}

func (n *leafNode[L, E]) appendFlat(out []FlatError[L, E]) []FlatError[L, E] {
	return append(out, FlatError[L, E]{Err: n.err})
}

func (n *edgeNode[L, E]) appendFlat(out []FlatError[L, E]) []FlatError[L, E] {
	mark := len(out)
	out = n.child.appendFlat(out)
	// The label is attached while the recursion unwinds, so inner labels
	// land before outer ones: nearest label first.
	for i := mark; i < len(out); i++ {
		out[i].Path = append(out[i].Path, n.label)
	}
	return out
}

func (n *groupNode[L, E]) appendFlat(out []FlatError[L, E]) []FlatError[L, E] {
	for _, child := range n.children {
		out = child.appendFlat(out)
	}
	return out
}

// FlattenResult flattens the failure side of a fallible operation. A nil
// tree means success: the value is passed through and the returned list is
// nil. A non-nil tree is flattened and the value is ignored.
func FlattenResult[T, L, E any](value T, tree Tree[L, E]) (T, []FlatError[L, E]) {
	if tree == nil {
		return value, nil
	}
	var zero T
	return zero, tree.Flatten()
}
