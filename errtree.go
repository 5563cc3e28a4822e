// Package errtree collects multiple errors from a multi-step operation
// instead of discarding all but the first.
//
// Errors are stored in a tree whose shape mirrors the call structure:
// each layer labels the errors of the operations it attempted, and
// sibling operations are grouped at the same level. When the operation
// finishes, the tree is flattened into an ordered list of (label path,
// error) pairs ready to hand to a presentation or logging layer.
package errtree

// Tree is a recursive container of labeled errors.
//
// A tree is one of three kinds of node: a leaf holding a single error, an
// edge attaching a label to one child tree, or a group holding an ordered
// list of sibling trees. Trees are built bottom-up with Leaf, Label,
// FromErrors and FromTrees, extended with WithLabel as they propagate
// outward, and consumed once with Flatten.
//
// L is the label type, E is the caller's error type. Trees are plain
// values: build one, flatten it, discard it. They are never mutated after
// construction.
type Tree[L, E any] interface {
	// WithLabel wraps the tree in an edge node carrying label. The label
	// is attached to every error below this point when the tree is
	// flattened.
	WithLabel(label L) Tree[L, E]

	// Flatten converts the tree into an ordered list of flat errors,
	// depth-first, with each error's label path ordered nearest label
	// first. It never modifies the tree and may be called repeatedly.
	Flatten() []FlatError[L, E]

	// appendFlat seals the interface and drives Flatten.
	appendFlat(out []FlatError[L, E]) []FlatError[L, E]
}

// leafNode holds a single terminal error.
type leafNode[L, E any] struct {
	err E
}

// edgeNode attaches a label to exactly one child tree.
type edgeNode[L, E any] struct {
	label L
	child Tree[L, E]
}

// groupNode holds the subtrees of sibling operations, in insertion order.
// A group with no children represents "no errors" and flattens to nothing.
type groupNode[L, E any] struct {
	children []Tree[L, E]
}

// Leaf creates a tree holding a single error with no label.
//
// The label type cannot be inferred from the argument, so it is usually
// given explicitly:
//
//	tree := errtree.Leaf[string](err)
func Leaf[L, E any](err E) Tree[L, E] {
	return &leafNode[L, E]{err: err}
}

// Label creates a tree holding a single labeled error. It is shorthand for
// Leaf(err).WithLabel(label) and infers both type parameters from its
// arguments.
func Label[L, E any](err E, label L) Tree[L, E] {
	return &edgeNode[L, E]{label: label, child: Leaf[L](err)}
}

// FromErrors creates a group tree from a list of errors, promoting each
// error to a leaf. The order of errs is preserved. An empty or nil list
// produces an empty group, which flattens to no entries.
func FromErrors[L, E any](errs []E) Tree[L, E] {
	children := make([]Tree[L, E], 0, len(errs))
	for _, err := range errs {
		children = append(children, Leaf[L](err))
	}
	return &groupNode[L, E]{children: children}
}

// FromTrees creates a group tree from a list of subtrees, preserving their
// order. An empty or nil list produces an empty group.
func FromTrees[L, E any](trees []Tree[L, E]) Tree[L, E] {
	children := make([]Tree[L, E], 0, len(trees))
	children = append(children, trees...)
	return &groupNode[L, E]{children: children}
}

func (n *leafNode[L, E]) WithLabel(label L) Tree[L, E] {
	return &edgeNode[L, E]{label: label, child: n}
}

func (n *edgeNode[L, E]) WithLabel(label L) Tree[L, E] {
	return &edgeNode[L, E]{label: label, child: n}
}

func (n *groupNode[L, E]) WithLabel(label L) Tree[L, E] {
	return &edgeNode[L, E]{label: label, child: n}
}
