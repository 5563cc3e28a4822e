package errtree

// Aggregate turns the partitioned outcomes of a batch of independent
// fallible operations into a single result. If errs is empty it returns
// the values unchanged and a nil tree, without building anything. If errs
// is non-empty it returns no values and a group tree holding every error,
// in order.
func Aggregate[L, T, E any](values []T, errs []E) ([]T, Tree[L, E]) {
	if len(errs) == 0 {
		return values, nil
	}
	return nil, FromErrors[L](errs)
}

// AggregateTrees is Aggregate for failures that were already labeled into
// trees: the empty-check is the same, the failures are grouped with
// FromTrees.
func AggregateTrees[T, L, E any](values []T, trees []Tree[L, E]) ([]T, Tree[L, E]) {
	if len(trees) == 0 {
		return values, nil
	}
	return nil, FromTrees(trees)
}

// LabelError labels the failure of a plain fallible call. On success (nil
// err) the value passes through with a nil tree. On failure the error
// becomes a labeled leaf. Call it at every layer that has a meaningful
// name for what was being attempted:
//
//	cfg, err := loadConfig(path)
//	cfg, terr := errtree.LabelError(cfg, err, "load config")
func LabelError[T, L any, E error](value T, err E, label L) (T, Tree[L, E]) {
	if error(err) == nil {
		return value, nil
	}
	var zero T
	return zero, Label(err, label)
}

// LabelTree labels the failure of a call that already returns a tree. On
// success (nil tree) the value passes through unchanged; on failure the
// tree gains one more edge.
func LabelTree[T, L, E any](value T, tree Tree[L, E], label L) (T, Tree[L, E]) {
	if tree == nil {
		return value, nil
	}
	var zero T
	return zero, tree.WithLabel(label)
}

// Batch partitions the outcomes of a sequence of fallible operations into
// successes and failures, preserving insertion order within each side.
// Failures are stored as trees so they can be labeled as they are
// collected.
//
// A Batch is not safe for concurrent use; it is meant for a plain loop
// over a batch of calls.
type Batch[T, L any, E error] struct {
	values   []T
	failures []Tree[L, E]
}

// NewBatch creates a new batch, optionally sized for an expected number of
// outcomes.
func NewBatch[T, L any, E error](capacity ...int) *Batch[T, L, E] {
	var c int
	if len(capacity) > 0 {
		c = capacity[0]
	}
	return &Batch[T, L, E]{
		values:   make([]T, 0, c),
		failures: make([]Tree[L, E], 0, c),
	}
}

// Collect records one outcome: the value on success, the error as an
// unlabeled leaf on failure.
func (b *Batch[T, L, E]) Collect(value T, err E) *Batch[T, L, E] {
	if error(err) == nil {
		b.values = append(b.values, value)
		return b
	}
	b.failures = append(b.failures, Leaf[L, E](err))
	return b
}

// CollectLabeled records one outcome, labeling the error on failure.
func (b *Batch[T, L, E]) CollectLabeled(value T, err E, label L) *Batch[T, L, E] {
	if error(err) == nil {
		b.values = append(b.values, value)
		return b
	}
	b.failures = append(b.failures, Label(err, label))
	return b
}

// CollectTree records an already-built failure subtree. A nil tree is
// ignored.
func (b *Batch[T, L, E]) CollectTree(tree Tree[L, E]) *Batch[T, L, E] {
	if tree == nil {
		return b
	}
	b.failures = append(b.failures, tree)
	return b
}

// Len returns the number of failures collected so far.
func (b *Batch[T, L, E]) Len() int {
	return len(b.failures)
}

// Values returns a copy of the successful values collected so far, in
// insertion order.
func (b *Batch[T, L, E]) Values() []T {
	values := make([]T, len(b.values))
	copy(values, b.values)
	return values
}

// Result applies the aggregation rule to everything collected: all the
// values and a nil tree if there were no failures, otherwise no values and
// a group of every failure in insertion order.
func (b *Batch[T, L, E]) Result() ([]T, Tree[L, E]) {
	return AggregateTrees(b.values, b.failures)
}
