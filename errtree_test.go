package errtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxbolgarin/errtree"
)

func TestLeaf(t *testing.T) {
	tree := errtree.Leaf[string]("boom")

	flat := tree.Flatten()
	require.Len(t, flat, 1)
	assert.Empty(t, flat[0].Path)
	assert.Equal(t, "boom", flat[0].Err)
}

func TestWithLabel(t *testing.T) {
	tree := errtree.Leaf[string]("boom").WithLabel("step")

	flat := tree.Flatten()
	require.Len(t, flat, 1)
	assert.Equal(t, []string{"step"}, flat[0].Path)
	assert.Equal(t, "boom", flat[0].Err)
}

func TestLabelMatchesLeafWithLabel(t *testing.T) {
	viaLabel := errtree.Label("boom", "step").Flatten()
	viaLeaf := errtree.Leaf[string]("boom").WithLabel("step").Flatten()

	assert.Equal(t, viaLeaf, viaLabel)
}

func TestFromErrorsPreservesOrder(t *testing.T) {
	tree := errtree.FromErrors[string]([]string{"first", "second", "third"})

	flat := tree.Flatten()
	require.Len(t, flat, 3)
	assert.Equal(t, "first", flat[0].Err)
	assert.Equal(t, "second", flat[1].Err)
	assert.Equal(t, "third", flat[2].Err)
	for _, f := range flat {
		assert.Empty(t, f.Path)
	}
}

func TestFromTreesPreservesOrder(t *testing.T) {
	tree := errtree.FromTrees([]errtree.Tree[string, string]{
		errtree.Label("boom1", "a"),
		errtree.Label("boom2", "b"),
	})

	flat := tree.Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, []string{"a"}, flat[0].Path)
	assert.Equal(t, "boom1", flat[0].Err)
	assert.Equal(t, []string{"b"}, flat[1].Path)
	assert.Equal(t, "boom2", flat[1].Err)
}

func TestFromErrorsEmptyIsNoErrors(t *testing.T) {
	tree := errtree.FromErrors[string, string](nil)

	require.NotNil(t, tree)
	assert.Empty(t, tree.Flatten())
}

func TestGroupCanBeLabeled(t *testing.T) {
	tree := errtree.FromErrors[string]([]string{"boom1", "boom2"}).WithLabel("batch")

	flat := tree.Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, []string{"batch"}, flat[0].Path)
	assert.Equal(t, []string{"batch"}, flat[1].Path)
}

func TestCustomLabelAndErrorTypes(t *testing.T) {
	type step struct {
		Name string
		Try  int
	}
	type failure struct {
		Code int
	}

	tree := errtree.Label(failure{Code: 42}, step{Name: "fetch", Try: 2})

	flat := tree.Flatten()
	require.Len(t, flat, 1)
	assert.Equal(t, []step{{Name: "fetch", Try: 2}}, flat[0].Path)
	assert.Equal(t, failure{Code: 42}, flat[0].Err)
}
