package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/vocab"
)

func TestNodeTypesAssignAndMultilabel(t *testing.T) {
	nt := vocab.NewNodeTypes()

	require.NoError(t, nt.Assign(0, []string{"person", "admin"}))
	require.NoError(t, nt.Assign(1, []string{"person"}))
	require.NoError(t, nt.Assign(2, nil)) // unknown

	assert.True(t, nt.Multilabel())
	assert.Equal(t, uint64(1), nt.Unknown())

	ids, ok := nt.Of(0)
	require.True(t, ok)
	assert.Len(t, ids, 2)
	assert.Less(t, ids[0], ids[1]) // sorted

	_, ok = nt.Of(2)
	assert.False(t, ok)
}

func TestNodeTypesRejectsEmptyList(t *testing.T) {
	nt := vocab.NewNodeTypes()
	err := nt.Assign(0, []string{})
	assert.ErrorIs(t, err, vocab.ErrEmptyName)
}

func TestNodeTypesRejectsDuplicateInSameNode(t *testing.T) {
	nt := vocab.NewNodeTypes()
	err := nt.Assign(0, []string{"a", "a"})
	assert.ErrorIs(t, err, vocab.ErrReverseCollision)
}

func TestNodeTypesSameTypeComparesSortedLists(t *testing.T) {
	nt := vocab.NewNodeTypes()
	require.NoError(t, nt.Assign(0, []string{"a", "b"}))
	require.NoError(t, nt.Assign(1, []string{"b", "a"}))
	require.NoError(t, nt.Assign(2, []string{"a"}))

	assert.True(t, nt.SameType(0, 1))
	assert.False(t, nt.SameType(0, 2))
}

func TestNodeTypesRecountAndCountOf(t *testing.T) {
	nt := vocab.NewNodeTypes()
	require.NoError(t, nt.Assign(0, []string{"a"}))
	require.NoError(t, nt.Assign(1, []string{"a"}))
	require.NoError(t, nt.Assign(2, []string{"b"}))
	nt.Recount()

	id, ok := nt.Vocab.Get("a")
	require.True(t, ok)
	assert.Equal(t, uint64(2), nt.CountOf(vocab.TypeID(id)))
}

func TestEdgeTypesSingleLabel(t *testing.T) {
	et := vocab.NewEdgeTypes()
	require.NoError(t, et.Assign(0, "likes"))
	require.NoError(t, et.Assign(1, ""))

	id, ok := et.Of(0)
	require.True(t, ok)
	_, ok = et.Of(1)
	assert.False(t, ok)
	assert.Equal(t, uint64(1), et.Unknown())

	et.Recount()
	assert.Equal(t, uint64(1), et.CountOf(id))
}
