package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLeaf(t *testing.T) {
	page := make([]byte, PageSize)
	InitLeaf(page)

	assert.Equal(t, NodeLeaf, LeafType(page))
	assert.EqualValues(t, 0, LeafNumCells(page))
}

func TestLeafNodeConstants(t *testing.T) {
	assert.Equal(t, 6, CommonNodeHeaderSize)
	assert.Equal(t, 10, LeafNodeHeaderSize)
	assert.Equal(t, 297, LeafNodeCellSize)
	assert.Equal(t, 4086, LeafNodeSpaceForCells)
	assert.Equal(t, 13, LeafNodeMaxCells)
}

func TestLeafInsertAppendsInArrivalOrder(t *testing.T) {
	table := OpenTable(filepath.Join(t.TempDir(), "n.db"))
	defer table.Close()

	cur := TableEnd(table)
	LeafInsert(cur, 1, Row{ID: 1, Username: "a", Email: "a@x"})

	cur = TableEnd(table)
	LeafInsert(cur, 2, Row{ID: 2, Username: "b", Email: "b@x"})

	page := table.RootPage()
	require.EqualValues(t, 2, LeafNumCells(page))
	assert.EqualValues(t, 1, LeafKey(page, 0))
	assert.EqualValues(t, 2, LeafKey(page, 1))
}

func TestLeafInsertFullLeafIsFatal(t *testing.T) {
	table := OpenTable(filepath.Join(t.TempDir(), "full.db"))
	defer table.Close()

	for i := uint32(0); i < LeafNodeMaxCells; i++ {
		cur := TableEnd(table)
		LeafInsert(cur, i, Row{ID: i, Username: "u", Email: "e"})
	}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(FatalError)
		assert.True(t, ok)
	}()

	cur := TableEnd(table)
	LeafInsert(cur, LeafNodeMaxCells, Row{ID: LeafNodeMaxCells, Username: "u", Email: "e"})
}
