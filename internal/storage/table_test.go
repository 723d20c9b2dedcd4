package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTableInitializesEmptyLeafRoot(t *testing.T) {
	table := OpenTable(filepath.Join(t.TempDir(), "t.db"))
	defer table.Close()

	root := table.RootPage()
	assert.Equal(t, NodeLeaf, LeafType(root))
	assert.EqualValues(t, 0, LeafNumCells(root))
}

func TestCursorWalksInsertedRowsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.db")
	table := OpenTable(path)

	rows := []Row{
		{ID: 1, Username: "alice", Email: "a@x"},
		{ID: 2, Username: "bob", Email: "b@x"},
		{ID: 3, Username: "carol", Email: "c@x"},
	}
	for _, r := range rows {
		cur := TableEnd(table)
		LeafInsert(cur, r.ID, r)
	}

	var got []Row
	for cur := TableStart(table); !cur.EndOfTable(); cur.Advance() {
		got = append(got, Deserialize(cur.Value()))
	}
	require.Equal(t, rows, got)

	table.Close()
}

func TestTablePersistsAcrossClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	table := OpenTable(path)
	cur := TableEnd(table)
	LeafInsert(cur, 1, Row{ID: 1, Username: "alice", Email: "a@x"})
	table.Close()

	reopened := OpenTable(path)
	defer reopened.Close()

	cur2 := TableStart(reopened)
	require.False(t, cur2.EndOfTable())
	assert.Equal(t, Row{ID: 1, Username: "alice", Email: "a@x"}, Deserialize(cur2.Value()))
}

func TestEmptyTableCursorStartsAtEnd(t *testing.T) {
	table := OpenTable(filepath.Join(t.TempDir(), "empty.db"))
	defer table.Close()

	cur := TableStart(table)
	assert.True(t, cur.EndOfTable())
}
