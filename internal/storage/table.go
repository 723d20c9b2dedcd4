package storage

// Table composes a Pager with the root page number of its single leaf.
// This design never grows past one leaf, so the root page number is
// always 0.
type Table struct {
	pager       *Pager
	rootPageNum uint32
}

// OpenTable opens the pager backing path and, for a brand new (empty)
// file, materializes page 0 as an empty leaf root.
func OpenTable(path string) *Table {
	pager := OpenPager(path)
	t := &Table{pager: pager, rootPageNum: 0}

	if pager.NumPages() == 0 {
		root := pager.GetPage(0)
		InitLeaf(root)
	}

	return t
}

// Close flushes and releases every page held by the underlying pager.
func (t *Table) Close() {
	t.pager.Close()
}

// RootPage returns the byte buffer of the root leaf, for callers (the
// executor, the .btree meta command) that need direct
// access to its header or cells.
func (t *Table) RootPage() []byte {
	return t.pager.GetPage(t.rootPageNum)
}
