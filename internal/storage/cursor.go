package storage

// Cursor is a non-owning position over a table's root leaf: a page
// number, a cell number within that page, and whether the cursor has run
// past the last cell. It borrows its table's pager on every access and
// must not outlive the table it points into.
type Cursor struct {
	table      *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// TableStart returns a cursor positioned at the first cell of the root
// leaf. endOfTable is true immediately if the leaf is empty.
func TableStart(t *Table) *Cursor {
	page := t.pager.GetPage(t.rootPageNum)
	numCells := LeafNumCells(page)
	return &Cursor{
		table:      t,
		pageNum:    t.rootPageNum,
		cellNum:    0,
		endOfTable: numCells == 0,
	}
}

// TableEnd returns a cursor positioned one past the last cell of the
// root leaf, ready for an arrival-order insert.
func TableEnd(t *Table) *Cursor {
	page := t.pager.GetPage(t.rootPageNum)
	numCells := LeafNumCells(page)
	return &Cursor{
		table:      t,
		pageNum:    t.rootPageNum,
		cellNum:    numCells,
		endOfTable: true,
	}
}

// Advance moves the cursor to the next cell, marking end-of-table once it
// runs past the current page's cell count.
func (c *Cursor) Advance() {
	page := c.table.pager.GetPage(c.pageNum)
	c.cellNum++
	if c.cellNum >= LeafNumCells(page) {
		c.endOfTable = true
	}
}

func (c *Cursor) EndOfTable() bool { return c.endOfTable }

// Value returns the RowSize-byte value slot the cursor currently points
// at.
func (c *Cursor) Value() []byte {
	page := c.table.pager.GetPage(c.pageNum)
	return LeafValue(page, c.cellNum)
}
