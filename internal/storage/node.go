package storage

import "github.com/dbcore/pagedb/internal/alias/bx"

// NodeType tags the common header byte. Only the leaf variant is
// implemented; the internal variant is reserved so a future B-tree split
// can be added without disturbing this layout.
type NodeType byte

const (
	NodeInternal NodeType = 0
	NodeLeaf     NodeType = 1
)

const (
	nodeTypeOffset   = 0
	isRootOffset     = 1
	parentPageOffset = 2

	// CommonNodeHeaderSize is the node_type/is_root/parent_page header
	// shared by every node kind.
	CommonNodeHeaderSize = 6
	leafNodeNumCellsSize = 4

	// LeafNodeHeaderSize is the common header plus the leaf-only num_cells field.
	LeafNodeHeaderSize = CommonNodeHeaderSize + leafNodeNumCellsSize

	leafNodeKeySize = 4
	// LeafNodeCellSize is one (key, value) cell: a 4-byte key plus a full row.
	LeafNodeCellSize = leafNodeKeySize + RowSize

	// LeafNodeSpaceForCells is the body of a leaf page available for cells.
	LeafNodeSpaceForCells = PageSize - LeafNodeHeaderSize
	// LeafNodeMaxCells is the capacity of a single leaf page. This
	// implementation never splits a full leaf; a 14th insert is a hard error.
	LeafNodeMaxCells = LeafNodeSpaceForCells / LeafNodeCellSize
)

// InitLeaf resets page to an empty leaf: num_cells = 0 and the node-type
// byte set to NodeLeaf. is_root and parent_page are left at zero.
func InitLeaf(page []byte) {
	page[nodeTypeOffset] = byte(NodeLeaf)
	SetLeafNumCells(page, 0)
}

func LeafType(page []byte) NodeType {
	return NodeType(page[nodeTypeOffset])
}

func LeafNumCells(page []byte) uint32 {
	return bx.U32At(page, CommonNodeHeaderSize)
}

func SetLeafNumCells(page []byte, n uint32) {
	bx.PutU32At(page, CommonNodeHeaderSize, n)
}

// LeafCell returns the LeafNodeCellSize-byte cell at index i.
func LeafCell(page []byte, i uint32) []byte {
	off := LeafNodeHeaderSize + int(i)*LeafNodeCellSize
	return page[off : off+LeafNodeCellSize]
}

// LeafKey returns the key of cell i.
func LeafKey(page []byte, i uint32) uint32 {
	return bx.U32(LeafCell(page, i))
}

func setLeafKey(page []byte, i uint32, key uint32) {
	bx.PutU32(LeafCell(page, i), key)
}

// LeafValue returns the RowSize-byte value slot of cell i.
func LeafValue(page []byte, i uint32) []byte {
	cell := LeafCell(page, i)
	return cell[leafNodeKeySize:]
}

// LeafInsert writes key/row into the leaf page pointed at by cur,
// shifting any cells at or past cur.cellNum rightward to make room. It is
// a fatal error to insert into a full leaf: this implementation never
// splits.
func LeafInsert(cur *Cursor, key uint32, row Row) {
	page := cur.table.pager.GetPage(cur.pageNum)
	numCells := LeafNumCells(page)

	if numCells >= LeafNodeMaxCells {
		fatalf("node: leaf is full, splitting not implemented")
	}

	if cur.cellNum < numCells {
		for i := numCells; i > cur.cellNum; i-- {
			copy(LeafCell(page, i), LeafCell(page, i-1))
		}
	}

	SetLeafNumCells(page, numCells+1)
	setLeafKey(page, cur.cellNum, key)
	Serialize(row, LeafValue(page, cur.cellNum))
}
