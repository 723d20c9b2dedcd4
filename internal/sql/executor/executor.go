package executor

import (
	"errors"
	"fmt"

	"github.com/dbcore/pagedb/internal/sql/parser"
	"github.com/dbcore/pagedb/internal/storage"
)

// ErrTableFull is the capacity error returned when the root leaf has no
// room for another cell. It is a recoverable, user-visible outcome, not
// a FatalError.
var ErrTableFull = errors.New("table full")

// Executor runs parsed commands against a single open table. It holds no
// state of its own beyond the table reference; every Execute call reads
// the table's current root page fresh.
type Executor struct {
	table *storage.Table
}

func New(table *storage.Table) *Executor {
	return &Executor{table: table}
}

// Execute runs cmd and reports its outcome. Fatal storage errors are not
// returned here: they propagate as a storage.FatalError panic, which the
// REPL recovers at its dispatch boundary.
func (e *Executor) Execute(cmd *parser.Command) (*Result, error) {
	switch cmd.Kind {
	case parser.CommandInsert:
		return nil, e.executeInsert(cmd.Insert)
	case parser.CommandSelect:
		return e.executeSelect()
	default:
		return nil, fmt.Errorf("executor: unknown command kind %v", cmd.Kind)
	}
}

func (e *Executor) executeInsert(args *parser.InsertArgs) error {
	root := e.table.RootPage()
	if storage.LeafNumCells(root) >= storage.LeafNodeMaxCells {
		return ErrTableFull
	}

	row := storage.Row{
		ID:       uint32(args.ID),
		Username: args.Username,
		Email:    args.Email,
	}

	cur := storage.TableEnd(e.table)
	storage.LeafInsert(cur, row.ID, row)
	return nil
}

func (e *Executor) executeSelect() (*Result, error) {
	var rows []storage.Row
	for cur := storage.TableStart(e.table); !cur.EndOfTable(); cur.Advance() {
		rows = append(rows, storage.Deserialize(cur.Value()))
	}
	return &Result{Rows: rows}, nil
}
