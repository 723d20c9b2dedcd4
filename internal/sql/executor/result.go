package executor

import "github.com/dbcore/pagedb/internal/storage"

// Result is what Execute reports back to the REPL. Rows is populated
// only for SELECT; an INSERT reports success by returning a nil error
// and a nil Result.
type Result struct {
	Rows []storage.Row
}
