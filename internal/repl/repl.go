// Package repl drives the interactive loop: prompt, read a line,
// dispatch a meta command or a statement, print the result tag.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"

	"github.com/dbcore/pagedb/internal/sql/executor"
	"github.com/dbcore/pagedb/internal/sql/parser"
	"github.com/dbcore/pagedb/internal/storage"
)

const prompt = "SQLite > "

// REPL owns the readline instance, the history file, and the executor
// wired to a single open table.
type REPL struct {
	table   *storage.Table
	exec    *executor.Executor
	rl      *readline.Instance
	history *History
}

// New builds a REPL over table, loading (best-effort) history from
// historyPath.
func New(table *storage.Table, historyPath string, historyMax int) (*REPL, error) {
	hist := NewHistory(historyPath)
	if err := hist.Load(historyMax); err != nil {
		slog.Warn("repl: could not load history", "path", historyPath, "err", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("repl: %w", err)
	}
	for _, line := range hist.Lines() {
		_ = rl.SaveHistory(line)
	}

	return &REPL{
		table:   table,
		exec:    executor.New(table),
		rl:      rl,
		history: hist,
	}, nil
}

// Close releases the readline instance. It does not close the table;
// Run does that on every exit path.
func (r *REPL) Close() {
	_ = r.rl.Close()
}

// Run drives the loop until `.exit` or EOF and returns the process exit
// code the caller should use.
func (r *REPL) Run() int {
	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Println("^C")
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			fmt.Println("Goodbye!")
			r.table.Close()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading input")
			r.table.Close()
			return 1
		}

		if line == "" {
			fmt.Println("Unrecognized Input")
			continue
		}

		if err := r.history.Append(line); err != nil {
			slog.Warn("repl: could not persist statement to history", "path", r.history.Path(), "err", err)
		}

		if line[0] == '.' {
			if exitCode, exit := r.dispatchMeta(line); exit {
				return exitCode
			}
			continue
		}

		r.dispatchStatement(line)
	}
}

// dispatchMeta runs a `.`-prefixed command. exit is true when the loop
// must return, in which case exitCode is the process exit code to use.
func (r *REPL) dispatchMeta(line string) (exitCode int, exit bool) {
	switch line {
	case ".exit":
		r.table.Close()
		fmt.Println("Goodbye!")
		return 0, true
	case ".btree":
		r.printBTree()
	case ".constants":
		r.printConstants()
	default:
		fmt.Printf("Unexpected Input: '%s'\n", line)
	}
	return 0, false
}

func (r *REPL) printBTree() {
	page := r.table.RootPage()
	numCells := storage.LeafNumCells(page)

	fmt.Println("Tree :")
	fmt.Printf("Leaf (Size : %d)\n", numCells)
	for i := uint32(0); i < numCells; i++ {
		fmt.Printf("  - %d : %d\n", i, storage.LeafKey(page, i))
	}
}

func (r *REPL) printConstants() {
	fmt.Printf("ROW_SIZE : %d\n", storage.RowSize)
	fmt.Printf("COMMON_NODE_HEADER_SIZE : %d\n", storage.CommonNodeHeaderSize)
	fmt.Printf("LEAF_NODE_HEADER_SIZE : %d\n", storage.LeafNodeHeaderSize)
	fmt.Printf("LEAF_NODE_CELL_SIZE : %d\n", storage.LeafNodeCellSize)
	fmt.Printf("LEAF_NODE_SPACE_FOR_CELLS : %d\n", storage.LeafNodeSpaceForCells)
	fmt.Printf("LEAF_NODE_MAX_CELLS : %d\n", storage.LeafNodeMaxCells)
}

// dispatchStatement parses and executes one non-meta line, recovering a
// storage.FatalError panic at this boundary and converting it into a
// process exit, matching the source's abort-on-I/O-failure semantics.
func (r *REPL) dispatchStatement(line string) {
	defer func() {
		if err := storage.Recover(recover()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()

	cmd, err := parser.Parse(line)
	if err != nil {
		printParseError(err, line)
		return
	}

	res, err := r.exec.Execute(cmd)
	if err != nil {
		if errors.Is(err, executor.ErrTableFull) {
			fmt.Println("Error: Table full.")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if res != nil {
		for _, row := range res.Rows {
			fmt.Printf("ID: %d, Username: %s, Email: %s\n", row.ID, row.Username, row.Email)
		}
	}
	fmt.Println("Executed")
}

func printParseError(err error, line string) {
	switch {
	case errors.Is(err, parser.ErrNegativeID):
		fmt.Println("Negative ID. Could not insert.")
	case errors.Is(err, parser.ErrStringTooLong):
		fmt.Println("String too long. Could not insert.")
	case errors.Is(err, parser.ErrUnrecognized):
		fmt.Printf("Unrecognized keyword in '%s'\n", line)
	default:
		fmt.Println("Syntax error. Could not parse command.")
	}
}
