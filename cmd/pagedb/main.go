// Command pagedb is the SQLite-tutorial-style REPL: one positional
// argument (the database file), a prompt, and two statements.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dbcore/pagedb/internal/config"
	"github.com/dbcore/pagedb/internal/repl"
	"github.com/dbcore/pagedb/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	var (
		historyPath = flag.String("history", repl.DefaultHistoryPath(), "history file path")
		historyMax  = flag.Int("history-max", 2000, "max history lines loaded into memory")
		configPath  = flag.String("config", "", "optional YAML config path")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Must provide a DB filename.")
		return 1
	}
	dbFilename := flag.Arg(0)

	cfg := config.Default(*historyPath)
	cfg.History.Max = *historyMax
	if *configPath != "" {
		loaded, err := config.Load(*configPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	configureLogging(cfg.Log.Level)

	defer func() {
		if err := storage.Recover(recover()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
		}
	}()

	table := storage.OpenTable(dbFilename)

	r, err := repl.New(table, cfg.History.Path, cfg.History.Max)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		table.Close()
		return 1
	}
	defer r.Close()

	return r.Run()
}

func configureLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
