package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	easysql "github.com/koustreak/EasySQL"
)

var replCommands = []string{".help", ".tables", ".quit", ".exit", ".clear"}

type repl struct {
	db          *easysql.SQL
	line        *liner.State
	historyPath string
}

func newRepl(db *easysql.SQL) *repl {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, cmd := range replCommands {
			if strings.HasPrefix(cmd, prefix) {
				out = append(out, cmd)
			}
		}
		return out
	})

	r := &repl{
		db:          db,
		line:        line,
		historyPath: filepath.Join(os.TempDir(), ".easysql_history"),
	}
	r.loadHistory()
	return r
}

func (r *repl) close() {
	r.saveHistory()
	_ = r.line.Close()
}

func (r *repl) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		input, err := r.line.Prompt("easysql> ")
		if err != nil {
			// CTRL+C or CTRL+D.
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.line.AppendHistory(input)

		switch input {
		case ".quit", ".exit", "exit":
			return
		case ".help", "help":
			r.printHelp()
			continue
		case ".clear", "clear":
			fmt.Print("\033[2J\033[H")
			continue
		case ".tables":
			r.execute(ctx, tablesQuery(r.db.Dialect()))
			continue
		}

		if strings.HasPrefix(input, ".") {
			fmt.Println("Unknown command, type .help for usage hints")
			continue
		}

		r.execute(ctx, input)
	}
}

func (r *repl) execute(ctx context.Context, sql string) {
	res, err := r.db.Execute(ctx, sql, nil)
	if err != nil {
		color.Red("%v", err)
		return
	}
	renderResult(res)
}

func (r *repl) printHelp() {
	fmt.Println("Enter any SQL statement terminated by ENTER, or one of:")
	fmt.Println("  .tables   list tables")
	fmt.Println("  .clear    clear the screen")
	fmt.Println("  .help     show this help")
	fmt.Println("  .quit     exit the shell")
}

func (r *repl) loadHistory() {
	file, err := os.Open(r.historyPath)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = r.line.ReadHistory(file)
}

func (r *repl) saveHistory() {
	file, err := os.Create(r.historyPath)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = r.line.WriteHistory(file)
}

// tablesQuery returns the dialect-specific query behind the .tables command.
func tablesQuery(dialect string) string {
	switch dialect {
	case "postgres":
		return `SELECT table_name FROM information_schema.tables
			WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
			ORDER BY table_name`
	case "mysql":
		return `SELECT table_name FROM information_schema.tables
			WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
			ORDER BY table_name`
	default:
		return `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`
	}
}
