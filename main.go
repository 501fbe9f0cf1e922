package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
)

const version = "0.1.0"

var cli struct {
	DatabaseFile string `arg:"" name:"database_file" help:"Path to the database file." default:"pagedb.db"`
	Script       string `help:"Replay newline-separated commands from this file, then exit." type:"path"`
	Version      bool   `help:"Print version and exit." short:"v"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pagedb"),
		kong.Description("A minimal single-table SQL-like store with an interactive shell."),
	)

	if cli.Version {
		fmt.Printf("pagedb v%s\n", version)
		ctx.Exit(0)
	}

	table, err := Open(cli.DatabaseFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
		os.Exit(1)
	}

	if cli.Script != "" {
		runScript(cli.Script, table)
		return
	}

	runInteractive(table)
}

// runInteractive drives the read-eval loop against stdin. End-of-input
// (EOF, or a Ctrl-D) is a normal shutdown path: the table is closed before
// returning, same as an explicit .exit.
func runInteractive(table *Table) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("pagedb> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if closeErr := table.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "fatal: %s\n", closeErr)
				os.Exit(1)
			}
			return
		}

		dispatch(strings.TrimRight(line, "\r\n"), table)
	}
}

// runScript replays path's lines through the same dispatch loop as
// interactive input, then closes the table and returns. Exists so the
// binary has a scriptable, non-interactive entry point.
func runScript(path string, table *Table) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		dispatch(scanner.Text(), table)
	}

	if err := table.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
		os.Exit(1)
	}
}

// dispatch routes one line of input either to the meta-command handler or
// to the parse-then-execute pipeline.
func dispatch(line string, table *Table) {
	if strings.TrimSpace(line) == "" {
		return
	}

	if line[0] == '.' {
		if err := executeMetaCommand(line, table); err != nil {
			fmt.Println(err)
		}
		return
	}

	stmt, err := prepareStatement(line)
	if err != nil {
		fmt.Printf("%s.\n", err)
		return
	}

	if err := Execute(stmt, table); err != nil {
		if err != ErrTableFull {
			fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Error: %s.\n", err)
		return
	}
	fmt.Println("Executed.")
}
