package main

import (
	"fmt"
	"os"
)

// executeMetaCommand handles a dot-prefixed line. Unknown meta-commands
// surface an error without terminating the shell.
func executeMetaCommand(input string, table *Table) error {
	switch input {
	case ".exit":
		if err := table.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
			os.Exit(1)
		}
		fmt.Println("Bye!")
		os.Exit(0)
		return nil
	case ".help":
		fmt.Println("Available commands: .exit, .size, .help, .constants")
	case ".size":
		fmt.Printf("%d row(s)\n", table.NumRows())
	case ".constants":
		printConstants()
	default:
		return fmt.Errorf("unrecognized command %q", input)
	}
	return nil
}

func printConstants() {
	fmt.Printf("ROW_SIZE: %d\n", rowSize)
	fmt.Printf("PAGE_SIZE: %d\n", pageSize)
	fmt.Printf("ROWS_PER_PAGE: %d\n", rowsPerPage)
	fmt.Printf("TABLE_MAX_PAGES: %d\n", tableMaxPages)
	fmt.Printf("TABLE_MAX_ROWS: %d\n", tableMaxRows)
}

func printRow(row *Row) {
	fmt.Printf("(%d, %s, %s)\n", row.ID, row.Username, row.Email)
}
