package main

import "errors"

// ErrTableFull is the only recoverable error the executor returns: the
// table already holds tableMaxRows rows and cannot accept another insert.
var ErrTableFull = errors.New("table is full")

// Execute dispatches a parsed statement against table. Insert appends via
// an end-cursor; Select scans via a start-cursor and prints one line per
// row in insertion order.
func Execute(stmt statement, table *Table) error {
	switch stmt.kind {
	case statementInsert:
		return executeInsert(stmt, table)
	case statementSelect:
		return executeSelect(table)
	default:
		return errors.New("unrecognized statement")
	}
}

func executeInsert(stmt statement, table *Table) error {
	if table.numRows >= tableMaxRows {
		return ErrTableFull
	}

	cursor := newCursorAtEnd(table)
	pageNum, offset, err := cursor.locate()
	if err != nil {
		return err
	}

	if err := serializeRow(&stmt.row, table.pager.pages[pageNum], offset); err != nil {
		return err
	}
	table.numRows++
	return nil
}

func executeSelect(table *Table) error {
	cursor := newCursorAtStart(table)
	for !cursor.IsEndOfTable() {
		pageNum, offset, err := cursor.locate()
		if err != nil {
			return err
		}

		row := deserializeRow(table.pager.pages[pageNum], offset)
		printRow(&row)
		cursor.Advance()
	}
	return nil
}
