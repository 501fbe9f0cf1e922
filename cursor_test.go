package main

import (
	"path/filepath"
	"testing"
)

func TestCursorStartOnEmptyTableIsEndOfTable(t *testing.T) {
	table, err := OpenFresh(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatal(err)
	}

	cursor := newCursorAtStart(table)
	if !cursor.IsEndOfTable() {
		t.Error("cursor at start of empty table should be end-of-table")
	}
}

func TestCursorStartOnNonEmptyTableIsNotEndOfTable(t *testing.T) {
	table, err := OpenFresh(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatal(err)
	}
	insertRow(t, table, Row{ID: 1, Username: "a", Email: "a@x"})

	cursor := newCursorAtStart(table)
	if cursor.IsEndOfTable() {
		t.Error("cursor at start of non-empty table should not be end-of-table")
	}
}

func TestCursorEndIsAlwaysEndOfTable(t *testing.T) {
	table, err := OpenFresh(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatal(err)
	}
	insertRow(t, table, Row{ID: 1, Username: "a", Email: "a@x"})

	cursor := newCursorAtEnd(table)
	if !cursor.IsEndOfTable() {
		t.Error("end cursor should be end-of-table")
	}
}

func TestCursorAdvanceReachesEndOfTable(t *testing.T) {
	table, err := OpenFresh(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		insertRow(t, table, Row{ID: uint32(i), Username: "u", Email: "e"})
	}

	cursor := newCursorAtStart(table)
	count := 0
	for !cursor.IsEndOfTable() {
		count++
		cursor.Advance()
	}
	if count != 3 {
		t.Errorf("visited %d rows, want 3", count)
	}
	if !cursor.IsEndOfTable() {
		t.Error("cursor should be end-of-table after scanning all rows")
	}
}

func TestCursorLocateOnEndCursorIsDefined(t *testing.T) {
	table, err := OpenFresh(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatal(err)
	}
	insertRow(t, table, Row{ID: 1, Username: "a", Email: "a@x"})

	cursor := newCursorAtEnd(table)
	pageNum, offset, err := cursor.locate()
	if err != nil {
		t.Fatal(err)
	}
	if pageNum != 0 || offset != rowSize {
		t.Errorf("locate() = (%d, %d), want (0, %d)", pageNum, offset, rowSize)
	}
}
