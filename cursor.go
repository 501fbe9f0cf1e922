package main

// Cursor is a movable position over a table: start, end, advance, and an
// end-of-table predicate. It is the only way the executor names rows. A
// cursor holds a transient exclusive reference to its table — at most one
// exists at a time — and there is no rewind; re-scanning means
// constructing a fresh cursor.
type Cursor struct {
	table      *Table
	rowNum     uint32
	endOfTable bool
}

// newCursorAtStart returns a cursor positioned at row 0.
func newCursorAtStart(table *Table) *Cursor {
	return &Cursor{
		table:      table,
		rowNum:     0,
		endOfTable: table.numRows == 0,
	}
}

// newCursorAtEnd returns a cursor positioned one past the last row — the
// append position Insert uses to find a slot for a new row.
func newCursorAtEnd(table *Table) *Cursor {
	return &Cursor{
		table:      table,
		rowNum:     table.numRows,
		endOfTable: true,
	}
}

// Advance moves the cursor to the next row.
func (c *Cursor) Advance() {
	c.rowNum++
	c.endOfTable = c.rowNum == c.table.numRows
}

// IsEndOfTable reports whether the cursor has moved past the last row.
func (c *Cursor) IsEndOfTable() bool {
	return c.endOfTable
}

// locate materializes and returns the page/offset the cursor currently
// points to. Calling it on an end-of-table cursor is defined and is how
// Insert finds the slot for the row it's about to write.
func (c *Cursor) locate() (pageNum uint32, offset int, err error) {
	return c.table.locate(c.rowNum)
}
