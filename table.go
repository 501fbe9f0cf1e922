package main

import (
	"os"

	"github.com/pkg/errors"
)

const (
	rowsPerPage  = pageSize / rowSize          // 14
	tableMaxRows = rowsPerPage * tableMaxPages // 1400
)

// Table binds a row count to a pager and maps row numbers to page
// locations. Row r lives in page r/rowsPerPage at byte offset
// (r%rowsPerPage)*rowSize; rows are numbered densely with no holes.
type Table struct {
	numRows uint32
	pager   *Pager
}

// Open constructs a table over path, recovering numRows from the file's
// byte length as Close lays the file out: each whole page holds
// rowsPerPage rows, and a trailing partial page holds one row per rowSize
// bytes. Trailing bytes too few to form a row are ignored, so a file that
// violates that layout is silently truncated to the row count the length
// implies.
func Open(path string) (*Table, error) {
	pager, err := openPager(path)
	if err != nil {
		return nil, err
	}

	fullPages := pager.fileLength / pageSize
	remRows := (pager.fileLength % pageSize) / rowSize
	return &Table{
		numRows: uint32(fullPages*rowsPerPage + remRows),
		pager:   pager,
	}, nil
}

// OpenFresh deletes path if it exists, then opens a new table over it.
// Used by test fixtures that need a guaranteed-empty starting file.
func OpenFresh(path string) (*Table, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "remove existing file %q", path)
	}
	return Open(path)
}

// locate materializes the page holding rowNum and returns its page index
// and the byte offset of the row's slot within that page.
func (t *Table) locate(rowNum uint32) (pageNum uint32, offset int, err error) {
	pageNum = rowNum / rowsPerPage
	if err := t.pager.allocatePage(pageNum); err != nil {
		return 0, 0, err
	}
	offset = int(rowNum%rowsPerPage) * rowSize
	return pageNum, offset, nil
}

// NumRows reports the table's current row count.
func (t *Table) NumRows() uint32 {
	return t.numRows
}

// Close flushes every materialized page known to hold a live row, then
// closes the backing file. This is the table's sole flush point and must
// run on every normal shutdown path. Whole pages are written in full,
// padding included, and a trailing partial page only up to its last row:
// after it, the file's length is (numRows/rowsPerPage)*pageSize +
// (numRows%rowsPerPage)*rowSize (numRows*rowSize while the table holds
// fewer than rowsPerPage rows), which is exactly what Open will recover.
//
// Unmaterialized pages are not flushed — they were never modified, so the
// bytes already on disk (if any) remain authoritative.
func (t *Table) Close() error {
	full := t.numRows / rowsPerPage
	for pageNum := uint32(0); pageNum < full; pageNum++ {
		if t.pager.pages[pageNum] == nil {
			continue
		}
		if err := t.pager.flush(pageNum, pageSize); err != nil {
			return err
		}
	}

	if rem := t.numRows % rowsPerPage; rem > 0 && t.pager.pages[full] != nil {
		if err := t.pager.flush(full, int(rem)*rowSize); err != nil {
			return err
		}
	}

	return t.pager.close()
}
