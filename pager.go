package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	pageSize      = 4096
	tableMaxPages = 100
)

// Pager owns the backing file and a fixed-capacity cache of page buffers.
// A slot is nil until the page is first touched, at which point it is
// zero-filled and overlaid with whatever bytes the file holds for that page
// (none for a page past the end of the file).
type Pager struct {
	file       *os.File
	fileLength int64
	pages      [tableMaxPages][]byte
}

// openPager opens path for read+write, creating it if absent, and records
// its current length for allocatePage's lazy-load decision.
func openPager(path string) (*Pager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open page file %q", path)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat page file %q", path)
	}

	return &Pager{file: f, fileLength: info.Size()}, nil
}

// allocatePage idempotently materializes page pageNum: a no-op if already
// present, otherwise a zeroed buffer overlaid with whatever the file holds
// at that page's byte range. A short trailing page is tolerated — bytes
// past what the file actually contains stay zero.
func (p *Pager) allocatePage(pageNum uint32) error {
	if pageNum >= tableMaxPages {
		return fmt.Errorf("page number %d out of bounds", pageNum)
	}
	if p.pages[pageNum] != nil {
		return nil
	}

	buf := make([]byte, pageSize)

	numPages := uint32(p.fileLength / pageSize)
	if p.fileLength%pageSize != 0 {
		numPages++
	}

	if pageNum < numPages {
		if _, err := p.file.ReadAt(buf, int64(pageNum)*pageSize); err != nil && err != io.EOF {
			return errors.Wrapf(err, "read page %d", pageNum)
		}
	}

	p.pages[pageNum] = buf
	return nil
}

// flush writes the first size bytes of page pageNum back to the file at
// its canonical offset. The page must already be materialized.
func (p *Pager) flush(pageNum uint32, size int) error {
	if p.pages[pageNum] == nil {
		return fmt.Errorf("flush: page %d not materialized", pageNum)
	}
	if size <= 0 || size > pageSize {
		return fmt.Errorf("flush: invalid size %d for page %d", size, pageNum)
	}

	if _, err := p.file.WriteAt(p.pages[pageNum][:size], int64(pageNum)*pageSize); err != nil {
		return errors.Wrapf(err, "write page %d", pageNum)
	}
	return nil
}

func (p *Pager) close() error {
	if err := p.file.Close(); err != nil {
		return errors.Wrap(err, "close page file")
	}
	return nil
}
