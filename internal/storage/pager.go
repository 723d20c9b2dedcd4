package storage

import (
	"errors"
	"io"
	"os"
	"sync"
)

const (
	// PageSize is the fixed size of every page, in bytes.
	PageSize = 4096
	// TableMaxPages bounds the number of page slots the pager will ever
	// materialize for a single table.
	TableMaxPages = 100
)

// Pager owns the database file descriptor and a fixed array of page
// slots. A page is loaded into its slot on first access and stays
// resident until Close flushes and frees it; there is no eviction.
type Pager struct {
	mu       sync.Mutex
	file     *os.File
	fileSize int64
	numPages uint32
	pages    [TableMaxPages][]byte
}

// OpenPager opens (creating if necessary) the database file at path and
// discovers its size. A file whose length is not a whole multiple of
// PageSize is treated as corrupt and is a fatal error, matching the
// tutorial's abort-on-corrupt-length behavior.
func OpenPager(path string) *Pager {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		fatalf("pager: unable to open file %q: %w", path, err)
	}

	fileSize, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		fatalf("pager: unable to seek to end of %q: %w", path, err)
	}
	if fileSize%PageSize != 0 {
		fatalf("pager: db file %q has corrupt length %d, not a multiple of page size", path, fileSize)
	}

	return &Pager{
		file:     f,
		fileSize: fileSize,
		numPages: uint32(fileSize / PageSize),
	}
}

// NumPages reports how many pages this pager has materialized or observed
// from the on-disk file length, whichever is greater.
func (p *Pager) NumPages() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.numPages
}

// GetPage returns the byte slice backing page pageNum, loading it from
// disk on first access. The returned slice is owned by the pager and
// must not be retained past the caller's current operation.
func (p *Pager) GetPage(pageNum uint32) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pageNum >= TableMaxPages {
		fatalf("pager: tried to fetch page out of bounds: %d >= %d", pageNum, TableMaxPages)
	}

	if p.pages[pageNum] == nil {
		buf := make([]byte, PageSize)

		numPagesOnDisk := uint32(p.fileSize / PageSize)
		if pageNum < numPagesOnDisk {
			if _, err := p.file.Seek(int64(pageNum)*PageSize, io.SeekStart); err != nil {
				fatalf("pager: unable to seek to page %d: %w", pageNum, err)
			}
			if _, err := io.ReadFull(p.file, buf); err != nil {
				fatalf("pager: unable to read page %d: %w", pageNum, err)
			}
		}
		p.pages[pageNum] = buf
	}

	if pageNum >= p.numPages {
		p.numPages = pageNum + 1
	}

	return p.pages[pageNum]
}

// Flush writes the slot for pageNum back to disk. Flushing a slot that
// was never materialized is a fatal error.
func (p *Pager) Flush(pageNum uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flushLocked(pageNum)
}

func (p *Pager) flushLocked(pageNum uint32) {
	if p.pages[pageNum] == nil {
		fatalf("pager: tried to flush unallocated page %d", pageNum)
	}
	if _, err := p.file.Seek(int64(pageNum)*PageSize, io.SeekStart); err != nil {
		fatalf("pager: unable to seek while flushing page %d: %w", pageNum, err)
	}
	if _, err := p.file.Write(p.pages[pageNum]); err != nil {
		fatalf("pager: unable to write page %d: %w", pageNum, err)
	}
}

// Close flushes every materialized page slot and closes the underlying
// file descriptor. Errors on close are fatal.
func (p *Pager) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := uint32(0); i < p.numPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		p.flushLocked(i)
		p.pages[i] = nil
	}

	if err := p.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		fatalf("pager: error closing db file: %w", err)
	}
}
