package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/podnote"
)

// Ensure CursorInserter implements podnote.CursorInserter at compile time.
var _ podnote.CursorInserter = (*CursorInserter)(nil)

// Cursor is a zero-based position in a document.
// Ch counts runes from the start of the line.
type Cursor struct {
	Line int
	Ch   int
}

// CursorInserter inserts text into a file at a cursor position.
// Positions past the end of a line or of the file are clamped to it.
// Insertions through one CursorInserter are serialized.
type CursorInserter struct {
	mu     sync.Mutex
	path   string
	cursor Cursor
}

// NewCursorInserter creates a CursorInserter for the file at path.
func NewCursorInserter(path string, cursor Cursor) *CursorInserter {
	return &CursorInserter{path: path, cursor: cursor}
}

// InsertAtCursor inserts text at the cursor without replacing anything.
// Returns ENOTFOUND if the file does not exist.
func (i *CursorInserter) InsertAtCursor(ctx context.Context, text string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	info, err := os.Stat(i.path)
	if errors.Is(err, os.ErrNotExist) {
		return podnote.Errorf(podnote.ENOTFOUND, "document %q not found", i.path)
	} else if err != nil {
		return err
	}

	data, err := os.ReadFile(i.path)
	if err != nil {
		return err
	}

	doc := string(data)
	offset := Offset(doc, i.cursor)
	updated := doc[:offset] + text + doc[offset:]

	return writeFileAtomic(i.path, []byte(updated), info.Mode().Perm())
}

// Offset returns the byte offset of cursor in doc, clamped to doc.
func Offset(doc string, cursor Cursor) int {
	if cursor.Line < 0 {
		return 0
	}

	offset := 0
	for line := 0; line < cursor.Line; line++ {
		idx := strings.IndexByte(doc[offset:], '\n')
		if idx < 0 {
			return len(doc)
		}
		offset += idx + 1
	}

	end := len(doc)
	if idx := strings.IndexByte(doc[offset:], '\n'); idx >= 0 {
		end = offset + idx
	}

	if cursor.Ch <= 0 {
		return offset
	}

	ch := 0
	for pos := range doc[offset:end] {
		if ch == cursor.Ch {
			return offset + pos
		}
		ch++
	}
	return end
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
