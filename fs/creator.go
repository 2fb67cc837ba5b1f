// Package fs provides file-based note sinks.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/podnote"
)

// Ensure NoteCreator implements podnote.NoteCreator at compile time.
var _ podnote.NoteCreator = (*NoteCreator)(nil)

// NoteCreator writes new notes as files in a vault directory.
// Existing files are never overwritten.
type NoteCreator struct {
	dir string
}

// NewNoteCreator creates a NoteCreator that writes into dir.
func NewNoteCreator(dir string) *NoteCreator {
	return &NoteCreator{dir: dir}
}

// CreateNote writes content to a new file called name.
// Returns EEXISTS if the file already exists.
func (c *NoteCreator) CreateNote(ctx context.Context, name string, content string) error {
	if name == "" || filepath.Base(name) != name {
		return podnote.Errorf(podnote.EINVALID, "invalid note name %q", name)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(c.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return podnote.Errorf(podnote.EEXISTS, "note %q already exists", name)
	} else if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
