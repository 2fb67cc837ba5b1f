package mock

import (
	"context"

	"github.com/fwojciec/podnote"
)

var (
	_ podnote.CursorInserter = (*CursorInserter)(nil)
	_ podnote.NoteCreator    = (*NoteCreator)(nil)
	_ podnote.Notifier       = (*Notifier)(nil)
)

// CursorInserter is a mock implementation of podnote.CursorInserter.
type CursorInserter struct {
	InsertAtCursorFn func(ctx context.Context, text string) error
}

func (i *CursorInserter) InsertAtCursor(ctx context.Context, text string) error {
	return i.InsertAtCursorFn(ctx, text)
}

// NoteCreator is a mock implementation of podnote.NoteCreator.
type NoteCreator struct {
	CreateNoteFn func(ctx context.Context, name string, content string) error
}

func (c *NoteCreator) CreateNote(ctx context.Context, name string, content string) error {
	return c.CreateNoteFn(ctx, name, content)
}

// Notifier is a mock implementation of podnote.Notifier.
type Notifier struct {
	NotifyFn func(msg string)
}

func (n *Notifier) Notify(msg string) {
	n.NotifyFn(msg)
}
