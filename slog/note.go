package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/podnote"
)

var (
	_ podnote.CursorInserter = (*LoggingInserter)(nil)
	_ podnote.NoteCreator    = (*LoggingCreator)(nil)
)

// LoggingInserter wraps a CursorInserter with logging.
type LoggingInserter struct {
	next   podnote.CursorInserter
	logger *slog.Logger
}

// NewLoggingInserter creates a new LoggingInserter.
func NewLoggingInserter(next podnote.CursorInserter, logger *slog.Logger) *LoggingInserter {
	return &LoggingInserter{next: next, logger: logger}
}

// InsertAtCursor delegates to the wrapped inserter and logs the outcome.
func (i *LoggingInserter) InsertAtCursor(ctx context.Context, text string) (err error) {
	defer func() {
		i.logger.Info("insert at cursor",
			"bytes", len(text),
			"err", err,
		)
	}()
	return i.next.InsertAtCursor(ctx, text)
}

// LoggingCreator wraps a NoteCreator with logging.
type LoggingCreator struct {
	next   podnote.NoteCreator
	logger *slog.Logger
}

// NewLoggingCreator creates a new LoggingCreator.
func NewLoggingCreator(next podnote.NoteCreator, logger *slog.Logger) *LoggingCreator {
	return &LoggingCreator{next: next, logger: logger}
}

// CreateNote delegates to the wrapped creator and logs the outcome.
func (c *LoggingCreator) CreateNote(ctx context.Context, name string, content string) (err error) {
	defer func() {
		c.logger.Info("create note",
			"name", name,
			"bytes", len(content),
			"err", err,
		)
	}()
	return c.next.CreateNote(ctx, name, content)
}
