package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/podnote"
)

var (
	_ podnote.CursorInserter = (*WriterInserter)(nil)
	_ podnote.Notifier       = (*WriterNotifier)(nil)
)

// WriterInserter treats a writer as a document whose cursor is always at
// the end. Used when no document file is given.
type WriterInserter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterInserter creates a WriterInserter writing to w.
func NewWriterInserter(w io.Writer) *WriterInserter {
	return &WriterInserter{w: w}
}

// InsertAtCursor writes text exactly as rendered.
func (i *WriterInserter) InsertAtCursor(ctx context.Context, text string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, err := io.WriteString(i.w, text)
	return err
}

// WriterNotifier prints notices, one per line.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a WriterNotifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify prints msg.
func (n *WriterNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, msg)
}

// SyncWriter serializes writes to an underlying writer. Notices, error lines
// and log records from concurrent captures share one SyncWriter per stream.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter wraps w.
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
