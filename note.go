package podnote

import "context"

// NoteExtension is appended to rendered file names of new notes.
const NoteExtension = ".md"

// CursorInserter inserts text at the cursor of the active document.
// The insertion point is wherever the host reports the cursor at call
// time; existing text is never replaced.
type CursorInserter interface {
	InsertAtCursor(ctx context.Context, text string) error
}

// NoteCreator creates a new document. Name collisions are resolved by the
// implementation.
type NoteCreator interface {
	CreateNote(ctx context.Context, name string, content string) error
}

// Dispatch delivers a rendered note to exactly one sink chosen by
// s.NewNote. fileName is the rendered file name without extension and is
// ignored when inserting at the cursor.
func Dispatch(ctx context.Context, s *Settings, note, fileName string, inserter CursorInserter, creator NoteCreator) error {
	if s.NewNote {
		return creator.CreateNote(ctx, fileName+NoteExtension, note)
	}
	return inserter.InsertAtCursor(ctx, note)
}

// User-visible notices.
const (
	NoticeLoading    = "Loading Podcast Info"
	NoticeInvalidURL = "This is not a valid URL"
	NoticeIncomplete = "The URL is invalid or incomplete"
)

// Notifier shows transient status messages to the user.
type Notifier interface {
	Notify(msg string)
}
