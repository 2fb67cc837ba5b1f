// Package capture runs the podcast note pipeline: host resolution, page
// fetch, metadata extraction, template rendering, and delivery.
package capture

import (
	"context"
	"time"

	"github.com/fwojciec/podnote"
)

// Capturer turns an episode URL into a note.
// Concurrent captures share no state; triggering the same URL twice
// produces two independent notes.
type Capturer struct {
	Fetcher   podnote.Fetcher
	Extractor podnote.Extractor
	Inserter  podnote.CursorInserter
	Creator   podnote.NoteCreator
	Notifier  podnote.Notifier

	// Now stamps file names. Defaults to time.Now.
	Now func() time.Time
}

// Capture runs the whole pipeline for rawURL using settings s.
//
// An unrecognized host is reported with NoticeInvalidURL and nothing is
// fetched. Network and metadata failures are both reported with
// NoticeIncomplete; the returned error keeps their distinct codes.
// Delivery errors are returned without a notice.
func (c *Capturer) Capture(ctx context.Context, rawURL string, s *podnote.Settings) error {
	host, path, err := podnote.ResolveHost(rawURL)
	if err != nil {
		c.notify(podnote.NoticeInvalidURL)
		return err
	}

	c.notify(podnote.NoticeLoading)

	meta, err := c.load(ctx, host, path, rawURL)
	if err != nil {
		c.notify(podnote.NoticeIncomplete)
		return err
	}

	note := podnote.RenderNote(s.PodcastTemplate, meta)
	var fileName string
	if s.NewNote {
		fileName = podnote.RenderFileName(s.FileName, meta.Title, c.now())
	}

	return podnote.Dispatch(ctx, s, note, fileName, c.Inserter, c.Creator)
}

// Start runs Capture on a new goroutine with a copy of s taken before
// returning. The returned channel receives exactly one value, the result
// of Capture, and is then closed.
func (c *Capturer) Start(ctx context.Context, rawURL string, s *podnote.Settings) <-chan error {
	snapshot := *s
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- c.Capture(ctx, rawURL, &snapshot)
	}()
	return done
}

func (c *Capturer) load(ctx context.Context, host podnote.Host, path, rawURL string) (*podnote.PodcastMetadata, error) {
	html, err := c.Fetcher.Fetch(ctx, podnote.NewFetchRequest(host, path))
	if err != nil {
		return nil, err
	}

	meta, err := c.Extractor.Extract(html, rawURL)
	if err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return meta, nil
}

func (c *Capturer) notify(msg string) {
	if c.Notifier != nil {
		c.Notifier.Notify(msg)
	}
}

func (c *Capturer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
