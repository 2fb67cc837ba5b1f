// Package goquery implements podnote.Extractor by reading Open Graph
// meta tags with goquery.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/podnote"
)

// Ensure Extractor implements podnote.Extractor at compile time.
var _ podnote.Extractor = (*Extractor)(nil)

// Extractor reads og:title, og:description and og:image from a page.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the function used to stamp FetchedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the episode metadata.
// All three tags must be present with a content attribute; otherwise no
// metadata is returned and the error code is EMETADATAMISSING.
func (e *Extractor) Extract(html string, sourceURL string) (*podnote.PodcastMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, podnote.WrapError(podnote.EMETADATAMISSING, err, "failed to parse HTML")
	}

	title, err := openGraph(doc, podnote.PropertyTitle)
	if err != nil {
		return nil, err
	}
	description, err := openGraph(doc, podnote.PropertyDescription)
	if err != nil {
		return nil, err
	}
	image, err := openGraph(doc, podnote.PropertyImage)
	if err != nil {
		return nil, err
	}

	return &podnote.PodcastMetadata{
		Title:       title,
		Description: description,
		ImageURL:    podnote.MarkdownImage(image),
		SourceURL:   sourceURL,
		FetchedAt:   e.now(),
	}, nil
}

// openGraph returns the content of the first meta element whose property
// attribute equals property.
func openGraph(doc *goquery.Document, property string) (string, error) {
	sel := doc.Find(`meta[property="` + property + `"]`).First()
	if sel.Length() == 0 {
		return "", podnote.Errorf(podnote.EMETADATAMISSING, "missing %s", property)
	}
	content, ok := sel.Attr("content")
	if !ok {
		return "", podnote.Errorf(podnote.EMETADATAMISSING, "%s has no content", property)
	}
	return content, nil
}
