package mock

import "github.com/fwojciec/podnote"

var _ podnote.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of podnote.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*podnote.PodcastMetadata, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*podnote.PodcastMetadata, error) {
	return e.ExtractFn(html, sourceURL)
}
