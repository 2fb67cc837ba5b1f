package podnote

import "time"

// DateLayout formats the {{Date}} placeholder of a note: DD-MM-YYYY HH:MM.
const DateLayout = "02-01-2006 15:04"

// Open Graph properties read from an episode page.
const (
	PropertyTitle       = "og:title"
	PropertyDescription = "og:description"
	PropertyImage       = "og:image"
)

// PodcastMetadata describes an episode extracted from its page.
type PodcastMetadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"` // Markdown image reference, ![](url)
	SourceURL   string    `json:"sourceUrl"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the metadata lacks its page source or time.
// Title, description and image may legitimately hold empty content.
func (m *PodcastMetadata) Validate() error {
	if m.SourceURL == "" {
		return Errorf(EINVALID, "episode source URL required")
	}
	if m.FetchedAt.IsZero() {
		return Errorf(EINVALID, "episode fetch time required")
	}
	return nil
}

// Date returns FetchedAt formatted with DateLayout in local time.
func (m *PodcastMetadata) Date() string {
	return m.FetchedAt.Local().Format(DateLayout)
}

// Link returns a markdown link back to the episode page.
func (m *PodcastMetadata) Link() string {
	return "[-> Podcast](" + m.SourceURL + ")"
}

// MarkdownImage wraps an image URL into a markdown image reference.
func MarkdownImage(url string) string {
	return "![](" + url + ")"
}

// Extractor reads episode metadata from a fetched page.
type Extractor interface {
	// Extract parses html and returns metadata for the page at sourceURL.
	// Returns EMETADATAMISSING if any required Open Graph tag is absent.
	Extract(html string, sourceURL string) (*PodcastMetadata, error)
}
