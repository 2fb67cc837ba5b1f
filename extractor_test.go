package podnote_test

import (
	"testing"
	"time"

	"github.com/fwojciec/podnote"
	"github.com/stretchr/testify/assert"
)

func TestPodcastMetadata_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete metadata", func(t *testing.T) {
		t.Parallel()

		m := &podnote.PodcastMetadata{SourceURL: "https://open.spotify.com/episode/1", FetchedAt: time.Now()}

		assert.NoError(t, m.Validate())
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		m := &podnote.PodcastMetadata{FetchedAt: time.Now()}

		assert.Equal(t, podnote.EINVALID, podnote.ErrorCode(m.Validate()))
	})

	t.Run("requires fetch time", func(t *testing.T) {
		t.Parallel()

		m := &podnote.PodcastMetadata{SourceURL: "https://open.spotify.com/episode/1"}

		assert.Equal(t, podnote.EINVALID, podnote.ErrorCode(m.Validate()))
	})
}

func TestPodcastMetadata_Date(t *testing.T) {
	t.Parallel()

	m := &podnote.PodcastMetadata{FetchedAt: time.Date(2023, time.December, 31, 23, 5, 59, 0, time.Local)}

	assert.Equal(t, "31-12-2023 23:05", m.Date())
}

func TestPodcastMetadata_Link(t *testing.T) {
	t.Parallel()

	m := &podnote.PodcastMetadata{SourceURL: "https://podcasts.apple.com/us/podcast/x"}

	assert.Equal(t, "[-> Podcast](https://podcasts.apple.com/us/podcast/x)", m.Link())
}

func TestMarkdownImage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "![](http://x/i.png)", podnote.MarkdownImage("http://x/i.png"))
}
