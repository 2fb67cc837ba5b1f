package podnote_test

import (
	"testing"
	"time"

	"github.com/fwojciec/podnote"
	"github.com/stretchr/testify/assert"
)

func TestReplaceFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "X and {{Title}}", podnote.ReplaceFirst("{{Title}} and {{Title}}", "{{Title}}", "X"))
	assert.Equal(t, "no tokens", podnote.ReplaceFirst("no tokens", "{{Title}}", "X"))
}

func TestRenderNote(t *testing.T) {
	t.Parallel()

	fetchedAt := time.Date(2024, time.March, 5, 7, 9, 0, 0, time.Local)
	meta := &podnote.PodcastMetadata{
		Title:       "Pod",
		Description: "D",
		ImageURL:    "![](http://img)",
		SourceURL:   "https://open.spotify.com/episode/123",
		FetchedAt:   fetchedAt,
	}

	t.Run("substitutes all placeholders", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderNote("# {{Title}}\n{{Image}}\n{{Description}}\n{{Link}}", meta)

		assert.Equal(t, "# Pod\n![](http://img)\nD\n[-> Podcast](https://open.spotify.com/episode/123)", got)
	})

	t.Run("formats date as day-month-year hour-minute", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderNote("added {{Date}}", meta)

		assert.Equal(t, "added 05-03-2024 07:09", got)
	})

	t.Run("replaces only the first occurrence", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderNote("{{Title}} and {{Title}}", &podnote.PodcastMetadata{Title: "X"})

		assert.Equal(t, "X and {{Title}}", got)
	})

	t.Run("returns template without placeholders unchanged", func(t *testing.T) {
		t.Parallel()

		tmpl := "# Notes\n\nnothing to see {{ Title }} {Title}"

		assert.Equal(t, tmpl, podnote.RenderNote(tmpl, meta))
	})

	t.Run("leaves unknown placeholders untouched", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderNote("{{Author}} - {{Title}}", meta)

		assert.Equal(t, "{{Author}} - Pod", got)
	})

	t.Run("renders default template", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderNote(podnote.DefaultSettings().PodcastTemplate, meta)

		assert.Equal(t, "# Pod \n ![](http://img) \n ## Description: \n D \n ## Notes: \n", got)
	})
}

func TestRenderFileName(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000123)

	t.Run("substitutes title and millisecond timestamp", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderFileName("{{Title}} {{Date}}", "Episode", now)

		assert.Equal(t, "Episode 1700000000123", got)
	})

	t.Run("strips unsafe characters from title", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderFileName("{{Title}}", "Ep: 1/2\\3", now)

		assert.Equal(t, "Ep 123", got)
	})

	t.Run("replaces only the first occurrence", func(t *testing.T) {
		t.Parallel()

		got := podnote.RenderFileName("{{Title}}-{{Title}}", "A", now)

		assert.Equal(t, "A-{{Title}}", got)
	})
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Ep: 1/2\\3", want: "Ep 123"},
		{in: "a:b:c:d", want: "abcd"},
		{in: "//\\\\", want: ""},
		{in: "plain name", want: "plain name"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, podnote.SanitizeFileName(tt.in), tt.in)
	}
}
