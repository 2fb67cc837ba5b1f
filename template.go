package podnote

import (
	"strconv"
	"strings"
	"time"
)

// Template placeholders.
const (
	PlaceholderTitle       = "{{Title}}"
	PlaceholderImage       = "{{Image}}"
	PlaceholderDescription = "{{Description}}"
	PlaceholderDate        = "{{Date}}"
	PlaceholderLink        = "{{Link}}"
)

// ReplaceFirst replaces only the first occurrence of placeholder in s.
//
// Every placeholder substitution goes through this function, so a template
// that repeats a placeholder keeps the later copies literally. Existing
// user templates depend on this; switching to strings.ReplaceAll here is
// the single change needed to substitute globally.
func ReplaceFirst(s, placeholder, value string) string {
	return strings.Replace(s, placeholder, value, 1)
}

// RenderNote substitutes the note placeholders in template with values from m.
// Unknown tokens are left untouched.
func RenderNote(template string, m *PodcastMetadata) string {
	out := template
	out = ReplaceFirst(out, PlaceholderTitle, m.Title)
	out = ReplaceFirst(out, PlaceholderImage, m.ImageURL)
	out = ReplaceFirst(out, PlaceholderDescription, m.Description)
	out = ReplaceFirst(out, PlaceholderDate, m.Date())
	out = ReplaceFirst(out, PlaceholderLink, m.Link())
	return out
}

// RenderFileName substitutes {{Title}} and {{Date}} in template and strips
// characters that are unsafe in file names. Unlike RenderNote, {{Date}}
// becomes now in Unix milliseconds.
func RenderFileName(template, title string, now time.Time) string {
	out := ReplaceFirst(template, PlaceholderTitle, title)
	out = ReplaceFirst(out, PlaceholderDate, strconv.FormatInt(now.UnixMilli(), 10))
	return SanitizeFileName(out)
}

var fileNameReplacer = strings.NewReplacer("/", "", `\`, "", ":", "")

// SanitizeFileName removes every '/', '\' and ':' from name.
func SanitizeFileName(name string) string {
	return fileNameReplacer.Replace(name)
}
