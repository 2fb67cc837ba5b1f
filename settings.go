package podnote

import (
	"sort"
	"strconv"
)

// Settings keys as persisted and as accepted by Settings.Set.
const (
	SettingPodcastTemplate = "podcastTemplate"
	SettingNewNote         = "newNote"
	SettingFileName        = "fileName"
)

// DefaultPodcastTemplate is the note template used until the user sets one.
const DefaultPodcastTemplate = "# {{Title}} \n {{Image}} \n ## Description: \n {{Description}} \n ## Notes: \n"

// Settings holds the user's rendering and delivery preferences.
// A Settings value is passed explicitly to each capture; nothing in the
// core reads it from package state.
type Settings struct {
	// PodcastTemplate is the note body template.
	PodcastTemplate string `yaml:"podcastTemplate" json:"podcastTemplate"`

	// NewNote selects note creation instead of insertion at the cursor.
	NewNote bool `yaml:"newNote" json:"newNote"`

	// FileName is the file name template used when NewNote is set.
	FileName string `yaml:"fileName" json:"fileName"`
}

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() *Settings {
	return &Settings{
		PodcastTemplate: DefaultPodcastTemplate,
		NewNote:         false,
		FileName:        "",
	}
}

// Get returns the string form of the setting named key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case SettingPodcastTemplate:
		return s.PodcastTemplate, nil
	case SettingNewNote:
		return strconv.FormatBool(s.NewNote), nil
	case SettingFileName:
		return s.FileName, nil
	}
	return "", Errorf(ENOTFOUND, "unknown setting %q", key)
}

// Set updates the setting named key from its string form.
func (s *Settings) Set(key, value string) error {
	switch key {
	case SettingPodcastTemplate:
		s.PodcastTemplate = value
	case SettingNewNote:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return Errorf(EINVALID, "setting %q expects true or false, got %q", key, value)
		}
		s.NewNote = b
	case SettingFileName:
		s.FileName = value
	default:
		return Errorf(ENOTFOUND, "unknown setting %q", key)
	}
	return nil
}

// SettingKeys returns every settings key in sorted order.
func SettingKeys() []string {
	keys := []string{SettingPodcastTemplate, SettingNewNote, SettingFileName}
	sort.Strings(keys)
	return keys
}

// SettingsStore loads and persists settings.
type SettingsStore interface {
	// Load returns the saved settings merged over DefaultSettings.
	// A store with nothing saved returns DefaultSettings.
	Load() (*Settings, error)

	// Save persists s, replacing what was saved before.
	Save(s *Settings) error
}

// UpdateSettings loads settings from store, applies fn, and saves the result.
// Nothing is saved if fn returns an error.
func UpdateSettings(store SettingsStore, fn func(s *Settings) error) (*Settings, error) {
	s, err := store.Load()
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := store.Save(s); err != nil {
		return nil, err
	}
	return s, nil
}
