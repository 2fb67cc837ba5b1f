package podnote_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/podnote"
	"github.com/fwojciec/podnote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := podnote.DefaultSettings()

	assert.Equal(t, "# {{Title}} \n {{Image}} \n ## Description: \n {{Description}} \n ## Notes: \n", s.PodcastTemplate)
	assert.False(t, s.NewNote)
	assert.Empty(t, s.FileName)
}

func TestSettings_SetGet(t *testing.T) {
	t.Parallel()

	t.Run("sets each key", func(t *testing.T) {
		t.Parallel()

		s := podnote.DefaultSettings()

		require.NoError(t, s.Set(podnote.SettingPodcastTemplate, "{{Title}}"))
		require.NoError(t, s.Set(podnote.SettingNewNote, "true"))
		require.NoError(t, s.Set(podnote.SettingFileName, "{{Date}}"))

		assert.Equal(t, &podnote.Settings{PodcastTemplate: "{{Title}}", NewNote: true, FileName: "{{Date}}"}, s)

		v, err := s.Get(podnote.SettingNewNote)
		require.NoError(t, err)
		assert.Equal(t, "true", v)
	})

	t.Run("rejects invalid boolean", func(t *testing.T) {
		t.Parallel()

		s := podnote.DefaultSettings()
		err := s.Set(podnote.SettingNewNote, "maybe")

		assert.Equal(t, podnote.EINVALID, podnote.ErrorCode(err))
		assert.False(t, s.NewNote)
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		t.Parallel()

		s := podnote.DefaultSettings()

		assert.Equal(t, podnote.ENOTFOUND, podnote.ErrorCode(s.Set("color", "red")))
		_, err := s.Get("color")
		assert.Equal(t, podnote.ENOTFOUND, podnote.ErrorCode(err))
	})
}

func TestSettingKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"fileName", "newNote", "podcastTemplate"}, podnote.SettingKeys())
}

func TestUpdateSettings(t *testing.T) {
	t.Parallel()

	t.Run("saves mutated settings", func(t *testing.T) {
		t.Parallel()

		var saved *podnote.Settings
		store := &mock.SettingsStore{
			LoadFn: func() (*podnote.Settings, error) { return podnote.DefaultSettings(), nil },
			SaveFn: func(s *podnote.Settings) error {
				saved = s
				return nil
			},
		}

		got, err := podnote.UpdateSettings(store, func(s *podnote.Settings) error {
			s.NewNote = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, got.NewNote)
		require.NotNil(t, saved)
		assert.True(t, saved.NewNote)
	})

	t.Run("does not save when mutation fails", func(t *testing.T) {
		t.Parallel()

		store := &mock.SettingsStore{
			LoadFn: func() (*podnote.Settings, error) { return podnote.DefaultSettings(), nil },
			SaveFn: func(*podnote.Settings) error {
				t.Fatal("save must not be called")
				return nil
			},
		}

		_, err := podnote.UpdateSettings(store, func(s *podnote.Settings) error {
			return s.Set("unknown", "x")
		})

		require.Error(t, err)
	})

	t.Run("returns load error", func(t *testing.T) {
		t.Parallel()

		store := &mock.SettingsStore{
			LoadFn: func() (*podnote.Settings, error) { return nil, errors.New("disk full") },
		}

		_, err := podnote.UpdateSettings(store, func(*podnote.Settings) error { return nil })

		require.EqualError(t, err, "disk full")
	})
}
