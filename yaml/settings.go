// Package yaml persists podnote settings as a YAML file.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/podnote"
	"gopkg.in/yaml.v3"
)

// Ensure SettingsStore implements podnote.SettingsStore at compile time.
var _ podnote.SettingsStore = (*SettingsStore)(nil)

// SettingsStore keeps settings in a single YAML file.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a SettingsStore backed by the file at path.
// The file and its directory are created on the first Save.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.path
}

// Load reads the settings file and merges it over the defaults.
// Keys absent from the file keep their default values; a missing file
// yields the defaults.
func (s *SettingsStore) Load() (*podnote.Settings, error) {
	settings := podnote.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, podnote.WrapError(podnote.EINVALID, err, "invalid settings file %s", s.path)
	}
	return settings, nil
}

// Save writes settings to the file, replacing it atomically.
func (s *SettingsStore) Save(settings *podnote.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings.*.tmp")
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
