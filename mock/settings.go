package mock

import "github.com/fwojciec/podnote"

var _ podnote.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a mock implementation of podnote.SettingsStore.
type SettingsStore struct {
	LoadFn func() (*podnote.Settings, error)
	SaveFn func(s *podnote.Settings) error
}

func (s *SettingsStore) Load() (*podnote.Settings, error) {
	return s.LoadFn()
}

func (s *SettingsStore) Save(settings *podnote.Settings) error {
	return s.SaveFn(settings)
}
