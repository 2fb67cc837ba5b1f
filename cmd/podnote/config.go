package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/podnote"
)

// Run executes the config show command.
func (c *ConfigShowCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.Load()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", podnote.ErrorMessage(err))
		return err
	}

	for _, key := range podnote.SettingKeys() {
		value, err := settings.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s: %q\n", key, value)
	}
	return nil
}

var valueUnescaper = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// Run executes the config set command. The change is saved immediately.
func (c *ConfigSetCmd) Run(deps *Dependencies) error {
	value := valueUnescaper.Replace(c.Value)
	if _, err := podnote.UpdateSettings(deps.Settings, func(s *podnote.Settings) error {
		return s.Set(c.Key, value)
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", podnote.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Set %s\n", c.Key)
	return nil
}

// Run executes the config reset command.
func (c *ConfigResetCmd) Run(deps *Dependencies) error {
	if err := deps.Settings.Save(podnote.DefaultSettings()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", podnote.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Restored default settings")
	return nil
}

// pather is implemented by settings stores backed by a file.
type pather interface {
	Path() string
}

// Run executes the config path command.
func (c *ConfigPathCmd) Run(deps *Dependencies) error {
	p, ok := deps.Settings.(pather)
	if !ok {
		return fmt.Errorf("settings are not stored in a file")
	}
	fmt.Fprintln(deps.Stdout, p.Path())
	return nil
}
