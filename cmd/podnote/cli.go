package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/podnote"
	"github.com/fwojciec/podnote/capture"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Settings podnote.SettingsStore
	Capturer *capture.Capturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Settings string `help:"Settings file (default: $PODNOTE_CONFIG or user config dir)" type:"path"`
	Verbose  bool   `short:"v" help:"Log pipeline steps to stderr"`

	Add    AddCmd    `cmd:"" help:"Capture podcast episodes as notes"`
	Config ConfigCmd `cmd:"" help:"Show or change note settings"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Spotify or Apple Podcasts episode URL"`
	NewNote     bool          `short:"n" xor:"dest" help:"Create a new note (overrides settings)"`
	AtCursor    bool          `xor:"dest" help:"Insert at the cursor (overrides settings)"`
	Vault       string        `default:"." env:"PODNOTE_VAULT" type:"path" help:"Directory for new notes"`
	File        string        `type:"path" help:"Document to insert into (default: stdout)"`
	Line        int           `help:"Cursor line, zero-based"`
	Ch          int           `help:"Cursor column in characters, zero-based"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent capture limit"`
	Timeout     time.Duration `short:"t" default:"0s" help:"Request timeout (0 leaves it to the transport)"`
}

// ConfigCmd groups the settings subcommands.
type ConfigCmd struct {
	Show  ConfigShowCmd  `cmd:"" default:"1" help:"Print current settings"`
	Set   ConfigSetCmd   `cmd:"" help:"Change a setting"`
	Reset ConfigResetCmd `cmd:"" help:"Restore default settings"`
	Path  ConfigPathCmd  `cmd:"" help:"Print the settings file path"`
}

// ConfigShowCmd is the "config show" subcommand.
type ConfigShowCmd struct{}

// ConfigSetCmd is the "config set" subcommand.
type ConfigSetCmd struct {
	Key   string `arg:"" enum:"podcastTemplate,newNote,fileName" help:"Setting name (podcastTemplate, newNote, fileName)"`
	Value string `arg:"" help:"New value; \\n and \\t are unescaped"`
}

// ConfigResetCmd is the "config reset" subcommand.
type ConfigResetCmd struct{}

// ConfigPathCmd is the "config path" subcommand.
type ConfigPathCmd struct{}
