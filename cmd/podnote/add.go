package main

import (
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/podnote"
	"golang.org/x/sync/errgroup"
)

// Run executes the add command.
// Each URL runs through its own independent capture.
func (c *AddCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.Load()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", podnote.ErrorMessage(err))
		return err
	}

	switch {
	case c.NewNote:
		settings.NewNote = true
	case c.AtCursor:
		settings.NewNote = false
	}

	var failed atomic.Int32
	var g errgroup.Group
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for _, u := range c.URLs {
		g.Go(func() error {
			if err := deps.Capturer.Capture(deps.Ctx, u, settings); err != nil {
				failed.Add(1)
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", u, podnote.ErrorMessage(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d captures failed", n, len(c.URLs))
	}
	return nil
}
