package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/podnote"
	"github.com/fwojciec/podnote/capture"
	"github.com/fwojciec/podnote/fs"
	"github.com/fwojciec/podnote/goquery"
	podhttp "github.com/fwojciec/podnote/http"
	podslog "github.com/fwojciec/podnote/slog"
	"github.com/fwojciec/podnote/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher retrieves episode pages. Defaults to an HTTP fetcher.
	// Set before calling Run() for end-to-end testing.
	Fetcher podnote.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	stdout, stderr = NewSyncWriter(stdout), NewSyncWriter(stderr)
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("podnote"),
		kong.Description("Turn Spotify and Apple Podcasts episodes into markdown notes"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'podnote --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	settingsPath := cli.Settings
	if settingsPath == "" {
		settingsPath = defaultSettingsPath()
	}
	deps.Settings = yaml.NewSettingsStore(settingsPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if strings.HasPrefix(kongCtx.Command(), "add") {
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = podhttp.NewFetcher(podhttp.WithTimeout(cli.Add.Timeout))
		}

		var inserter podnote.CursorInserter = NewWriterInserter(stdout)
		if cli.Add.File != "" {
			inserter = fs.NewCursorInserter(cli.Add.File, fs.Cursor{Line: cli.Add.Line, Ch: cli.Add.Ch})
		}

		deps.Capturer = &capture.Capturer{
			Fetcher:   podslog.NewLoggingFetcher(fetcher, logger),
			Extractor: podslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
			Inserter:  podslog.NewLoggingInserter(inserter, logger),
			Creator:   podslog.NewLoggingCreator(fs.NewNoteCreator(cli.Add.Vault), logger),
			Notifier:  NewWriterNotifier(stderr),
		}
	}

	return kongCtx.Run(deps)
}

// defaultSettingsPath returns $PODNOTE_CONFIG, or settings.yaml in the
// user's config directory.
func defaultSettingsPath() string {
	if path := os.Getenv("PODNOTE_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "podnote.yaml"
	}
	return filepath.Join(dir, "podnote", "settings.yaml")
}
