package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/podnote"
)

// Ensure LoggingExtractor implements podnote.Extractor.
var _ podnote.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   podnote.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next podnote.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, sourceURL string) (meta *podnote.PodcastMetadata, err error) {
	defer func(begin time.Time) {
		title := ""
		if meta != nil {
			title = meta.Title
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
