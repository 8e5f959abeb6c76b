package slog

import (
	"log/slog"
	"time"

	"github.com/peekay/postsift"
)

// Ensure LoggingExtractor implements postsift.PostExtractor at compile time.
var _ postsift.PostExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PostExtractor with operation logging.
type LoggingExtractor struct {
	next   postsift.PostExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next postsift.PostExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging the outcome.
func (e *LoggingExtractor) Extract(html string) ([]*postsift.Post, error) {
	begin := time.Now()
	posts, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extract posts", "err", err)
		return posts, err
	}
	e.logger.Info("extract posts",
		"posts", len(posts),
		"duration", time.Since(begin))
	return posts, nil
}
