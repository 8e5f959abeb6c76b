package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/peekay/postsift"
)

// Ensure LoggingEnhancer implements postsift.Enhancer at compile time.
var _ postsift.Enhancer = (*LoggingEnhancer)(nil)

// LoggingEnhancer wraps an Enhancer with operation logging. Enhancement
// failures are logged at warn level because callers recover by keeping
// their pre-enhancement records.
type LoggingEnhancer struct {
	next   postsift.Enhancer
	logger *slog.Logger
}

// NewLoggingEnhancer creates a new LoggingEnhancer.
func NewLoggingEnhancer(next postsift.Enhancer, logger *slog.Logger) *LoggingEnhancer {
	return &LoggingEnhancer{next: next, logger: logger}
}

// Enhance delegates to the wrapped enhancer, logging the outcome.
func (e *LoggingEnhancer) Enhance(ctx context.Context, posts []*postsift.Post) ([]*postsift.Post, error) {
	begin := time.Now()
	enhanced, err := e.next.Enhance(ctx, posts)
	if err != nil {
		e.logger.Warn("enhance posts", "posts", len(posts), "err", err)
		return enhanced, err
	}
	e.logger.Info("enhance posts",
		"posts", len(enhanced),
		"duration", time.Since(begin))
	return enhanced, nil
}
