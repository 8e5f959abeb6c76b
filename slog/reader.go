// Package slog provides logging decorators for the domain interfaces,
// built on the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/peekay/postsift"
)

// Ensure LoggingReader implements postsift.ArchiveReader at compile time.
var _ postsift.ArchiveReader = (*LoggingReader)(nil)

// LoggingReader wraps an ArchiveReader with operation logging.
type LoggingReader struct {
	next   postsift.ArchiveReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next postsift.ArchiveReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// ReadHTML delegates to the wrapped reader, logging the outcome.
func (r *LoggingReader) ReadHTML(path string) (string, error) {
	begin := time.Now()
	html, err := r.next.ReadHTML(path)
	if err != nil {
		r.logger.Error("read archive", "path", path, "err", err)
		return html, err
	}
	r.logger.Info("read archive",
		"path", path,
		"bytes", len(html),
		"duration", time.Since(begin))
	return html, nil
}
