// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import "github.com/peekay/postsift"

var _ postsift.ArchiveReader = (*ArchiveReader)(nil)

// ArchiveReader is a mock implementation of postsift.ArchiveReader.
type ArchiveReader struct {
	ReadHTMLFn func(path string) (string, error)
}

func (r *ArchiveReader) ReadHTML(path string) (string, error) {
	return r.ReadHTMLFn(path)
}
