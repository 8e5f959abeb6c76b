package mock

import "github.com/peekay/postsift"

var _ postsift.PostExtractor = (*PostExtractor)(nil)

// PostExtractor is a mock implementation of postsift.PostExtractor.
type PostExtractor struct {
	ExtractFn func(html string) ([]*postsift.Post, error)
}

func (e *PostExtractor) Extract(html string) ([]*postsift.Post, error) {
	return e.ExtractFn(html)
}
