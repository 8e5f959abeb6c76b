package mock

import (
	"context"

	"github.com/peekay/postsift"
)

var _ postsift.Enhancer = (*Enhancer)(nil)

// Enhancer is a mock implementation of postsift.Enhancer.
type Enhancer struct {
	EnhanceFn func(ctx context.Context, posts []*postsift.Post) ([]*postsift.Post, error)
}

func (e *Enhancer) Enhance(ctx context.Context, posts []*postsift.Post) ([]*postsift.Post, error) {
	return e.EnhanceFn(ctx, posts)
}
