package enhance

import (
	"context"

	"github.com/peekay/postsift"
	"golang.org/x/time/rate"
)

// Ensure RateLimitedGenerator implements postsift.TextGenerator at compile time.
var _ postsift.TextGenerator = (*RateLimitedGenerator)(nil)

// RateLimitedGenerator wraps a TextGenerator with a token-bucket rate
// limit. Burst is fixed at 1 so batch runs space their collaborator calls
// evenly.
type RateLimitedGenerator struct {
	next    postsift.TextGenerator
	limiter *rate.Limiter
}

// NewRateLimitedGenerator creates a generator limited to rps requests per
// second.
func NewRateLimitedGenerator(next postsift.TextGenerator, rps float64) *RateLimitedGenerator {
	return &RateLimitedGenerator{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Generate waits until the rate limit allows a request, then delegates.
// Returns an error if the context is canceled before the wait completes.
func (g *RateLimitedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return g.next.Generate(ctx, prompt)
}
