package goquery_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/peekay/postsift"
	postgoquery "github.com/peekay/postsift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements postsift.PostExtractor at compile time.
var _ postsift.PostExtractor = (*postgoquery.Extractor)(nil)

func newExtractor() *postgoquery.Extractor {
	return postgoquery.NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts name with defaults for all other fields", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2"><span aria-hidden="true">Jane Doe</span></div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Jane Doe", posts[0].Name)
		assert.Equal(t, postsift.DefaultTitle, posts[0].Title)
		assert.Equal(t, postsift.SentinelNA, posts[0].Period)
		assert.Equal(t, postsift.SentinelNA, posts[0].Details)
		assert.Equal(t, 1, posts[0].PostIndex)
		assert.Equal(t, postsift.MethodTraditional, posts[0].ExtractionMethod)
	})

	t.Run("extracts all four fields from full markup", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2">
			<span aria-hidden="true">John Smith</span>
			<span class="update-components-actor__description">CTO at Acme</span>
			<span class="update-components-actor__sub-description"><span aria-hidden="true">2w</span></span>
			<div class="feed-shared-inline-show-more-text">We are hiring backend engineers for our platform team.</div>
		</div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "John Smith", posts[0].Name)
		assert.Equal(t, "CTO at Acme", posts[0].Title)
		assert.Equal(t, "2w", posts[0].Period)
		assert.Equal(t, "We are hiring backend engineers for our platform team.", posts[0].Details)
	})

	t.Run("primary selector beats fallbacks regardless of position", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2">
			<span class="actor-mini">Fallback Name</span>
			<span aria-hidden="true">Primary Name</span>
		</div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Primary Name", posts[0].Name)
	})

	t.Run("skipped containers still advance the post index", func(t *testing.T) {
		t.Parallel()

		html := `
			<div class="feed-shared-update-v2"><img src="ad.png"></div>
			<div class="feed-shared-update-v2"><span aria-hidden="true">Jane Doe</span></div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Jane Doe", posts[0].Name)
		assert.Equal(t, 2, posts[0].PostIndex)
	})

	t.Run("emitted names are trimmed and non-sentinel", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2"><span aria-hidden="true">  Jane Doe  </span></div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Jane Doe", posts[0].Name)
	})

	t.Run("falls back to alternative container selectors", func(t *testing.T) {
		t.Parallel()

		html := `
			<div class="feed-shared-text"><span aria-hidden="true">Old Format</span></div>
			<div class="feed-shared-text"><span aria-hidden="true">Second Post</span></div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Old Format", posts[0].Name)
		assert.Equal(t, "Second Post", posts[1].Name)
	})

	t.Run("no containers yields empty list, not an error", func(t *testing.T) {
		t.Parallel()

		posts, err := newExtractor().Extract(`<html><body><p>nothing here</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("details fallback requires substantive text", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2">
			<span aria-hidden="true">Jane Doe</span>
			<p>short</p>
		</div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, postsift.SentinelNA, posts[0].Details)
	})

	t.Run("details fallback scans past filler to a substantive match", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2">
			<span aria-hidden="true">Jane Doe</span>
			<p>see more</p>
			<p>We are looking for a product manager with marketing experience.</p>
		</div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "We are looking for a product manager with marketing experience.", posts[0].Details)
	})

	t.Run("rejects purely numeric fallback names", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2"><span class="actor-badge">12345</span></div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("title falls back to description class patterns", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2">
			<span aria-hidden="true">Jane Doe</span>
			<div class="profile-description">Growth marketing lead</div>
		</div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Growth marketing lead", posts[0].Title)
	})

	t.Run("period falls back to time elements", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2">
			<span aria-hidden="true">Jane Doe</span>
			<time>3d ago</time>
		</div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "3d ago", posts[0].Period)
	})

	t.Run("repeated containers each yield a record", func(t *testing.T) {
		t.Parallel()

		container := `<div class="feed-shared-update-v2"><span aria-hidden="true">Jane Doe</span></div>`
		posts, err := newExtractor().Extract(container + container)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Jane Doe", posts[0].Name)
		assert.Equal(t, "Jane Doe", posts[1].Name)
		assert.Equal(t, 1, posts[0].PostIndex)
		assert.Equal(t, 2, posts[1].PostIndex)
	})

	t.Run("opt-in duplicate skipping drops exact repeats", func(t *testing.T) {
		t.Parallel()

		container := `<div class="feed-shared-update-v2"><span aria-hidden="true">Jane Doe</span></div>`
		extractor := newExtractor()
		extractor.SkipDuplicates = true

		posts, err := extractor.Extract(container + container)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, 1, posts[0].PostIndex)
	})

	t.Run("period primary consults only the first sub-description", func(t *testing.T) {
		t.Parallel()

		html := `<div class="feed-shared-update-v2">
			<span aria-hidden="true">Jane Doe</span>
			<span class="update-components-actor__sub-description">posted</span>
			<span class="update-components-actor__sub-description"><span aria-hidden="true">5d</span></span>
		</div>`

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		// The first sub-description has no hidden child, so the primary
		// fails and the sub-description fallback resolves its text.
		assert.Equal(t, "posted", posts[0].Period)
	})

	t.Run("collapses whitespace inside extracted text", func(t *testing.T) {
		t.Parallel()

		html := "<div class=\"feed-shared-update-v2\"><span aria-hidden=\"true\">Jane\n\t Doe</span></div>"

		posts, err := newExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Jane Doe", posts[0].Name)
	})
}
