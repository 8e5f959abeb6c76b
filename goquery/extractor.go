// Package goquery implements post extraction from feed HTML using
// cascading CSS selector strategies. Saved feed markup varies between
// versions, so every field is located by an ordered list of strategies and
// the first accepted match wins.
package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/peekay/postsift"
)

// Ensure Extractor implements postsift.PostExtractor at compile time.
var _ postsift.PostExtractor = (*Extractor)(nil)

// Container selectors tried in order; the first yielding at least one
// match wins. The primary structural class covers current feed markup,
// the fallbacks cover older snapshot formats.
var containerSelectors = []string{
	"div.feed-shared-update-v2",
	"div.feed-shared-update-v2__description",
	"div.feed-shared-text",
}

// Field cascades. Order is significant: each primary selector reflects
// current markup, the class-pattern fallbacks cover older versions.
var (
	nameStrategies = []Strategy{
		{Selector: `span[aria-hidden="true"]`, MinLength: 1},
		{Selector: `span[class*="actor"]`, MinLength: 1, RejectNumeric: true},
		{Selector: `span[class*="name"]`, MinLength: 1, RejectNumeric: true},
		{Selector: `a[class*="actor"]`, MinLength: 1, RejectNumeric: true},
		{Selector: `div[class*="actor"]`, MinLength: 1, RejectNumeric: true},
	}

	titleStrategies = []Strategy{
		{Selector: "span.update-components-actor__description", MinLength: 1},
		{Selector: `span[class*="description"]`, MinLength: 1},
		{Selector: `div[class*="description"]`, MinLength: 1},
		{Selector: `span[class*="title"]`, MinLength: 1},
		{Selector: `div[class*="title"]`, MinLength: 1},
	}

	periodStrategies = []Strategy{
		// Only the first sub-description is consulted; a later one with a
		// hidden child never satisfies the primary.
		{Scope: "span.update-components-actor__sub-description", Selector: `span[aria-hidden="true"]`, MinLength: 1},
		{Selector: `span[class*="time"]`, MinLength: 1},
		{Selector: `span[class*="date"]`, MinLength: 1},
		{Selector: "time", MinLength: 1},
		{Selector: `span[class*="sub-description"]`, MinLength: 1},
	}

	// Details fallbacks scan all matches with a higher threshold because
	// short filler text is common in these generic containers.
	detailsStrategies = []Strategy{
		{Selector: "div.feed-shared-inline-show-more-text", MinLength: 1},
		{Selector: `div[class*="text"]`, MinLength: 10, ScanAll: true},
		{Selector: `div[class*="content"]`, MinLength: 10, ScanAll: true},
		{Selector: `div[class*="body"]`, MinLength: 10, ScanAll: true},
		{Selector: "p", MinLength: 10, ScanAll: true},
		{Selector: `span[class*="text"]`, MinLength: 10, ScanAll: true},
	}
)

// Extractor extracts post records from feed HTML.
type Extractor struct {
	logger *slog.Logger

	// SkipDuplicates drops containers whose rendered fragment is an exact
	// byte-level repeat of an earlier one, useful for archives that repeat
	// promoted posts. Off by default: every named container yields a
	// record, duplicates included.
	SkipDuplicates bool
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses the document, locates post containers via the container
// cascade, and runs the field cascades over each. Containers that resolve
// to no usable name are skipped but still advance the post index, so
// indices reflect original document position. One container's failure
// never aborts enumeration of the rest.
func (e *Extractor) Extract(html string) ([]*postsift.Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, postsift.Errorf(postsift.EINVALID, "cannot parse HTML: %v", err)
	}

	containers := e.findContainers(doc)

	posts := make([]*postsift.Post, 0, containers.Length())
	var seen map[uint64]bool
	if e.SkipDuplicates {
		seen = make(map[uint64]bool)
	}
	containers.Each(func(i int, container *goquery.Selection) {
		defer func() {
			if rec := recover(); rec != nil {
				e.logger.Warn("error processing post", "index", i+1, "err", rec)
			}
		}()

		if seen != nil {
			if fragment, err := goquery.OuterHtml(container); err == nil {
				sum := xxhash.Sum64String(fragment)
				if seen[sum] {
					return
				}
				seen[sum] = true
			}
		}

		if post := e.extractPost(container, i+1); post != nil {
			posts = append(posts, post)
		}
	})

	return posts, nil
}

// findContainers applies the container cascade, logging each miss before
// falling through to the next selector. With no match anywhere it returns
// an empty selection.
func (e *Extractor) findContainers(doc *goquery.Document) *goquery.Selection {
	for i, selector := range containerSelectors {
		containers := doc.Find(selector)
		if containers.Length() > 0 {
			e.logger.Info("found post containers", "selector", selector, "count", containers.Length())
			return containers
		}
		if i == 0 {
			e.logger.Warn("no post containers found, trying alternative selectors")
		}
	}
	return doc.Find(containerSelectors[0])
}

// extractPost runs the four field cascades over one container. Returns nil
// when the resolved name is empty, the sentinel, or whitespace-only.
func (e *Extractor) extractPost(container *goquery.Selection, index int) *postsift.Post {
	name, ok := FirstMatch(container, nameStrategies)
	if !ok {
		name = postsift.SentinelNA
	}
	name = strings.TrimSpace(name)
	if name == "" || name == postsift.SentinelNA {
		return nil
	}

	title, ok := FirstMatch(container, titleStrategies)
	if !ok {
		title = postsift.DefaultTitle
	}
	period, ok := FirstMatch(container, periodStrategies)
	if !ok {
		period = postsift.SentinelNA
	}
	details, ok := FirstMatch(container, detailsStrategies)
	if !ok {
		details = postsift.SentinelNA
	}

	return &postsift.Post{
		Name:             name,
		Title:            strings.TrimSpace(title),
		Period:           strings.TrimSpace(period),
		Details:          strings.TrimSpace(details),
		PostIndex:        index,
		ExtractionMethod: postsift.MethodTraditional,
	}
}
