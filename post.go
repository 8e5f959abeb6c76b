package postsift

import (
	"context"
	"strings"
)

// Sentinel values used when every extraction strategy fails for a field.
// Titles historically default to their own literal rather than the shared
// sentinel; the asymmetry is intentional and load-bearing for downstream
// consumers.
const (
	SentinelNA   = "N/A"
	DefaultTitle = "No title found"
)

// Extraction method tags recorded on emitted posts.
const (
	MethodTraditional   = "traditional"
	MethodAI            = "ai"
	MethodTraditionalAI = "traditional+ai"
)

// Post represents one post record extracted from a feed archive.
type Post struct {
	Name    string `json:"Name"`
	Title   string `json:"Title"`
	Period  string `json:"Period"`
	Details string `json:"Details"`

	// Company and Location are populated only by AI enhancement.
	Company  string `json:"Company,omitempty"`
	Location string `json:"Location,omitempty"`

	// PostIndex is the 1-based position of the source container within the
	// document, counting containers that were skipped during enumeration.
	PostIndex int `json:"Post_Index"`

	// ExtractionMethod records how the post was produced: traditional
	// selector cascades, AI extraction, or traditional extraction followed
	// by AI enhancement.
	ExtractionMethod string `json:"extraction_method,omitempty"`

	// Confidence is set only for AI-derived fields.
	Confidence float64 `json:"confidence,omitempty"`
}

// Validate returns an error if the post contains invalid fields.
// A post without a usable name carries no information and is rejected.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Name) == "" || p.Name == SentinelNA {
		return Errorf(EINVALID, "post name required")
	}
	return nil
}

// ArchiveReader decodes a saved web-page archive into its HTML payload.
type ArchiveReader interface {
	// ReadHTML returns the decoded HTML text of the first text/html part in
	// the archive at path. An archive without an HTML part yields an empty
	// string and a nil error; only an unreadable archive is an error.
	ReadHTML(path string) (string, error)
}

// PostExtractor extracts post records from raw HTML.
type PostExtractor interface {
	// Extract enumerates post containers in the document and runs the field
	// cascades over each. A document with no recognizable containers yields
	// an empty slice, not an error.
	Extract(html string) ([]*Post, error)
}

// TextGenerator produces a text completion for a single prompt. The
// response is free-form text; callers must parse it defensively.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Enhancer augments extracted posts with Company and Location fields.
// Implementations return an error on any failure, in which case callers
// must continue with their pre-enhancement records.
type Enhancer interface {
	Enhance(ctx context.Context, posts []*Post) ([]*Post, error)
}
