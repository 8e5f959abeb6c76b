// Package pipeline orchestrates the document-level extraction flow:
// archive decode, post enumeration, optional AI enhancement, and quality
// analysis.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/peekay/postsift"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of processing one archive.
type Result struct {
	ID          string                  `json:"id"`
	FilePath    string                  `json:"file_path"`
	Posts       []*postsift.Post        `json:"extracted_data"`
	Report      *postsift.QualityReport `json:"analysis,omitempty"`
	Method      string                  `json:"extraction_method"`
	Enhanced    bool                    `json:"enhanced"`
	ProcessedAt time.Time               `json:"processed_at"`
}

// Pipeline processes archives start to finish. Each document is handled
// synchronously; documents are independent of each other.
type Pipeline struct {
	reader    postsift.ArchiveReader
	extractor postsift.PostExtractor
	enhancer  postsift.Enhancer
	logger    *slog.Logger
}

// NewPipeline creates a new Pipeline. The enhancer is optional; when nil,
// processing stops at traditional extraction.
func NewPipeline(reader postsift.ArchiveReader, extractor postsift.PostExtractor, enhancer postsift.Enhancer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		reader:    reader,
		extractor: extractor,
		enhancer:  enhancer,
		logger:    logger,
	}
}

// Process runs one archive through the pipeline. Errors carry the input
// identifier and a message. Zero extracted posts is a success with an
// empty record list, not an error; an enhancement failure falls back to
// the traditional records.
func (p *Pipeline) Process(ctx context.Context, path string) (*Result, error) {
	html, err := p.reader.ReadHTML(path)
	if err != nil {
		return nil, postsift.Errorf(postsift.ErrorCode(err), "processing %s: %s", path, postsift.ErrorMessage(err))
	}
	if html == "" {
		return nil, postsift.Errorf(postsift.ENOTFOUND, "no HTML content found in %s", path)
	}

	posts, err := p.extractor.Extract(html)
	if err != nil {
		return nil, postsift.Errorf(postsift.ErrorCode(err), "processing %s: %s", path, postsift.ErrorMessage(err))
	}

	result := &Result{
		ID:          uuid.NewString(),
		FilePath:    path,
		Posts:       posts,
		Method:      postsift.MethodTraditional,
		ProcessedAt: time.Now(),
	}

	if p.enhancer != nil && len(posts) > 0 {
		enhanced, err := p.enhancer.Enhance(ctx, posts)
		if err != nil {
			p.logger.Warn("enhancement failed, keeping traditional records", "path", path, "err", err)
		} else {
			result.Posts = enhanced
			result.Method = postsift.MethodTraditionalAI
			result.Enhanced = true
		}
	}

	report, err := postsift.AnalyzeQuality(result.Posts)
	if err != nil {
		p.logger.Warn("quality analysis skipped", "path", path, "err", err)
	} else {
		result.Report = report
	}

	return result, nil
}

// ProcessAll processes archives concurrently, up to the given limit.
// Documents share no mutable state, so the only ordering requirement is
// within a document. One document's failure is recorded in its slot and
// does not abort the batch. Results align with the input paths.
func (p *Pipeline) ProcessAll(ctx context.Context, paths []string, concurrency int) ([]*Result, []error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = p.Process(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}
