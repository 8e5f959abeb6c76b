package main

import (
	"fmt"
	"os"

	"github.com/peekay/postsift"
	postgoquery "github.com/peekay/postsift/goquery"
	"github.com/peekay/postsift/pipeline"
)

// dumpTextLimit bounds --dump-text output per archive.
const dumpTextLimit = 4000

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.DumpText {
		return c.runDumpText(deps)
	}

	pipe := pipeline.NewPipeline(deps.Reader, deps.Extractor, deps.Enhancer, deps.Logger)

	results, errs := pipe.ProcessAll(deps.Ctx, c.Files, c.Concurrency)

	var posts []*postsift.Post
	failed := 0
	for i, result := range results {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s\n", postsift.ErrorMessage(errs[i]))
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s: %d posts", result.FilePath, len(result.Posts))
		if result.Report != nil {
			fmt.Fprintf(deps.Stdout, ", quality %.2f%%", result.Report.QualityScore)
		}
		fmt.Fprintln(deps.Stdout)
		if result.Report != nil {
			for _, insight := range result.Report.Insights {
				fmt.Fprintf(deps.Stdout, "  %s\n", insight)
			}
		}

		posts = append(posts, result.Posts...)
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, postsift.FormatPosts(posts))

	if c.CSV != "" {
		data, err := postsift.MarshalCSV(posts)
		if err != nil {
			return fmt.Errorf("failed to serialize CSV: %w", err)
		}
		if err := os.WriteFile(c.CSV, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.CSV, err)
		}
		fmt.Fprintf(deps.Stdout, "Data exported to %s\n", c.CSV)
	}

	if c.JSON != "" {
		data, err := postsift.ExportJSON(posts)
		if err != nil {
			return fmt.Errorf("failed to serialize JSON: %w", err)
		}
		if err := os.WriteFile(c.JSON, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.JSON, err)
		}
		fmt.Fprintf(deps.Stdout, "Data exported to %s\n", c.JSON)
	}

	if failed == len(c.Files) && failed > 0 {
		return postsift.Errorf(postsift.EINTERNAL, "all %d archives failed to process", failed)
	}
	return nil
}

// runDumpText prints each archive's visible text for inspecting what the
// selector cascades are working against.
func (c *ExtractCmd) runDumpText(deps *Dependencies) error {
	failed := 0
	for _, path := range c.Files {
		html, err := deps.Reader.ReadHTML(path)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s\n", postsift.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "=== %s ===\n", path)
		fmt.Fprintln(deps.Stdout, postgoquery.CleanText(html, dumpTextLimit))
	}
	if failed == len(c.Files) && failed > 0 {
		return postsift.Errorf(postsift.EINTERNAL, "all %d archives failed to process", failed)
	}
	return nil
}
