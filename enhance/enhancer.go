// Package enhance augments extracted posts with Company and Location
// columns by round-tripping them through a text-generation collaborator.
// The collaborator returns free-form text, so the response parser is a
// tolerant scanner with explicit give-up conditions rather than a strict
// grammar; any failure at any step aborts the whole enhancement and the
// caller keeps its pre-enhancement records.
package enhance

import (
	"context"
	"encoding/csv"
	"strings"

	"github.com/peekay/postsift"
)

// Ensure Enhancer implements postsift.Enhancer at compile time.
var _ postsift.Enhancer = (*Enhancer)(nil)

// Enhancer implements postsift.Enhancer over a TextGenerator.
type Enhancer struct {
	gen postsift.TextGenerator
}

// NewEnhancer creates a new Enhancer.
func NewEnhancer(gen postsift.TextGenerator) *Enhancer {
	return &Enhancer{gen: gen}
}

// Enhance serializes the posts to a tabular prompt, asks the collaborator
// for Company and Location columns, parses the answer, and merges it back
// onto the posts keyed by Name. Output preserves input order and count;
// unmatched posts get sentinel Company and Location. Every output post is
// tagged traditional+ai with confidence 0.9.
//
// Callers cannot distinguish a transport failure from a malformed answer:
// both surface as an error and the caller continues with its input.
func (e *Enhancer) Enhance(ctx context.Context, posts []*postsift.Post) ([]*postsift.Post, error) {
	if e.gen == nil {
		return nil, postsift.Errorf(postsift.EUNAVAILABLE, "no text generator configured")
	}
	if len(posts) == 0 {
		return nil, postsift.Errorf(postsift.EINVALID, "no posts to enhance")
	}

	table, err := marshalPrompt(posts)
	if err != nil {
		return nil, err
	}

	response, err := e.gen.Generate(ctx, BuildPrompt(table))
	if err != nil {
		return nil, err
	}

	rows, err := parseResponse(response)
	if err != nil {
		return nil, err
	}

	return merge(posts, rows), nil
}

// marshalPrompt renders the posts as CSV with the fixed prompt header.
// encoding/csv doubles embedded quotes and wraps comma-bearing fields.
func marshalPrompt(posts []*postsift.Post) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"Name", "Title", "Period", "Details"}); err != nil {
		return "", err
	}
	for _, p := range posts {
		if err := w.Write([]string{p.Name, p.Title, p.Period, p.Details}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// BuildPrompt builds the fixed instruction sent to the collaborator for a
// serialized post table.
func BuildPrompt(table string) string {
	var b strings.Builder
	b.WriteString("You are given CSV data describing posts from a professional feed.\n")
	b.WriteString("Columns: Name, Title, Period, Details.\n\n")
	b.WriteString("For each input row, produce one output row with exactly these columns:\n")
	b.WriteString("ID,Name,Company,Location\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- ID: a unique row identifier (1, 2, 3, ...).\n")
	b.WriteString("- Name: copy the input Name unchanged; rows are keyed by Name.\n")
	b.WriteString("- Company: derive only from the Name or Title columns, never from Details.\n")
	b.WriteString("- Location: derive only from the Details column. Use \"Remote\" if the role is likely remote, a quoted specific place if one is named, otherwise \"Location not specified\".\n")
	b.WriteString("- Return exactly the same number of rows, in the same order as the input.\n")
	b.WriteString("- Do not include the Title or Details columns in the output.\n")
	b.WriteString("- Return CSV only, starting with the header row.\n\n")
	b.WriteString("Input data:\n")
	b.WriteString(table)
	return b.String()
}

// row is one parsed collaborator answer, normalized to the four expected
// columns.
type row struct {
	ID       string
	Name     string
	Company  string
	Location string
}

// parseResponse scans free-form collaborator output for tabular content.
// Code fences are stripped, comma-less lines discarded, and lines with
// fewer than four comma-separated fields dropped. At least a header and
// one data row must survive, otherwise the enhancement gives up.
func parseResponse(response string) ([]row, error) {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		if len(strings.Split(line, ",")) < 4 {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil, postsift.Errorf(postsift.EINVALID, "collaborator response contains no usable table")
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, postsift.Errorf(postsift.EINVALID, "cannot parse collaborator response: %v", err)
	}
	if len(records) < 2 {
		return nil, postsift.Errorf(postsift.EINVALID, "collaborator response contains no data rows")
	}

	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, row{
			ID:       normalizeField(record, 0),
			Name:     normalizeField(record, 1),
			Company:  normalizeField(record, 2),
			Location: normalizeField(record, 3),
		})
	}
	return rows, nil
}

// normalizeField returns the i-th field trimmed of whitespace and
// surrounding quote characters, or the sentinel when missing or empty.
func normalizeField(record []string, i int) string {
	if i >= len(record) {
		return postsift.SentinelNA
	}
	value := strings.Trim(strings.TrimSpace(record[i]), `"'`)
	if value == "" {
		return postsift.SentinelNA
	}
	return value
}

// merge joins parsed rows onto the original posts by trimmed Name. The
// original Name, Title, Period, and Details always survive; only Company
// and Location are added.
func merge(posts []*postsift.Post, rows []row) []*postsift.Post {
	byName := make(map[string]row, len(rows))
	for _, r := range rows {
		byName[strings.TrimSpace(r.Name)] = r
	}

	merged := make([]*postsift.Post, 0, len(posts))
	for _, p := range posts {
		out := *p
		out.Company = postsift.SentinelNA
		out.Location = postsift.SentinelNA
		if r, ok := byName[strings.TrimSpace(p.Name)]; ok {
			out.Company = r.Company
			out.Location = r.Location
		}
		out.ExtractionMethod = postsift.MethodTraditionalAI
		out.Confidence = 0.9
		merged = append(merged, &out)
	}
	return merged
}
