package postsift

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatColumns describes the table layout: per-column display caps keep
// pathological values from blowing up the output width.
var formatColumns = []struct {
	name string
	cap  int
	get  func(*Post) string
}{
	{"Name", 30, func(p *Post) string { return p.Name }},
	{"Title", 60, func(p *Post) string { return p.Title }},
	{"Period", 15, func(p *Post) string { return p.Period }},
	{"Details", 50, func(p *Post) string { return p.Details }},
}

// FormatPosts renders posts as a fixed-width text table for display.
// Column widths are the maximum observed value width plus two, capped per
// column; longer values are truncated without an ellipsis. An empty set
// yields the literal "No data to display".
func FormatPosts(posts []*Post) string {
	if len(posts) == 0 {
		return "No data to display"
	}

	widths := make([]int, len(formatColumns))
	for i, col := range formatColumns {
		widest := 0
		for _, p := range posts {
			if w := runewidth.StringWidth(col.get(p)); w > widest {
				widest = w
			}
		}
		widths[i] = min(widest+2, col.cap)
	}

	cells := make([]string, len(formatColumns))
	for i, col := range formatColumns {
		cells[i] = runewidth.FillRight(col.name, widths[i])
	}
	header := strings.Join(cells, " | ")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", runewidth.StringWidth(header)))

	for _, p := range posts {
		for i, col := range formatColumns {
			value := runewidth.Truncate(col.get(p), widths[i]-2, "")
			cells[i] = runewidth.FillRight(value, widths[i])
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, " | "))
	}
	return b.String()
}
