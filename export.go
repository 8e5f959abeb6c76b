package postsift

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
)

// ExportColumns is the fixed column order of the export surface.
var ExportColumns = []string{"Name", "Title", "Period", "Details", "Company", "Location"}

// MarshalCSV serializes posts in the fixed export column order. Posts that
// were never enhanced have Company and Location filled with the sentinel at
// export time.
func MarshalCSV(posts []*Post) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ExportColumns); err != nil {
		return nil, err
	}
	for _, p := range posts {
		record := []string{
			p.Name,
			p.Title,
			p.Period,
			p.Details,
			orSentinel(p.Company),
			orSentinel(p.Location),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON serializes posts as indented JSON with the same sentinel
// filling as the CSV surface. The input posts are not mutated.
func ExportJSON(posts []*Post) ([]byte, error) {
	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		q := *p
		q.Company = orSentinel(q.Company)
		q.Location = orSentinel(q.Location)
		out = append(out, &q)
	}
	return json.MarshalIndent(out, "", "  ")
}

func orSentinel(s string) string {
	if s == "" {
		return SentinelNA
	}
	return s
}
