package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/peekay/postsift/cmd/postsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive stores an MHTML fixture in a temp dir and returns its path.
func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.mhtml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func feedArchive() string {
	html := `<html><body>
<div class="feed-shared-update-v2">
  <span aria-hidden="true">Jane Doe</span>
  <span class="update-components-actor__description">Software Engineer at Acme</span>
  <span class="update-components-actor__sub-description"><span aria-hidden="true">2w</span></span>
  <div class="feed-shared-inline-show-more-text">Excited to share that we are hiring across the platform team.</div>
</div>
</body></html>`
	return strings.Join([]string{
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="utf-8"`,
		"",
		html,
	}, "\r\n")
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(t.Context(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: postsift")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(t.Context(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage: postsift")
}

func TestRun_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts records from an archive", func(t *testing.T) {
		t.Parallel()

		path := writeArchive(t, feedArchive())

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(t.Context(), []string{"extract", path}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "1 posts")
		assert.Contains(t, output, "Jane Doe")
		assert.Contains(t, output, "Software Engineer at Acme")
		assert.Contains(t, output, "2w")
	})

	t.Run("keeps repeated posts unless dedup is requested", func(t *testing.T) {
		t.Parallel()

		container := `<div class="feed-shared-update-v2"><span aria-hidden="true">Jane Doe</span></div>`
		archive := strings.Join([]string{
			"MIME-Version: 1.0",
			`Content-Type: text/html; charset="utf-8"`,
			"",
			"<html><body>" + container + container + "</body></html>",
		}, "\r\n")
		path := writeArchive(t, archive)

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(t.Context(), []string{"extract", path}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 posts")

		stdout.Reset()
		stderr.Reset()

		err = m.Run(t.Context(), []string{"extract", path, "--dedup"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 posts")
	})

	t.Run("returns error for a file that is not an archive", func(t *testing.T) {
		t.Parallel()

		path := writeArchive(t, "this is not a mime message")

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(t.Context(), []string{"extract", path}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 1 archives failed to process")
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns error for a missing file", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(t.Context(), []string{"extract", filepath.Join(t.TempDir(), "missing.mhtml")}, stdout, stderr)

		// Kong validates existingfile arguments at parse time.
		require.Error(t, err)
	})

	t.Run("exports records to CSV", func(t *testing.T) {
		t.Parallel()

		path := writeArchive(t, feedArchive())
		csvPath := filepath.Join(t.TempDir(), "posts.csv")

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(t.Context(), []string{"extract", path, "--csv", csvPath}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Data exported to "+csvPath)

		data, err := os.ReadFile(csvPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Jane Doe")
	})
}
