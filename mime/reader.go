// Package mime decodes MHTML page archives. An archive is a MIME message
// bundling the saved page's HTML together with images and stylesheets as
// labeled parts; only the HTML part is of interest here.
package mime

import (
	"encoding/base64"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/peekay/postsift"
	"golang.org/x/text/encoding/charmap"
)

// Ensure Reader implements postsift.ArchiveReader at compile time.
var _ postsift.ArchiveReader = (*Reader)(nil)

// Reader extracts the HTML payload from MHTML archives.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a new Reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadHTML decodes the archive at path and returns the text of its first
// text/html part, searching nested multipart bodies depth-first. An archive
// without an HTML part yields an empty string and a nil error; only an
// unreadable or structurally invalid archive is an error.
func (r *Reader) ReadHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", postsift.Errorf(postsift.ENOTFOUND, "cannot open archive: %v", err)
	}
	defer f.Close()

	msg, err := mail.ReadMessage(f)
	if err != nil {
		return "", postsift.Errorf(postsift.EINVALID, "cannot parse archive %q: %v", path, err)
	}

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil {
		return "", postsift.Errorf(postsift.EINVALID, "cannot parse archive content type: %v", err)
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return r.findHTMLPart(multipart.NewReader(msg.Body, params["boundary"])), nil
	}

	// Single-part archives can themselves be the HTML document.
	if mediaType == "text/html" {
		html, err := decodePayload(msg.Body, msg.Header.Get("Content-Transfer-Encoding"))
		if err != nil {
			r.logger.Warn("cannot decode archive body", "err", err)
			return "", nil
		}
		return html, nil
	}

	return "", nil
}

// findHTMLPart walks parts in order, recursing into nested multipart
// bodies, and returns the first text/html payload that decodes. Decode
// failures are logged and skipped so a later HTML part can still win.
func (r *Reader) findHTMLPart(mr *multipart.Reader) string {
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return ""
		}
		if err != nil {
			r.logger.Warn("cannot read archive part", "err", err)
			return ""
		}

		mediaType, params, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}

		if strings.HasPrefix(mediaType, "multipart/") {
			if html := r.findHTMLPart(multipart.NewReader(part, params["boundary"])); html != "" {
				return html
			}
			continue
		}

		if mediaType != "text/html" {
			continue
		}

		html, err := decodePayload(part, part.Header.Get("Content-Transfer-Encoding"))
		if err != nil {
			r.logger.Warn("cannot decode html part", "err", err)
			continue
		}
		return html
	}
}

// decodePayload applies the declared transfer encoding, then interprets the
// bytes as UTF-8, falling back to Latin-1 when they do not validate.
// Latin-1 decoding maps every byte to a code point, so the fallback cannot
// itself fail.
func decodePayload(body io.Reader, transferEncoding string) (string, error) {
	var decoded io.Reader
	switch strings.ToLower(strings.TrimSpace(transferEncoding)) {
	case "quoted-printable":
		decoded = quotedprintable.NewReader(body)
	case "base64":
		decoded = base64.NewDecoder(base64.StdEncoding, body)
	default:
		decoded = body
	}

	raw, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	latin, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(latin), nil
}
