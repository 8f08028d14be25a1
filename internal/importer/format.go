// ABOUTME: Closed set of importable file formats.
// ABOUTME: Media-type dispatch with an explicit unsupported arm.

package importer

import (
	"errors"
	"mime"
	"path/filepath"
	"strings"
)

type Format int

const (
	FormatHTML Format = iota + 1
	FormatJSON
	FormatText
	FormatMarkdown
	FormatDOCX
)

const docxMediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var ErrUnsupportedFormat = errors.New("unsupported file format")

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	case FormatDOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// Detect maps a declared media type onto a format. Anything outside
// the closed set is rejected.
func Detect(mediaType string) (Format, error) {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return 0, ErrUnsupportedFormat
	}
	switch mt {
	case "text/html":
		return FormatHTML, nil
	case "application/json":
		return FormatJSON, nil
	case "text/plain":
		return FormatText, nil
	case "text/markdown", "text/x-markdown":
		return FormatMarkdown, nil
	case docxMediaType:
		return FormatDOCX, nil
	default:
		return 0, ErrUnsupportedFormat
	}
}

// MediaTypeFor guesses the declared media type of a file from its
// extension, for callers that only have a path.
func MediaTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "text/html"
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	case ".md", ".markdown":
		return "text/markdown"
	case ".docx":
		return docxMediaType
	default:
		return mime.TypeByExtension(filepath.Ext(path))
	}
}
