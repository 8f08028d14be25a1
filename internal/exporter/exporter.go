// ABOUTME: Builds downloadable documents from the open draft.
// ABOUTME: Mirrors the import formats; conversion comes from the engine.

package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/tapnote/internal/editor"
	"github.com/harper/tapnote/internal/models"
)

type Format int

const (
	FormatHTML Format = iota + 1
	FormatJSON
	FormatText
	FormatMarkdown
)

var ErrUnknownFormat = errors.New("unknown export format")

// Document is a byte stream ready for download: data, media type, and
// a filename derived from the note title.
type Document struct {
	Filename  string
	MediaType string
	Data      []byte
}

type jsonExport struct {
	ID        int64       `json:"id,omitempty"`
	Title     string      `json:"title"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
	Content   *editor.Doc `json:"content"`
}

type frontmatter struct {
	Title   string     `yaml:"title"`
	Created *time.Time `yaml:"created,omitempty"`
	Updated *time.Time `yaml:"updated,omitempty"`
}

// Export renders the draft in the requested format. The HTML path uses
// the draft content verbatim; the others ask the engine for the
// matching representation. meta carries the persisted timestamps when
// the draft mirrors a stored note, and may be nil.
func Export(format Format, draft models.Draft, meta *models.Note, eng editor.Engine) (*Document, error) {
	switch format {
	case FormatHTML:
		return &Document{
			Filename:  exportFilename(draft.Title(), ".html"),
			MediaType: "text/html",
			Data:      []byte(draft.Content()),
		}, nil

	case FormatJSON:
		doc, err := eng.JSON()
		if err != nil {
			return nil, fmt.Errorf("snapshot document: %w", err)
		}
		payload := jsonExport{Title: draft.Title(), Content: doc}
		if id, ok := draft.ID(); ok {
			payload.ID = id
		}
		if meta != nil {
			payload.CreatedAt = &meta.CreatedAt
			payload.UpdatedAt = &meta.UpdatedAt
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, err
		}
		return &Document{
			Filename:  exportFilename(draft.Title(), ".json"),
			MediaType: "application/json",
			Data:      data,
		}, nil

	case FormatText:
		return &Document{
			Filename:  exportFilename(draft.Title(), ".txt"),
			MediaType: "text/plain",
			Data:      []byte(eng.Text()),
		}, nil

	case FormatMarkdown:
		body, err := eng.Markdown()
		if err != nil {
			return nil, fmt.Errorf("render markdown: %w", err)
		}
		fm := frontmatter{Title: draft.Title()}
		if meta != nil {
			fm.Created = &meta.CreatedAt
			fm.Updated = &meta.UpdatedAt
		}
		header, err := yaml.Marshal(fm)
		if err != nil {
			return nil, err
		}
		var sb strings.Builder
		sb.WriteString("---\n")
		sb.Write(header)
		sb.WriteString("---\n\n")
		sb.WriteString(body)
		return &Document{
			Filename:  exportFilename(draft.Title(), ".md"),
			MediaType: "text/markdown",
			Data:      []byte(sb.String()),
		}, nil

	default:
		return nil, ErrUnknownFormat
	}
}

// ParseFormat maps a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "txt", "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

func exportFilename(title, ext string) string {
	if title == "" {
		title = "untitled"
	}
	return sanitizeFilename(title) + ext
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > 100 {
		name = name[:100]
	}
	return name
}
