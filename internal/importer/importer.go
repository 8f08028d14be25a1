// ABOUTME: Converts raw file bytes into note title and content.
// ABOUTME: Each format has one handler; the hard work is delegated.

package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/harper/tapnote/internal/editor"
)

var ErrConversion = errors.New("import conversion failed")

// Imported is the outcome of a successful conversion: the fields of
// the note to create.
type Imported struct {
	Title   string
	Content string
	Format  Format
}

var htmlPolicy = bluemonday.UGCPolicy()

// Convert translates file bytes of a known format into note fields.
// The title is derived from the source (filename or embedded title)
// plus an "imported at" suffix. No side effects on failure.
func Convert(data []byte, format Format, filename string, now time.Time) (*Imported, error) {
	switch format {
	case FormatHTML:
		return &Imported{
			Title:   importTitle(baseName(filename), now),
			Content: htmlPolicy.Sanitize(string(data)),
			Format:  format,
		}, nil
	case FormatJSON:
		return convertJSON(data, now)
	case FormatText, FormatMarkdown:
		title, content := baseName(filename), string(data)
		if format == FormatMarkdown {
			title, content = splitFrontmatter(title, content)
		}
		return &Imported{
			Title:   importTitle(title, now),
			Content: content,
			Format:  format,
		}, nil
	case FormatDOCX:
		content, err := convertDOCX(data)
		if err != nil {
			return nil, err
		}
		return &Imported{
			Title:   importTitle(baseName(filename), now),
			Content: content,
			Format:  format,
		}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// convertJSON reads an exported note snapshot. The embedded id is
// always discarded: an import never overwrites an existing note. The
// content may be a plain string or a structured document snapshot,
// which the editor renders back to HTML.
func convertJSON(data []byte, now time.Time) (*Imported, error) {
	var payload struct {
		Title   string          `json:"title"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	var content string
	trimmed := strings.TrimSpace(string(payload.Content))
	switch {
	case trimmed == "" || trimmed == "null":
		content = ""
	case strings.HasPrefix(trimmed, "{"):
		doc, err := editor.ParseDoc(payload.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConversion, err)
		}
		content = doc.HTML()
	default:
		if err := json.Unmarshal(payload.Content, &content); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConversion, err)
		}
	}

	return &Imported{
		Title:   importTitle(payload.Title, now),
		Content: content,
		Format:  FormatJSON,
	}, nil
}

// splitFrontmatter peels a YAML frontmatter block off a markdown
// document, preferring its title over the filename.
func splitFrontmatter(fallbackTitle, content string) (string, string) {
	if !strings.HasPrefix(content, "---\n") {
		return fallbackTitle, content
	}
	parts := strings.SplitN(content, "---\n", 3)
	if len(parts) < 3 {
		return fallbackTitle, content
	}
	var frontmatter struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &frontmatter); err != nil {
		return fallbackTitle, content
	}
	title := fallbackTitle
	if frontmatter.Title != "" {
		title = frontmatter.Title
	}
	return title, strings.TrimPrefix(parts[2], "\n")
}

func importTitle(base string, now time.Time) string {
	if base == "" {
		base = "untitled"
	}
	return fmt.Sprintf("%s - imported at %s", base, now.Format(time.RFC3339))
}

func baseName(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "." || base == "/" {
		return ""
	}
	return base
}
