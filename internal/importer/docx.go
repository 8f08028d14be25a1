// ABOUTME: DOCX to HTML conversion delegated to go-docx.
// ABOUTME: Failures surface as ErrConversion; no note is created.

package importer

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"
	"golang.org/x/net/html"
)

// convertDOCX extracts the document body paragraph by paragraph and
// wraps each in a paragraph tag. Formatting beyond paragraph
// boundaries is not preserved.
func convertDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		s, ok := item.(fmt.Stringer)
		if !ok {
			continue
		}
		for _, line := range strings.Split(s.String(), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			sb.WriteString("<p>")
			sb.WriteString(html.EscapeString(line))
			sb.WriteString("</p>")
		}
	}
	return sb.String(), nil
}
