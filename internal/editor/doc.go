// ABOUTME: Structured JSON document snapshot of the editor content.
// ABOUTME: Built from and rendered back to HTML via x/net/html.

package editor

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Doc is a structural snapshot of the document: a node tree with
// element type, text, attributes, and children. The root has type
// "doc".
type Doc struct {
	Type    string            `json:"type"`
	Text    string            `json:"text,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Content []*Doc            `json:"content,omitempty"`
}

var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true,
	"area": true, "base": true, "col": true, "embed": true,
	"link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// FromHTML parses an HTML fragment into a Doc tree.
func FromHTML(src string) (*Doc, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := &Doc{Type: "doc"}
	if body := findBody(root); body != nil {
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			if n := fromNode(c); n != nil {
				doc.Content = append(doc.Content, n)
			}
		}
	}
	return doc, nil
}

// ParseDoc decodes a JSON document snapshot.
func ParseDoc(data []byte) (*Doc, error) {
	var d Doc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode document json: %w", err)
	}
	if d.Type == "" {
		return nil, fmt.Errorf("decode document json: missing node type")
	}
	return &d, nil
}

// HTML renders the tree back to an HTML fragment.
func (d *Doc) HTML() string {
	var sb strings.Builder
	if d.Type == "doc" {
		for _, c := range d.Content {
			renderNode(&sb, c)
		}
	} else {
		renderNode(&sb, d)
	}
	return sb.String()
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func fromNode(n *html.Node) *Doc {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return &Doc{Type: "text", Text: n.Data}
	case html.ElementNode:
		d := &Doc{Type: n.Data}
		for _, a := range n.Attr {
			if d.Attrs == nil {
				d.Attrs = make(map[string]string)
			}
			d.Attrs[a.Key] = a.Val
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromNode(c); child != nil {
				d.Content = append(d.Content, child)
			}
		}
		return d
	default:
		return nil
	}
}

func renderNode(sb *strings.Builder, d *Doc) {
	if d.Type == "text" {
		sb.WriteString(html.EscapeString(d.Text))
		return
	}
	sb.WriteByte('<')
	sb.WriteString(d.Type)
	keys := make([]string, 0, len(d.Attrs))
	for k := range d.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(d.Attrs[k]))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if voidElements[d.Type] {
		return
	}
	for _, c := range d.Content {
		renderNode(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(d.Type)
	sb.WriteByte('>')
}
