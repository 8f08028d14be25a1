// ABOUTME: Buffer is the in-process rich-text engine implementation.
// ABOUTME: Keeps canonical HTML and derives text, Markdown, and JSON.

package editor

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"pre": true, "br": true, "hr": true,
}

// Buffer holds the open document as canonical HTML. Markdown input is
// interpreted through goldmark; Markdown output through
// html-to-markdown.
type Buffer struct {
	html      string
	markdown  goldmark.Markdown
	converter *md.Converter
	listeners []func(html string)
}

func NewBuffer() *Buffer {
	return &Buffer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		converter: md.NewConverter("", true, nil),
	}
}

func (b *Buffer) SetContent(html string) {
	b.html = html
}

func (b *Buffer) SetMarkdown(markdown string) error {
	out, err := b.render(markdown)
	if err != nil {
		return err
	}
	b.html = out
	return nil
}

func (b *Buffer) ClearContent() {
	b.html = ""
}

func (b *Buffer) Edit(markdown string) error {
	out, err := b.render(markdown)
	if err != nil {
		return err
	}
	b.html = out
	for _, fn := range b.listeners {
		fn(b.html)
	}
	return nil
}

func (b *Buffer) HTML() string {
	return b.html
}

func (b *Buffer) Text() string {
	root, err := html.Parse(strings.NewReader(b.html))
	if err != nil {
		return b.html
	}
	var sb strings.Builder
	collectText(&sb, root)
	return strings.TrimRight(sb.String(), "\n")
}

func (b *Buffer) Markdown() (string, error) {
	out, err := b.converter.ConvertString(b.html)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return out, nil
}

func (b *Buffer) JSON() (*Doc, error) {
	return FromHTML(b.html)
}

func (b *Buffer) OnUpdate(fn func(html string)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Buffer) render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("interpret markdown: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func collectText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(sb, c)
	}
	if n.Type == html.ElementNode && blockElements[n.Data] {
		sb.WriteByte('\n')
	}
}
