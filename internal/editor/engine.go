// ABOUTME: Engine is the rich-text collaborator contract.
// ABOUTME: Owns the document model and emits updates on user edits.

package editor

// Engine maintains the open document and derives its HTML, plain-text,
// Markdown, and structured JSON representations. Programmatic loads
// (SetContent, SetMarkdown, ClearContent) do not notify; user edits via
// Edit do, carrying the latest HTML.
//
// Engines are driven from a single UI goroutine and are not safe for
// concurrent use.
type Engine interface {
	// SetContent replaces the document with the given HTML.
	SetContent(html string)
	// SetMarkdown replaces the document by interpreting Markdown.
	SetMarkdown(markdown string) error
	// ClearContent empties the document.
	ClearContent()
	// Edit records a user edit given as Markdown and notifies
	// update listeners with the resulting HTML.
	Edit(markdown string) error

	HTML() string
	Text() string
	Markdown() (string, error)
	JSON() (*Doc, error)

	// OnUpdate registers a listener for user edits.
	OnUpdate(fn func(html string))
}
