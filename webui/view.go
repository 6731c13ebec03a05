package webui

import "html/template"

// View is the drawing surface for the summarization flow. Implementations
// own panel visibility: ShowResult reveals the result panel (hiding any
// error panel) and scrolls it into view; ShowError does the inverse and
// must treat the message as plain text, never markup.
type View interface {
	// SetLoading disables or re-enables the submit control and toggles
	// the indeterminate progress indicator.
	SetLoading(loading bool)

	// ClearPanels hides any previously shown result or error panel.
	ClearPanels()

	// ShowResult replaces the result panel content and reveals it.
	ShowResult(markup template.HTML)

	// ShowError sets the error panel's text content and reveals it.
	ShowError(message string)
}

// StatusView is the drawing surface for the agent status badge.
type StatusView interface {
	// SetBadge updates the status label and the health glyph.
	SetBadge(label string, healthy bool)

	// ShowDetails presents the non-blocking agent detail lines.
	ShowDetails(lines []string)
}
