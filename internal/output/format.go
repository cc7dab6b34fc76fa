// Package output provides plain-text formatters for the board.
package output

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/todo"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"

	// IncompleteTitle and CompleteTitle head the two board sections.
	IncompleteTitle = "Incomplete"
	CompleteTitle   = "Complete"
)

// Board is what the formatters need from a controller.
type Board interface {
	Incomplete() []todo.Item
	Completed() []todo.Item
}

// FormatBoard writes both sections, incomplete first.
func FormatBoard(w io.Writer, b Board) {
	FormatSection(w, IncompleteTitle, b.Incomplete())
	FormatSection(w, CompleteTitle, b.Completed())
}

// FormatSection writes a header followed by one indented line per item.
// An empty section prints "(none)".
func FormatSection(w io.Writer, title string, items []todo.Item) {
	FormatHeader(w, title)
	if len(items) == 0 {
		fmt.Fprintln(w, "    (none)")
		return
	}
	for _, item := range items {
		FormatItem(w, item)
	}
}

// FormatHeader formats a section header.
func FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, ListSeparator)
}

// FormatItem formats an item line.
// Format: "    {ID:>4}  {TEXT}\n" (4 spaces indent + 4-wide id + 2 spaces + text)
func FormatItem(w io.Writer, item todo.Item) {
	fmt.Fprintf(w, "    %4d  %s\n", item.ID, DisplayText(item.Text))
}

// DisplayText normalizes item text for a single display line.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
//
// The stored text is never changed.
func DisplayText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
