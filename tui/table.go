package tui

import (
	"fmt"
	"strings"

	"pocketshelf/catalog"
	"pocketshelf/types"
)

// tableRenderer is the terminal catalog.Renderer. It keeps the last rendered
// state; View draws it.
type tableRenderer struct {
	rows    []types.Record
	tags    []string
	message string
}

var _ catalog.Renderer = (*tableRenderer)(nil)

func (t *tableRenderer) RenderRows(rows []types.Record) {
	t.rows = rows
	t.message = ""
}

func (t *tableRenderer) RenderTagList(tags []string) {
	t.tags = tags
}

func (t *tableRenderer) ShowError(message string) {
	t.rows = nil
	t.message = message
}

const (
	colTitle  = 40
	colAdded  = 10
	colTags   = 24
	colStatus = 10
)

// View draws the table. An empty selection is a single placeholder line.
func (t *tableRenderer) View() string {
	if t.message != "" {
		return ErrorStyle.Render("❌ " + t.message)
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(row("Title", "Added", "Tags", "Status")))
	b.WriteString("\n")

	if len(t.rows) == 0 {
		b.WriteString(InfoStyle.Render(catalog.MessageNoResults))
		return b.String()
	}

	for _, r := range t.rows {
		b.WriteString(row(r.Title, r.TimeAdded, r.Tags, r.Status))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("  " + r.URL))
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d records", len(t.rows))))
	return b.String()
}

func row(title, added, tags, status string) string {
	return fmt.Sprintf("%-*s %-*s %-*s %s",
		colTitle, truncate(title, colTitle),
		colAdded, truncate(added, colAdded),
		colTags, truncate(tags, colTags),
		truncate(status, colStatus))
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
