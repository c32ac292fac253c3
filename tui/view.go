package tui

import (
	"fmt"
	"strings"

	"pocketshelf/clipboard"
	"pocketshelf/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	if m.Screen == ScreenNormalize {
		return m.normalizeView()
	}
	return m.catalogView()
}

func (m Model) catalogView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(StatusStyle.Render(TextLoading))
		b.WriteString("\n")
		return b.String()
	}

	if m.engine.Err() == nil {
		b.WriteString(m.tabsView())
		b.WriteString("\n")
		b.WriteString(m.tagsView())
		b.WriteString("\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	footer := TextFooterCatalog
	if m.tagsOpen {
		footer = TextFooterTags
	}
	b.WriteString(InfoStyle.Render(footer))
	return b.String()
}

func (m Model) tabsView() string {
	active := m.activeTab()
	parts := make([]string, 0, len(m.tabs()))
	for i, tab := range m.tabs() {
		label := tabLabel(tab)
		if i == active {
			parts = append(parts, ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, TabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func tabLabel(status string) string {
	if status == types.FilterAll {
		return "All"
	}
	return status
}

// tagsView shows the tag count badge, hidden when there are no tags, and the
// open tag list.
func (m Model) tagsView() string {
	var b strings.Builder
	b.WriteString(TextTags)
	if n := len(m.table.tags); n > 0 {
		b.WriteString(" ")
		b.WriteString(BadgeStyle.Render(fmt.Sprint(n)))
	}
	if tag := m.engine.State().Tag; tag != types.FilterAll {
		b.WriteString("  ")
		b.WriteString(HighlightStyle.Render("#" + tag))
	}

	if !m.tagsOpen {
		return b.String()
	}

	var list strings.Builder
	for i, tag := range m.tagItems() {
		line := "  " + tag
		if i == m.tagCursor {
			line = CursorStyle.Render("> " + tag)
		}
		list.WriteString(line)
		if i < len(m.tagItems())-1 {
			list.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(list.String()))
	return b.String()
}

func (m Model) normalizeView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextNormalizeTitle))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.output != "" {
		b.WriteString(BoxStyle.Render(m.output))
		b.WriteString("\n")
	}
	if m.summary != "" {
		b.WriteString(InfoStyle.Render(m.summary))
		b.WriteString("\n")
	}

	switch m.copied {
	case clipboard.MethodPrimary:
		b.WriteString(StatusStyle.Render(TextCopied))
		b.WriteString("\n")
	case clipboard.MethodFallback:
		b.WriteString(StatusStyle.Render(TextCopiedTerminal))
		b.WriteString("\n")
	}

	if m.alert != "" {
		b.WriteString(ErrorStyle.Render("❌ " + m.alert + " (" + TextDismiss + ")"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(TextFooterNormalize))
	return b.String()
}
