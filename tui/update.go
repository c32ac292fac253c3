package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pocketshelf/clipboard"
	"pocketshelf/normalizer"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 4 {
			m.input.SetWidth(msg.Width - 4)
		}
		return m, nil
	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)
	case CopiedMsg:
		return m.handleCopied(msg)
	case copyExpiredMsg:
		if msg.Seq == m.copySeq {
			m.copied = clipboard.MethodNone
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Screen == ScreenNormalize {
			return m.handleNormalizeKey(msg)
		}
		return m.handleCatalogKey(msg)
	}

	if m.Screen == ScreenNormalize {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Msg("catalog load failed")
		m.engine.Fail(msg.Err)
		return m, nil
	}
	m.engine.Attach(msg.Catalog)
	return m, nil
}

// handleCatalogKey processes keyboard input on the catalog screen
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tagsOpen {
		return m.handleTagListKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		m.Screen = ScreenNormalize
		return m, m.input.Focus()
	}

	if m.loading || m.engine.Err() != nil {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		tabs := m.tabs()
		i := (m.activeTab() - 1 + len(tabs)) % len(tabs)
		m.engine.SetStatus(tabs[i])
	case "right", "l":
		tabs := m.tabs()
		i := (m.activeTab() + 1) % len(tabs)
		m.engine.SetStatus(tabs[i])
	case "t":
		m.tagsOpen = true
		m.tagCursor = 0
		active := m.engine.State().Tag
		for i, tag := range m.tagItems() {
			if tag == active {
				m.tagCursor = i
			}
		}
	case "a":
		m.engine.Reset()
	}
	return m, nil
}

func (m Model) handleTagListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.tagItems()
	switch msg.String() {
	case "up", "k":
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case "down", "j":
		if m.tagCursor < len(items)-1 {
			m.tagCursor++
		}
	case "enter":
		m.engine.SetTag(items[m.tagCursor])
		m.tagsOpen = false
	case "esc", "t":
		m.tagsOpen = false
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// handleNormalizeKey processes keyboard input on the converter screen. Other
// keys go to the textarea.
func (m Model) handleNormalizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.Screen = ScreenCatalog
		return m, nil
	case "ctrl+s":
		m.convert()
		return m, nil
	case "ctrl+y":
		if m.copier == nil || m.output == "" {
			return m, nil
		}
		return m, copyText(m.copier, m.output)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// convert fills the output box from the textarea.
func (m *Model) convert() {
	m.summary = ""
	res, err := m.normalizer.Normalize(m.input.Value())
	if errors.Is(err, normalizer.ErrEmptyInput) {
		m.output = normalizer.MessageEmptyInput
		return
	}
	if err != nil || len(res.Records) == 0 {
		m.output = normalizer.MessageNoValidData
		if res != nil {
			m.summary = fmt.Sprintf("0 of %d lines converted", res.Lines)
		}
		return
	}

	out, err := normalizer.FormatJSON(res.Records)
	if err != nil {
		m.log.Error().Err(err).Msg("format normalized records")
		m.output = normalizer.MessageNoValidData
		return
	}
	m.output = out
	m.summary = fmt.Sprintf("%d of %d lines converted", len(res.Records), res.Lines)
}

func (m Model) handleCopied(msg CopiedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.copied = clipboard.MethodNone
		m.alert = fmt.Sprintf("%s: %v", TextCopyFailed, msg.Err)
		return m, nil
	}
	if msg.Method == clipboard.MethodNone {
		return m, nil
	}
	m.copied = msg.Method
	m.copySeq++
	return m, expireCopy(m.copySeq, m.copyConfirm)
}
