package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pocketshelf/catalog"
	"pocketshelf/config"
)

// loadCatalog fetches the catalog once.
func loadCatalog(src catalog.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.CatalogFetchTimeout)
		defer cancel()
		c, err := catalog.Load(ctx, src)
		return CatalogLoadedMsg{Catalog: c, Err: err}
	}
}

// copyText writes text through the copier.
func copyText(c Copier, text string) tea.Cmd {
	return func() tea.Msg {
		method, err := c.Copy(text)
		return CopiedMsg{Method: method, Err: err}
	}
}

// expireCopy fires after d to revert the "Copied" indicator.
func expireCopy(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyExpiredMsg{Seq: seq}
	})
}
