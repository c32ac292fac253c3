package tui

import (
	"pocketshelf/catalog"
	"pocketshelf/clipboard"
)

// CatalogLoadedMsg is sent when the one-time catalog load finishes.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// CopiedMsg reports the outcome of a copy request.
type CopiedMsg struct {
	Method clipboard.Method
	Err    error
}

// copyExpiredMsg reverts the copy indicator. Seq ties it to the copy that armed it.
type copyExpiredMsg struct {
	Seq int
}
