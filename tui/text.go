package tui

// UI Text Constants
const (
	TextTitle          = "📚 Pocket Shelf"
	TextNormalizeTitle = "📝 CSV to JSON"
	TextLoading        = "⏳ Loading catalog..."
	TextTags           = "Tags"
	TextCopied         = "✅ Copied"
	TextCopiedTerminal = "✅ Copied (terminal)"
	TextCopyFailed     = "Copy failed"
	TextDismiss        = "press any key to dismiss"

	TextFooterCatalog   = "←/→ status | t tags | a all | n converter | q quit"
	TextFooterTags      = "↑/↓ move | enter select | esc close"
	TextFooterNormalize = "ctrl+s convert | ctrl+y copy | esc back | ctrl+c quit"
)
