package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"pocketshelf/types"
)

// FormatJSON renders records as a JSON array whose objects are each indented
// independently and joined with ",\n".
func FormatJSON(records []types.Record) (string, error) {
	items := make([]string, 0, len(records))
	for i, r := range records {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return "", fmt.Errorf("encode record %d: %w", i, err)
		}
		items = append(items, rawLineSeparators(strings.TrimSuffix(buf.String(), "\n")))
	}
	return "[\n" + strings.Join(items, ",\n") + "\n]", nil
}

// rawLineSeparators turns the \u2028 and \u2029 escapes written by
// encoding/json back into the raw characters. Escape pairs are consumed
// whole, so an escaped backslash followed by "u2028" is left alone.
func rawLineSeparators(s string) string {
	if !strings.Contains(s, `\u202`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch {
		case strings.HasPrefix(s[i:], `\u2028`):
			b.WriteRune('\u2028')
			i += 5
		case strings.HasPrefix(s[i:], `\u2029`):
			b.WriteRune('\u2029')
			i += 5
		default:
			b.WriteString(s[i : i+2])
			i++
		}
	}
	return b.String()
}
