package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// FormatSkips renders a skip list as "lang (reason)" strings.
func FormatSkips(skips []Skip) []string {
	if len(skips) == 0 {
		return nil
	}
	out := make([]string, len(skips))
	for i, s := range skips {
		out[i] = s.Lang + " (" + s.Reason + ")"
	}
	return out
}

// JoinOrNone joins items with commas, or returns "none" for an empty list.
func JoinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
