package textutil

import "strings"

// Invisible runes that reorder or join text. Left in place they make the
// drawn line disagree with DisplayWidth.
var invisibleRunes = map[rune]struct{}{
	0x061C: {}, 0x00AD: {}, 0x180E: {},
	0x200B: {}, 0x200C: {}, 0x200D: {}, 0x200E: {}, 0x200F: {},
	0x2028: {}, 0x2029: {},
	0x202A: {}, 0x202B: {}, 0x202C: {}, 0x202D: {}, 0x202E: {},
	0x2060: {}, 0x2066: {}, 0x2067: {}, 0x2068: {}, 0x2069: {},
	0xFEFF: {},
}

// SanitizeTerminalText makes a file name or preview line safe to draw: line
// breaks and tabs become spaces, other control characters become '?', and
// bidi/zero-width formatting runes become '?'.
func SanitizeTerminalText(text string) string {
	for _, r := range text {
		if needsSanitizing(r) {
			return sanitize(text)
		}
	}
	return text
}

func needsSanitizing(r rune) bool {
	if _, ok := invisibleRunes[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7f
}

func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case needsSanitizing(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
