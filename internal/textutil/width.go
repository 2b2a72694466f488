package textutil

import "strings"

const (
	wideCellWidth   = 2
	narrowCellWidth = 1

	// Ellipsis is appended by TruncateToWidth when there is room for it.
	Ellipsis      = "..."
	ellipsisWidth = 3

	breakPointRatio = 0.5
)

var breakPunctuation = map[rune]struct{}{
	'、': {},
	'。': {},
	'，': {},
	'．': {},
	'！': {},
	'？': {},
}

// RuneWidth returns the number of terminal cells r is assumed to occupy.
// CJK punctuation, kana, unified ideographs and the full-width forms block are
// wide; printable ASCII is narrow; any other rune that needs more than one
// byte in UTF-8 is treated as wide.
func RuneWidth(r rune) int {
	switch {
	case r >= 0x3000 && r <= 0x303F,
		r >= 0x3040 && r <= 0x309F,
		r >= 0x30A0 && r <= 0x30FF,
		r >= 0x4E00 && r <= 0x9FAF,
		r >= 0xFF00 && r <= 0xFFEF:
		return wideCellWidth
	case r >= 0x20 && r <= 0x7E:
		return narrowCellWidth
	case r > 0x7F:
		return wideCellWidth
	default:
		return narrowCellWidth
	}
}

// DisplayWidth reports the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += RuneWidth(r)
	}
	return width
}

// TruncateToWidth shortens text so it fits in maxWidth cells. When the text
// has to be cut and maxWidth leaves room, the tail is replaced by Ellipsis so
// the result fills maxWidth exactly. Otherwise the longest fitting prefix is
// returned as-is.
func TruncateToWidth(text string, maxWidth int) string {
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 0 {
		return ""
	}

	if maxWidth >= ellipsisWidth {
		head, width := prefixWithin(text, maxWidth-ellipsisWidth)
		if width == maxWidth-ellipsisWidth {
			return head + Ellipsis
		}
	}

	head, _ := prefixWithin(text, maxWidth)
	return head
}

// PadToWidth right-pads text with spaces to exactly target cells, truncating
// first when the text is already at least that wide.
func PadToWidth(text string, target int) string {
	width := DisplayWidth(text)
	if width >= target {
		text = TruncateToWidth(text, target)
		width = DisplayWidth(text)
	}
	if width >= target {
		return text
	}
	return text + strings.Repeat(" ", target-width)
}

// PadLeftToWidth right-aligns text within target cells.
func PadLeftToWidth(text string, target int) string {
	width := DisplayWidth(text)
	if width >= target {
		return text
	}
	return strings.Repeat(" ", target-width) + text
}

// FindBreakPoint returns the rune index at which line should be wrapped so
// the first part fits in maxWidth cells. Breaks after a space are preferred,
// then breaks after CJK punctuation, as long as they fall past half of
// maxWidth.
func FindBreakPoint(line string, maxWidth int) int {
	runes := []rune(line)
	if DisplayWidth(line) <= maxWidth {
		return len(runes)
	}

	threshold := float64(maxWidth) * breakPointRatio
	width := 0
	best := 0
	spaceBreak := -1
	punctBreak := -1

	for i, r := range runes {
		w := RuneWidth(r)
		if width+w > maxWidth {
			break
		}
		width += w
		best = i + 1

		if float64(width) <= threshold {
			continue
		}
		if r == ' ' {
			spaceBreak = i + 1
		}
		if _, ok := breakPunctuation[r]; ok {
			punctBreak = i + 1
		}
	}

	switch {
	case spaceBreak >= 0:
		return spaceBreak
	case punctBreak >= 0:
		return punctBreak
	default:
		return best
	}
}

// WrapLines splits each line so that no resulting line is wider than
// maxWidth cells.
func WrapLines(lines []string, maxWidth int) []string {
	if len(lines) == 0 || maxWidth <= 0 {
		return nil
	}

	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		if DisplayWidth(line) <= maxWidth {
			wrapped = append(wrapped, line)
			continue
		}
		rest := []rune(line)
		for DisplayWidth(string(rest)) > maxWidth {
			cut := FindBreakPoint(string(rest), maxWidth)
			if cut <= 0 {
				// A single rune wider than the pane still has to make progress.
				cut = 1
			}
			wrapped = append(wrapped, string(rest[:cut]))
			rest = rest[cut:]
		}
		if len(rest) > 0 {
			wrapped = append(wrapped, string(rest))
		}
	}
	return wrapped
}

// TrimLeftToWidth keeps the widest suffix of text that fits in maxWidth
// cells.
func TrimLeftToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(text)
	width := 0
	start := len(runes)
	for start > 0 {
		w := RuneWidth(runes[start-1])
		if width+w > maxWidth {
			break
		}
		width += w
		start--
	}
	return string(runes[start:])
}

func prefixWithin(text string, maxWidth int) (string, int) {
	var b strings.Builder
	width := 0
	for _, r := range text {
		w := RuneWidth(r)
		if width+w > maxWidth {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return b.String(), width
}
