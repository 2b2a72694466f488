package textutil

import "strings"

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces up to the next tab stop,
// measuring columns the same way DisplayWidth does.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, r := range text {
		if r == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(r)
		column += RuneWidth(r)
	}
	return builder.String()
}
