package search

import (
	"regexp"
	"strconv"
	"strings"
)

// Match is one content-search hit.
type Match struct {
	Path string
	Line int
}

var contentMatchPattern = regexp.MustCompile(`^(.+?):(\d+):`)

// ParseContentMatch reads the leading path:line: of an rga output line.
func ParseContentMatch(line string) (Match, bool) {
	m := contentMatchPattern.FindStringSubmatch(line)
	if m == nil {
		return Match{}, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil || n < 1 {
		return Match{}, false
	}
	return Match{Path: m[1], Line: n}, true
}

// HistoryEntry is one directory remembered by zoxide.
type HistoryEntry struct {
	Path  string
	Score float64
}

// ParseHistoryLine reads a `zoxide query --list --score` line such as
// "  12.5 /home/user/src". Paths may contain spaces.
func ParseHistoryLine(line string) (HistoryEntry, bool) {
	line = strings.TrimSpace(line)
	cut := strings.IndexAny(line, " \t")
	if cut <= 0 {
		return HistoryEntry{}, false
	}
	score, err := strconv.ParseFloat(line[:cut], 64)
	if err != nil || score < 0 {
		return HistoryEntry{}, false
	}
	path := strings.TrimSpace(line[cut:])
	if path == "" {
		return HistoryEntry{}, false
	}
	return HistoryEntry{Path: path, Score: score}, true
}
