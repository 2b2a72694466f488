package fs

import (
	"os"
	"strings"
	"time"

	"github.com/kk-code-lab/beniya/internal/textutil"
)

const (
	previewByteLimit int64 = 64 * 1024
	previewLineLimit       = 200
)

// PreviewKind tells the renderer how to present a Preview.
type PreviewKind int

const (
	PreviewText PreviewKind = iota
	PreviewBinary
	PreviewError
)

// Preview is the displayable content of a file.
type Preview struct {
	Kind    PreviewKind
	Lines   []string
	Message string
}

type previewCacheEntry struct {
	size    int64
	modTime time.Time
	preview Preview
}

// Previewer reads file heads and caches the result until the file's size or
// modification time changes.
type Previewer struct {
	cache map[string]previewCacheEntry
}

func NewPreviewer() *Previewer {
	return &Previewer{cache: make(map[string]previewCacheEntry)}
}

// Preview returns the preview for path. Failures are reported in the result,
// never as an error.
func (p *Previewer) Preview(path string) Preview {
	info, err := os.Stat(path)
	if err != nil {
		delete(p.cache, path)
		return Preview{Kind: PreviewError, Message: err.Error()}
	}
	if info.IsDir() {
		return Preview{Kind: PreviewText}
	}

	if cached, ok := p.cache[path]; ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		return cached.preview
	}

	preview := buildPreview(path)
	p.cache[path] = previewCacheEntry{size: info.Size(), modTime: info.ModTime(), preview: preview}
	return preview
}

func buildPreview(path string) Preview {
	content, err := ReadFileHead(path, previewByteLimit)
	if err != nil {
		return Preview{Kind: PreviewError, Message: err.Error()}
	}
	if !IsTextFile(path, content) {
		return Preview{Kind: PreviewBinary}
	}

	text := NormalizeTextContent(content)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	if len(raw) > previewLineLimit {
		raw = raw[:previewLineLimit]
	}

	lines := make([]string, len(raw))
	for i, line := range raw {
		line = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
		lines[i] = textutil.SanitizeTerminalText(line)
	}
	return Preview{Kind: PreviewText, Lines: lines}
}
