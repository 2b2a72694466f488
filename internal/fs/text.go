package fs

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSize         = 4096
	maxControlPercent = 30
	utf8BOM           = "\xEF\xBB\xBF"
	utf16LittleEndBOM = "\xFF\xFE"
	utf16BigEndBOM    = "\xFE\xFF"
)

// Extensions that are never previewed as text, whatever their content.
var binaryExtensions = map[string]struct{}{
	".7z": {}, ".avi": {}, ".bin": {}, ".bmp": {}, ".class": {}, ".dll": {},
	".dmg": {}, ".doc": {}, ".docx": {}, ".dylib": {}, ".exe": {}, ".gif": {},
	".gz": {}, ".ico": {}, ".iso": {}, ".jar": {}, ".jpeg": {}, ".jpg": {},
	".mkv": {}, ".mov": {}, ".mp3": {}, ".mp4": {}, ".o": {}, ".pdf": {},
	".png": {}, ".so": {}, ".tar": {}, ".tgz": {}, ".wasm": {}, ".webp": {},
	".xls": {}, ".xlsx": {}, ".xz": {}, ".zip": {},
}

// IsTextFile decides whether content read from path should be shown as text.
func IsTextFile(path string, content []byte) bool {
	if _, ok := binaryExtensions[lowerExt(path)]; ok {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}
	if bomDecoder(sample) != nil || bytes.HasPrefix(sample, []byte(utf8BOM)) {
		return true
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	control := 0
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != 0x1b {
			control++
		}
	}
	return control*100/len(sample) < maxControlPercent
}

// ReadFileHead returns up to limit bytes from the start of path.
func ReadFileHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(io.LimitReader(f, limit))
}

// NormalizeTextContent strips a UTF-8 BOM and decodes UTF-16 content that
// starts with a BOM. Anything else is returned as-is.
func NormalizeTextContent(content []byte) string {
	if bytes.HasPrefix(content, []byte(utf8BOM)) {
		return string(content[len(utf8BOM):])
	}
	if dec := bomDecoder(content); dec != nil {
		out, err := dec.Bytes(content)
		if err == nil {
			return string(out)
		}
	}
	return string(content)
}

func bomDecoder(sample []byte) *encoding.Decoder {
	switch {
	case bytes.HasPrefix(sample, []byte(utf16LittleEndBOM)):
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(sample, []byte(utf16BigEndBOM)):
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	default:
		return nil
	}
}
