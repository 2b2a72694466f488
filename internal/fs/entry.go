package fs

import (
	"path/filepath"
	"strings"
)

// Kind classifies a listed entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindExecutable
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindExecutable:
		return "executable"
	default:
		return "file"
	}
}

// Entry is a point-in-time snapshot of one child of a directory.
type Entry struct {
	Name string
	Path string
	Kind Kind
	Size int64
}

// IsDir reports whether the entry can be navigated into.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Ext returns the lower-cased extension of the entry name, including the dot.
func (e Entry) Ext() string {
	return lowerExt(e.Name)
}

func lowerExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
