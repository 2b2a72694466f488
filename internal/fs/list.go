package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNotADirectory = errors.New("not a directory")
	ErrNotFound      = errors.New("no such directory")
	ErrPermission    = errors.New("permission denied")
)

// List reads path and returns its entries ordered case-insensitively by name.
// The returned error wraps ErrNotFound, ErrNotADirectory or ErrPermission
// when the failure is one of those.
func List(path string) ([]Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, classify(abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot read directory %s: %w", abs, ErrNotADirectory)
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, classify(abs, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}

		rawName := de.Name()
		fullPath := filepath.Join(abs, rawName)
		isDir := de.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
				info = target
			}
		}

		kind := KindFile
		switch {
		case isDir:
			kind = KindDirectory
		case isExecutable(fullPath, info):
			kind = KindExecutable
		}

		size := info.Size()
		if isDir || size < 0 {
			size = 0
		}

		entries = append(entries, Entry{
			Name: rawName,
			Path: fullPath,
			Kind: kind,
			Size: size,
		})
	}

	SortEntries(entries)
	return entries, nil
}

// NormalizeName returns the NFC form of name. Entry names keep their on-disk
// bytes; compare and order through this form.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// SortEntries orders entries by case-folded name, falling back to the raw
// name so the order is total.
func SortEntries(entries []Entry) {
	folder := cases.Fold()
	keys := make(map[string]string, len(entries))
	for _, e := range entries {
		keys[e.Name] = folder.String(NormalizeName(e.Name))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := keys[entries[i].Name], keys[entries[j].Name]
		if ki != kj {
			return ki < kj
		}
		return entries[i].Name < entries[j].Name
	})
}

// IsDirectory reports whether path exists and is a directory.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return fmt.Errorf("cannot read directory %s: %w", path, ErrNotFound)
	case errors.Is(err, iofs.ErrPermission):
		return fmt.Errorf("cannot read directory %s: %w", path, ErrPermission)
	default:
		return fmt.Errorf("cannot read directory %s: %w", path, err)
	}
}
