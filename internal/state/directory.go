package state

import (
	"fmt"
	"path/filepath"

	fsutil "github.com/kk-code-lab/beniya/internal/fs"
)

// Lister reads a directory. fs.List is the production implementation.
type Lister func(path string) ([]FileEntry, error)

// DirectoryModel is one listing of one directory. It is replaced wholesale by
// navigation and never mutated in place.
type DirectoryModel struct {
	Path    string
	Entries []FileEntry
}

// LoadDirectory lists path and returns the model for it.
func LoadDirectory(list Lister, path string) (DirectoryModel, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return DirectoryModel{}, fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	entries, err := list(abs)
	if err != nil {
		return DirectoryModel{}, err
	}
	return DirectoryModel{Path: abs, Entries: entries}, nil
}

// Find returns the entry called name.
func (d DirectoryModel) Find(name string) (FileEntry, bool) {
	for _, e := range d.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return FileEntry{}, false
}

// IndexOf returns the position of name in the listing, or -1.
func (d DirectoryModel) IndexOf(name string) int {
	for i, e := range d.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// AtRoot reports whether the model shows the filesystem root.
func (d DirectoryModel) AtRoot() bool {
	return filepath.Dir(d.Path) == d.Path
}

// NavigateInto lists the child directory name.
func (d DirectoryModel) NavigateInto(list Lister, name string) (DirectoryModel, error) {
	entry, ok := d.Find(name)
	if !ok {
		return d, fmt.Errorf("%s: %w", filepath.Join(d.Path, name), fsutil.ErrNotFound)
	}
	if !entry.IsDir() {
		return d, fmt.Errorf("%s: %w", entry.Path, fsutil.ErrNotADirectory)
	}
	return LoadDirectory(list, filepath.Join(d.Path, name))
}

// NavigateToParent lists the parent directory. At the root it returns the
// model unchanged and ok=false.
func (d DirectoryModel) NavigateToParent(list Lister) (DirectoryModel, bool, error) {
	if d.AtRoot() {
		return d, false, nil
	}
	next, err := LoadDirectory(list, filepath.Dir(d.Path))
	if err != nil {
		return d, false, err
	}
	return next, true, nil
}

// NavigateToPath lists an arbitrary directory, used for bookmark and history
// jumps.
func (d DirectoryModel) NavigateToPath(list Lister, path string) (DirectoryModel, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.Path, path)
	}
	return LoadDirectory(list, path)
}

// Refresh relists the current directory.
func (d DirectoryModel) Refresh(list Lister) (DirectoryModel, error) {
	return LoadDirectory(list, d.Path)
}
