// Package bookmark persists named directory shortcuts addressable by slot
// number.
package bookmark

import (
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxBookmarks is the number of slots reachable with the digit keys.
const MaxBookmarks = 9

var (
	ErrEmptyName     = errors.New("bookmark name is empty")
	ErrDuplicateName = errors.New("bookmark name already exists")
	ErrDuplicatePath = errors.New("path is already bookmarked")
	ErrFull          = errors.New("bookmark limit reached")
	ErrNotFound      = errors.New("bookmark not found")
)

// Bookmark is a named absolute directory path.
type Bookmark struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Store keeps bookmarks ordered by name and persists them as JSON.
type Store struct {
	file  string
	items []Bookmark
}

func NewStore(file string) *Store {
	return &Store{file: file}
}

// Load replaces the in-memory list with the file's content. A missing file
// is an empty list. A corrupt file also leaves the list empty, and the parse
// error is returned so the caller can report it.
func (s *Store) Load() error {
	s.items = nil
	data, err := os.ReadFile(s.file)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot read bookmarks %s: %w", s.file, err)
	}

	var items []Bookmark
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("cannot parse bookmarks %s: %w", s.file, err)
	}
	for _, b := range items {
		if b.Name == "" || b.Path == "" || len(s.items) == MaxBookmarks {
			continue
		}
		s.items = append(s.items, b)
	}
	s.sort()
	return nil
}

// Save writes the list to disk, creating the parent directory if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.file), 0o755); err != nil {
		return fmt.Errorf("cannot create bookmark directory: %w", err)
	}
	items := s.items
	if items == nil {
		items = []Bookmark{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode bookmarks: %w", err)
	}
	if err := os.WriteFile(s.file, data, 0o644); err != nil {
		return fmt.Errorf("cannot write bookmarks %s: %w", s.file, err)
	}
	return nil
}

// Add inserts a bookmark unless the name is empty, the name or path is
// already present, or every slot is taken.
func (s *Store) Add(path, name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyName
	case len(s.items) >= MaxBookmarks:
		return ErrFull
	}
	for _, b := range s.items {
		if b.Name == name {
			return fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		if b.Path == path {
			return fmt.Errorf("%s: %w", path, ErrDuplicatePath)
		}
	}
	s.items = append(s.items, Bookmark{Name: name, Path: path})
	s.sort()
	return nil
}

// Remove deletes the bookmark called name.
func (s *Store) Remove(name string) error {
	for i, b := range s.items {
		if b.Name == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrNotFound)
}

// List returns a copy of the bookmarks in slot order.
func (s *Store) List() []Bookmark {
	return append([]Bookmark(nil), s.items...)
}

// FindByNumber returns the bookmark in 1-based slot n.
func (s *Store) FindByNumber(n int) (Bookmark, bool) {
	if n < 1 || n > len(s.items) {
		return Bookmark{}, false
	}
	return s.items[n-1], true
}

// GetPath returns the path stored under name.
func (s *Store) GetPath(name string) (string, bool) {
	for _, b := range s.items {
		if b.Name == name {
			return b.Path, true
		}
	}
	return "", false
}

func (s *Store) sort() {
	sort.SliceStable(s.items, func(i, j int) bool {
		a, b := strings.ToLower(s.items[i].Name), strings.ToLower(s.items[j].Name)
		if a != b {
			return a < b
		}
		return s.items[i].Name < s.items[j].Name
	})
}
