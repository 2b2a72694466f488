package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

var ErrExists = errors.New("already exists")

// Ops performs filesystem mutations on behalf of the browser.
type Ops struct{}

// Exists reports whether anything is present at path. Dangling symlinks count.
func (Ops) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// CreateFile creates an empty file, failing if path is already taken.
func (Ops) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return wrapExists("create file", path, err)
	}
	return f.Close()
}

// CreateDir creates a single directory, failing if path is already taken.
func (Ops) CreateDir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return wrapExists("create directory", path, err)
	}
	return nil
}

// Move renames src to dst, falling back to copy and remove when the rename
// crosses devices.
func (o Ops) Move(src, dst string) error {
	if o.Exists(dst) {
		return fmt.Errorf("move %s: %s %w", src, dst, ErrExists)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := o.Copy(src, dst); err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("move %s: remove source: %w", src, err)
	}
	return nil
}

// Copy copies src to dst, recursing into directories.
func (o Ops) Copy(src, dst string) error {
	if o.Exists(dst) {
		return fmt.Errorf("copy %s: %s %w", src, dst, ErrExists)
	}
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if info.IsDir() {
		return copyDir(src, dst, info.Mode())
	}
	return copyFile(src, dst, info.Mode())
}

// Remove deletes path, recursing into directories.
func (Ops) Remove(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm())
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}

func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.Mkdir(dst, mode.Perm()|0o700); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}

	children, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	for _, child := range children {
		from := filepath.Join(src, child.Name())
		to := filepath.Join(dst, child.Name())
		info, err := os.Stat(from)
		if err != nil {
			return fmt.Errorf("copy %s: %w", from, err)
		}
		if info.IsDir() {
			err = copyDir(from, to, info.Mode())
		} else {
			err = copyFile(from, to, info.Mode())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapExists(op, path string, err error) error {
	if errors.Is(err, iofs.ErrExist) {
		return fmt.Errorf("%s %s: %w", op, path, ErrExists)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
