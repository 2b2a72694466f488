package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateFileAndDir(t *testing.T) {
	dir := t.TempDir()
	var ops Ops

	file := filepath.Join(dir, "new.txt")
	if err := ops.CreateFile(file); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if err := ops.CreateFile(file); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	sub := filepath.Join(dir, "sub")
	if err := ops.CreateDir(sub); err != nil {
		t.Fatalf("CreateDir: %v", err)
	}
	if !IsDirectory(sub) {
		t.Fatalf("expected %s to be a directory", sub)
	}
	if err := ops.CreateDir(sub); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestCopyRecursesIntoDirectories(t *testing.T) {
	dir := t.TempDir()
	var ops Ops

	src := filepath.Join(dir, "src")
	if err := os.MkdirAll(filepath.Join(src, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(src, "nested", "a.txt"), "alpha", 0o644)

	dst := filepath.Join(dir, "dst")
	if err := ops.Copy(src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "nested", "a.txt"))
	if err != nil || string(data) != "alpha" {
		t.Fatalf("expected copied content, got %q (%v)", data, err)
	}
	if !ops.Exists(src) {
		t.Fatalf("copy must keep the source")
	}
}

func TestCopyRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	var ops Ops
	writeFile(t, filepath.Join(dir, "a"), "a", 0o644)
	writeFile(t, filepath.Join(dir, "b"), "b", 0o644)

	if err := ops.Copy(filepath.Join(dir, "a"), filepath.Join(dir, "b")); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "b"))
	if string(data) != "b" {
		t.Fatalf("destination was overwritten: %q", data)
	}
}

func TestMoveAndRemove(t *testing.T) {
	dir := t.TempDir()
	var ops Ops

	src := filepath.Join(dir, "move-me")
	writeFile(t, src, "data", 0o644)
	dst := filepath.Join(dir, "moved")

	if err := ops.Move(src, dst); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if ops.Exists(src) || !ops.Exists(dst) {
		t.Fatalf("expected %s to be moved to %s", src, dst)
	}

	if err := ops.Remove(dst); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ops.Exists(dst) {
		t.Fatalf("expected %s to be removed", dst)
	}
	if err := ops.Remove(dst); err == nil {
		t.Fatalf("expected error removing a missing path")
	}
}
