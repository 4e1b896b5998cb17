package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kettleson/satchel/satchel/archive"
)

func TestStowPathWalksDirectories(t *testing.T) {

	root := t.TempDir()

	if err := os.MkdirAll(filepath.Join(root, "sub"), 0775); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "top.txt"), []byte("top"), 0664); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "sub", "inner.txt"), []byte("inner"), 0664); err != nil {
		t.Fatal(err)
	}

	a := archive.New()
	if err := stowPath(a, root, false); err != nil {
		t.Fatal("stowPath failed:", err)
	}

	stats := a.Stats()
	if stats.FileCount != 2 {
		t.Errorf("Expected 2 files, got %d", stats.FileCount)
	}
	if stats.DirectoryCount != 2 {
		t.Errorf("Expected 2 directories (root and sub), got %d", stats.DirectoryCount)
	}
	if stats.TotalSize != uint64(len("top")+len("inner")) {
		t.Errorf("Bad total size %d", stats.TotalSize)
	}

	entry, ok := a.Find(filepath.Join(root, "sub", "inner.txt"))
	if !ok {
		t.Fatal("inner.txt never made it in")
	}
	if entry.Data != "inner" {
		t.Errorf("Wrong content: %q", entry.Data)
	}
}

func TestStowPathSingleFile(t *testing.T) {

	root := t.TempDir()
	file := filepath.Join(root, "alone.txt")
	if err := os.WriteFile(file, []byte("alone"), 0664); err != nil {
		t.Fatal(err)
	}

	a := archive.New()
	if err := stowPath(a, file, false); err != nil {
		t.Fatal(err)
	}

	if a.Count() != 1 {
		t.Fatalf("Expected 1 entry, got %d", a.Count())
	}
	if _, ok := a.Find(file); !ok {
		t.Error("File entry missing")
	}
}

func TestStowPathMissing(t *testing.T) {

	a := archive.New()
	if err := stowPath(a, filepath.Join(t.TempDir(), "nope"), false); err == nil {
		t.Error("Expected an error for a missing path")
	}
}

func TestUnstowRoundTrip(t *testing.T) {

	a := archive.New()
	a.AddDirectory("hollow")
	a.AddFile(filepath.Join("nested", "deep.txt"), "way down")
	a.AddFile("shallow.txt", "right here")

	dest := t.TempDir()
	if err := unstow(a, dest); err != nil {
		t.Fatal("unstow failed:", err)
	}

	// Empty directory entries come back as real directories.
	info, err := os.Stat(filepath.Join(dest, "hollow"))
	if err != nil || !info.IsDir() {
		t.Error("Empty directory entry was not recreated")
	}

	data, err := os.ReadFile(filepath.Join(dest, "nested", "deep.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "way down" {
		t.Errorf("Wrong content came back: %q", data)
	}

	data, err = os.ReadFile(filepath.Join(dest, "shallow.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "right here" {
		t.Errorf("Wrong content came back: %q", data)
	}
}
