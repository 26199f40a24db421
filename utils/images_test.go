package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreRejectsEmptyFile(t *testing.T) {
	store := &DiskStore{Dir: t.TempDir(), BaseURL: "http://localhost:4001"}

	_, err := store.Store(strings.NewReader(""), 0, "photo.jpg")
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("reading uploads dir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, got %d", len(entries))
	}
}

func TestDiskStoreRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store := &DiskStore{Dir: filepath.Join(dir, "uploads"), BaseURL: "http://localhost:4001"}

	_, err := store.Store(strings.NewReader("payload"), 7, "../escape.jpg")
	if !errors.Is(err, ErrOutsideStore) {
		t.Fatalf("expected ErrOutsideStore, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.jpg")); !os.IsNotExist(err) {
		t.Fatalf("file escaped the uploads directory")
	}
	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("reading uploads dir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, got %d", len(entries))
	}
}

func TestDiskStoreWritesFileAndBuildsURL(t *testing.T) {
	store := &DiskStore{Dir: t.TempDir(), BaseURL: "http://localhost:4001/"}

	content := "fake image bytes"
	url, err := store.Store(strings.NewReader(content), int64(len(content)), "photo.jpg")
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	if !strings.HasPrefix(url, "http://localhost:4001/uploads/") {
		t.Errorf("unexpected URL: %q", url)
	}
	if !strings.HasSuffix(url, "_photo.jpg") {
		t.Errorf("expected URL to keep the original filename suffix, got %q", url)
	}

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("reading uploads dir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one stored file, got %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(store.Dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("reading stored file failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("stored content mismatch: %q", string(data))
	}
}

func TestDiskStoreFilenamesDoNotCollide(t *testing.T) {
	store := &DiskStore{Dir: t.TempDir(), BaseURL: "http://localhost:4001"}

	first, err := store.Store(strings.NewReader("a"), 1, "photo.jpg")
	if err != nil {
		t.Fatalf("first Store failed: %v", err)
	}
	second, err := store.Store(strings.NewReader("b"), 1, "photo.jpg")
	if err != nil {
		t.Fatalf("second Store failed: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct URLs for identical original names, got %q twice", first)
	}
}
