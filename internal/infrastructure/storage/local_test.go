package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := store.Save(context.Background(), "ada.lovelace", "photo.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasPrefix(path, "uploads/ada.lovelace-") {
		t.Fatalf("unexpected path prefix: %q", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Fatalf("extension not preserved: %q", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "uploads/")))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestLocalStore_UniquePaths(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	p1, err := store.Save(context.Background(), "ada.lovelace", "photo.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	p2, err := store.Save(context.Background(), "ada.lovelace", "photo.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("expected unique paths, got %q twice", p1)
	}
}

func TestLocalStore_NoExtension(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := store.Save(context.Background(), "ada.lovelace", "photo", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.HasSuffix(path, ".") {
		t.Fatalf("dangling dot in path: %q", path)
	}
}
