package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	ctx := context.Background()

	if err := s.Write(ctx, "sentences.json", []byte(`[]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := s.Read(ctx, "sentences.json")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("Read returned %q, want %q", data, `[]`)
	}
}

func TestLocalStorageReadMissing(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	_, err = s.Read(context.Background(), "missing.json")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLocalStorageOverwrite(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	ctx := context.Background()

	if err := s.Write(ctx, "k.json", []byte("first")); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := s.Write(ctx, "k.json", []byte("second")); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}
	data, err := s.Read(ctx, "k.json")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Read returned %q after overwrite", data)
	}
}

func TestLocalStorageList(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"a.json", "b.json"} {
		if err := s.Write(ctx, key, []byte("{}")); err != nil {
			t.Fatalf("Write %s failed: %v", key, err)
		}
	}
	// Leftover temp files must not show up as keys.
	if err := os.WriteFile(filepath.Join(dir, "c.json.tmp"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to plant temp file: %v", err)
	}

	keys, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("List returned %v, want 2 keys", keys)
	}
}

func TestLocalStorageDelete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	ctx := context.Background()

	if err := s.Write(ctx, "k.json", []byte("{}")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Delete(ctx, "k.json"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	exists, err := s.Exists(ctx, "k.json")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("key still exists after Delete")
	}
	if err := s.Delete(ctx, "k.json"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
