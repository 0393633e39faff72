package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) (*DiskStore, string) {
	t.Helper()

	root := t.TempDir()
	store, err := NewDiskStore(root)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	return store, root
}

func TestDiskStoreRoundTrip(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	location, size, err := store.Save(ctx, "3_abc123.pdf", strings.NewReader("datasheet bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("datasheet bytes")) {
		t.Errorf("Expected size %d, got %d", len("datasheet bytes"), size)
	}
	if want := filepath.Join(root, "3_abc123.pdf"); location != want {
		t.Errorf("Expected location %q, got %q", want, location)
	}

	blob, err := store.Open(ctx, "3_abc123.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "datasheet bytes" {
		t.Errorf("Read back %q", data)
	}
}

func TestDiskStoreDelete(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	if _, _, err := store.Save(ctx, "1_x.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "1_x.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "1_x.txt")); !os.IsNotExist(err) {
		t.Errorf("Expected file removed, stat err: %v", err)
	}
	if _, err := store.Open(ctx, "1_x.txt"); !errors.Is(err, ErrNotExist) {
		t.Errorf("Expected ErrNotExist after delete, got %v", err)
	}
}

func TestDiskStoreOpenMissing(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Open(context.Background(), "never-saved.bin"); !errors.Is(err, ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestDiskStoreRejectsEscapingKeys(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"../outside.txt", "a/../../b", "/etc/passwd", "sub/dir.txt", ""} {
		if _, _, err := store.Save(ctx, key, strings.NewReader("x")); err == nil {
			t.Errorf("Expected Save to reject key %q", key)
		}
		if _, err := store.Open(ctx, key); err == nil {
			t.Errorf("Expected Open to reject key %q", key)
		}
		// Delete treats a bad key like a missing blob.
		if err := store.Delete(ctx, key); err != nil {
			t.Errorf("Expected Delete to ignore key %q, got %v", key, err)
		}
	}
}
